package regress

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Errors returned by the estimators.
var (
	ErrLengthMismatch   = errors.New("regress: x and y must have same length")
	ErrInsufficientData = errors.New("regress: at least two samples required")
	ErrDegenerate       = errors.New("regress: x values must not all be equal")
)

// Line is the immutable function x -> Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Func returns the line as a plain function value.
func (l Line) Func() func(float64) float64 {
	return l.At
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return fmt.Sprintf("y = %g*x %+g", l.Slope, l.Intercept)
}

// Estimator fits a Line to paired samples.
type Estimator func(x, y []float64) (Line, error)

// Chord returns the line through (x1, y1) and (x2, y2).
// Coincident x values yield the constant line y = y1 rather than the NaN
// slope of 0/0, so a one-sample window still gets a finite baseline.
func Chord(x1, y1, x2, y2 float64) Line {
	if x1 == x2 {
		return Line{Intercept: y1}
	}

	m := (y1 - y2) / (x1 - x2)

	return Line{Slope: m, Intercept: y1 - m*x1}
}

// TheilSen fits a line with the Theil–Sen estimator.
//
// The slope is the median of (y[j]-y[i])/(x[j]-x[i]) over every pair with
// x[j] > x[i]; the intercept is median(y) - slope*median(x). Input order
// does not matter.
func TheilSen(x, y []float64) (Line, error) {
	if err := check(x, y); err != nil {
		return Line{}, err
	}

	n := len(x)
	slopes := make([]float64, 0, n*(n-1)/2)

	for i := range n {
		for j := range n {
			dx := x[j] - x[i]
			if dx > 0 {
				slopes = append(slopes, (y[j]-y[i])/dx)
			}
		}
	}

	if len(slopes) == 0 {
		return Line{}, ErrDegenerate
	}

	slope := medianInPlace(slopes)
	intercept := median(y) - slope*median(x)

	return Line{Slope: slope, Intercept: intercept}, nil
}

// RepeatedMedian fits a line with Siegel's repeated-median estimator.
//
// For every sample i the median slope to all samples with a different x is
// taken; the line slope is the median of those per-sample medians. The
// intercept is median(y - slope*x).
func RepeatedMedian(x, y []float64) (Line, error) {
	if err := check(x, y); err != nil {
		return Line{}, err
	}

	n := len(x)
	perPoint := make([]float64, 0, n)
	scratch := make([]float64, 0, n)

	for i := range n {
		scratch = scratch[:0]

		for j := range n {
			dx := x[j] - x[i]
			if dx != 0 {
				scratch = append(scratch, (y[j]-y[i])/dx)
			}
		}

		if len(scratch) > 0 {
			perPoint = append(perPoint, medianInPlace(scratch))
		}
	}

	if len(perPoint) == 0 {
		return Line{}, ErrDegenerate
	}

	slope := medianInPlace(perPoint)

	residual := make([]float64, n)
	for i := range n {
		residual[i] = y[i] - slope*x[i]
	}

	return Line{Slope: slope, Intercept: medianInPlace(residual)}, nil
}

// LeastSquares fits a line by ordinary least squares.
// It is sensitive to outliers and is provided for comparison.
func LeastSquares(x, y []float64) (Line, error) {
	if err := check(x, y); err != nil {
		return Line{}, err
	}

	if distinct(x) < 2 {
		return Line{}, ErrDegenerate
	}

	var sumX, sumY, sumXX, sumXY float64

	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXX += x[i] * x[i]
		sumXY += x[i] * y[i]
	}

	nf := float64(len(x))

	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return Line{}, ErrDegenerate
	}

	slope := (nf*sumXY - sumX*sumY) / denom

	return Line{Slope: slope, Intercept: (sumY - slope*sumX) / nf}, nil
}

func check(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	if len(x) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientData, len(x))
	}

	return nil
}

// distinct counts distinct non-NaN values.
func distinct(v []float64) int {
	s := slices.Clone(v)
	slices.Sort(s)

	count := 0
	prev := math.NaN()

	for _, x := range s {
		if math.IsNaN(x) {
			continue
		}

		if count == 0 || x != prev {
			count++
			prev = x
		}
	}

	return count
}

// DistinctCount reports how many distinct values v holds, ignoring NaN.
func DistinctCount(v []float64) int {
	return distinct(v)
}

func median(v []float64) float64 {
	return medianInPlace(slices.Clone(v))
}

// medianInPlace sorts v and returns its median.
func medianInPlace(v []float64) float64 {
	slices.Sort(v)

	n := len(v)
	if n%2 == 1 {
		return v[n/2]
	}

	return (v[n/2-1] + v[n/2]) / 2
}
