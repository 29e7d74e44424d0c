package peak

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-peak/dsp/smooth"
)

// Point is one (x, y) sample.
type Point struct {
	X, Y float64
}

// Bounds is an inclusive x interval.
type Bounds struct {
	Low, High float64
}

// Valid reports whether both ends are finite and Low <= High.
func (b Bounds) Valid() bool {
	return isFinite(b.Low) && isFinite(b.High) && b.Low <= b.High
}

// Contains reports whether Low <= x <= High.
func (b Bounds) Contains(x float64) bool {
	return b.Low <= x && x <= b.High
}

// curve is a sorted, restricted and oriented sample sequence.
type curve struct {
	x, y []float64
}

func (c curve) len() int { return len(c.x) }

func (c curve) at(i int) Point { return Point{X: c.x[i], Y: c.y[i]} }

// prepare sorts the samples by x (then y), keeps those inside
// [left.Low, right.High], negates y for downward peaks and optionally
// smooths. The caller's slices are not modified.
func prepare(x, y []float64, left, right Bounds, cfg Config) (curve, error) {
	if len(x) != len(y) {
		return curve{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	if !left.Valid() {
		return curve{}, fmt.Errorf("%w: left %v", ErrInvalidBounds, left)
	}

	if !right.Valid() {
		return curve{}, fmt.Errorf("%w: right %v", ErrInvalidBounds, right)
	}

	samples := make([]Point, 0, len(x))
	for i := range x {
		if left.Low <= x[i] && x[i] <= right.High {
			samples = append(samples, Point{X: x[i], Y: y[i]})
		}
	}

	if len(samples) < 2 {
		return curve{}, fmt.Errorf("%w: %d samples inside [%g, %g]",
			ErrInsufficientData, len(samples), left.Low, right.High)
	}

	slices.SortFunc(samples, func(a, b Point) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})

	c := curve{
		x: make([]float64, len(samples)),
		y: make([]float64, len(samples)),
	}
	for i, s := range samples {
		c.x[i] = s.X
		c.y[i] = s.Y
	}

	if cfg.PeakPointingDown {
		vecmath.ScaleBlockInPlace(c.y, -1)
	}

	if cfg.Smoothing > 0 {
		if _, err := smooth.Gaussian(c.y, c.y, cfg.Smoothing); err != nil {
			return curve{}, err
		}
	}

	return c, nil
}

// sub returns the samples matching keep.
func (c curve) sub(keep func(x float64) bool) (xs, ys []float64) {
	for i, v := range c.x {
		if keep(v) {
			xs = append(xs, v)
			ys = append(ys, c.y[i])
		}
	}
	return xs, ys
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
