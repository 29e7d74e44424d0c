package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Errors returned by NewPiecewiseLinear.
var (
	ErrEmpty          = errors.New("interp: no sample points")
	ErrLengthMismatch = errors.New("interp: x and y must have same length")
	ErrUnsorted       = errors.New("interp: x must be non-decreasing")
)

// Linear2 interpolates between a and b at frac in [0,1].
func Linear2(frac, a, b float64) float64 {
	return a + frac*(b-a)
}

// PiecewiseLinear interpolates linearly between sample points.
type PiecewiseLinear struct {
	x, y        []float64
	left, right float64
}

// NewPiecewiseLinear creates an interpolator over the points (x[i], y[i]).
// x must be non-decreasing. Queries below x[0] return left, queries above
// x[len-1] return right. The slices are copied.
func NewPiecewiseLinear(x, y []float64, left, right float64) (*PiecewiseLinear, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	if len(x) == 0 {
		return nil, ErrEmpty
	}

	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%v < x[%d]=%v", ErrUnsorted, i, x[i], i-1, x[i-1])
		}
	}

	p := &PiecewiseLinear{
		x:     make([]float64, len(x)),
		y:     make([]float64, len(y)),
		left:  left,
		right: right,
	}
	copy(p.x, x)
	copy(p.y, y)

	return p, nil
}

// At returns the interpolated value at xq. NaN queries return NaN.
func (p *PiecewiseLinear) At(xq float64) float64 {
	n := len(p.x)

	switch {
	case math.IsNaN(xq):
		return math.NaN()
	case xq < p.x[0]:
		return p.left
	case xq > p.x[n-1]:
		return p.right
	case xq == p.x[n-1]:
		return p.y[n-1]
	}

	// First index with x > xq; xq lies in [x[j-1], x[j]).
	j := sort.Search(n, func(i int) bool { return p.x[i] > xq })
	x0, x1 := p.x[j-1], p.x[j]

	if x1 == x0 {
		return p.y[j-1]
	}

	return Linear2((xq-x0)/(x1-x0), p.y[j-1], p.y[j])
}

// Func returns At as a plain function value.
func (p *PiecewiseLinear) Func() func(float64) float64 {
	return p.At
}

// Eval writes At(xq[i]) into dst and returns it, allocating when dst is
// shorter than xq.
func (p *PiecewiseLinear) Eval(dst, xq []float64) []float64 {
	if cap(dst) < len(xq) {
		dst = make([]float64, len(xq))
	}

	dst = dst[:len(xq)]
	for i, v := range xq {
		dst[i] = p.At(v)
	}

	return dst
}

// Span returns the first and last sample x.
func (p *PiecewiseLinear) Span() (lo, hi float64) {
	return p.x[0], p.x[len(p.x)-1]
}
