package peak

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-peak/dsp/integrate"
	"github.com/cwbudde/algo-peak/internal/logging"
	"github.com/cwbudde/algo-peak/stats/regress"
)

// estimator refines the baseline under a peak window. Buffers are sized
// once and reused across iterations; only the prefix integral of the current
// iteration is cached.
type estimator struct {
	x, y []float64

	left  []float64 // left flank line at x
	span  []float64 // right(x) - left(x)
	trace []float64 // current baseline
	next  []float64

	resid  []float64
	prefix []float64
	alpha  []float64
	delta  []float64
}

func newEstimator(x, y []float64, left, right regress.Line) *estimator {
	n := len(x)
	e := &estimator{
		x:      x,
		y:      y,
		left:   make([]float64, n),
		span:   make([]float64, n),
		trace:  make([]float64, n),
		next:   make([]float64, n),
		resid:  make([]float64, n),
		prefix: make([]float64, n),
		alpha:  make([]float64, n),
		delta:  make([]float64, n),
	}

	for i, v := range x {
		e.left[i] = left.At(v)
		e.span[i] = right.At(v)
	}
	vecmath.ScaleBlock(e.delta, e.left, -1)
	vecmath.AddBlockInPlace(e.span, e.delta)

	return e
}

// seed sets the baseline to the chord through the window end points.
func (e *estimator) seed(start, end Point) {
	chord := regress.Chord(start.X, start.Y, end.X, end.Y)
	for i, v := range e.x {
		e.trace[i] = chord.At(v)
	}
}

// residual writes y - trace into e.resid.
func (e *estimator) residual() []float64 {
	vecmath.ScaleBlock(e.resid, e.trace, -1)
	vecmath.AddBlockInPlace(e.resid, e.y)
	return e.resid
}

// step performs one refinement pass and returns the net peak area under the
// previous baseline and the largest absolute baseline change.
func (e *estimator) step() (area, shift float64) {
	n := len(e.x)

	e.prefix = integrate.CumTrapz(e.prefix, e.x, e.residual())
	area = e.prefix[n-1]

	// α_i is the area strictly before sample i; trapz over [0..i) ends at
	// sample i-1.
	e.alpha[0] = 0
	for i := 1; i < n; i++ {
		e.alpha[i] = e.prefix[i-1] / area
	}

	// left·(1−α) + right·α == left + α·(right−left)
	vecmath.MulBlock(e.next, e.alpha, e.span)
	vecmath.AddBlockInPlace(e.next, e.left)

	vecmath.ScaleBlock(e.delta, e.trace, -1)
	vecmath.AddBlockInPlace(e.delta, e.next)
	shift = vecmath.MaxAbs(e.delta)

	e.trace, e.next = e.next, e.trace

	return area, shift
}

// run seeds the baseline and refines it exactly iterations times. It returns
// the per-iteration shifts.
func (e *estimator) run(start, end Point, iterations int) []float64 {
	e.seed(start, end)

	log := logging.Logger()
	shifts := make([]float64, 0, iterations)

	for it := range iterations {
		area, shift := e.step()
		shifts = append(shifts, shift)
		log.Debug("peak.iteration", "n", it+1, "area", area, "shift", shift)
	}

	return shifts
}

// baseline returns a copy of the current baseline trace.
func (e *estimator) baseline() []float64 {
	out := make([]float64, len(e.trace))
	copy(out, e.trace)
	return out
}
