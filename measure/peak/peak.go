package peak

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-peak/dsp/integrate"
	"github.com/cwbudde/algo-peak/dsp/interp"
	"github.com/cwbudde/algo-peak/internal/logging"
	"github.com/cwbudde/algo-peak/stats/regress"
)

// Result is an extracted peak. All slices are owned by the Result.
type Result struct {
	// X holds the peak window x values in ascending order.
	X []float64
	// Y holds the baseline-subtracted (and optionally normalized) signal.
	Y []float64
	// Baseline is the converged baseline under the window, in the processed
	// orientation (negated for downward peaks).
	Baseline []float64

	// Start and End are the boundary samples, Apex the maximum of the
	// processed curve.
	Start, End, Apex Point

	// Left and Right are the flank lines.
	Left, Right regress.Line

	// Area is the net peak area before normalization.
	Area float64
	// Normalized reports whether Y was scaled to unit area.
	Normalized bool
	// Shifts holds the largest absolute baseline change of each iteration.
	Shifts []float64

	fn  *interp.PiecewiseLinear
	cum []float64
}

// At returns the linearly interpolated peak value at x, or exactly 0 when x
// lies outside [X[0], X[len-1]].
func (r Result) At(x float64) float64 {
	if r.fn == nil {
		return 0
	}
	return r.fn.At(x)
}

// Func returns At as a plain function value.
func (r Result) Func() func(float64) float64 {
	return r.At
}

// Finite reports whether every X and Y value is finite. A false result
// means the peak area or the normalization area was zero.
func (r Result) Finite() bool {
	for i := range r.Y {
		if !isFinite(r.X[i]) || !isFinite(r.Y[i]) {
			return false
		}
	}
	return true
}

// index builds the interpolator and the running integral over X and Y.
func (r *Result) index() error {
	fn, err := interp.NewPiecewiseLinear(r.X, r.Y, 0, 0)
	if err != nil {
		return err
	}

	r.fn = fn
	r.cum = integrate.CumTrapz(nil, r.X, r.Y)

	return nil
}

// Extractor runs peak extraction with a fixed configuration.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor from options applied to DefaultConfig.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{cfg: ApplyOptions(opts...)}
}

// Config returns the resolved configuration.
func (e *Extractor) Config() Config {
	return e.cfg
}

// Extract is shorthand for NewExtractor(opts...).Extract(x, y, left, right).
func Extract(x, y []float64, left, right Bounds, opts ...Option) (Result, error) {
	return NewExtractor(opts...).Extract(x, y, left, right)
}

// Extract isolates the peak between the flank regions left and right.
//
// x and y may be unsorted but must have equal length. Both flank regions
// must lie outside the peak and hold at least two distinct x values each.
// It returns ErrInsufficientData, ErrNoBoundaryFound, ErrLengthMismatch or
// ErrInvalidBounds (possibly wrapped) on failure.
func (e *Extractor) Extract(x, y []float64, left, right Bounds) (Result, error) {
	log := logging.Logger()

	c, err := prepare(x, y, left, right, e.cfg)
	if err != nil {
		return Result{}, err
	}

	log.Debug("peak.prepared", "samples", c.len(), "pointing_down", e.cfg.PeakPointingDown,
		"smoothing", e.cfg.Smoothing)

	leftLine, rightLine, err := fitFlanks(c, left, right, e.cfg.Estimator)
	if err != nil {
		return Result{}, err
	}

	log.Debug("peak.flanks", "left", leftLine.String(), "right", rightLine.String())

	apex, start, end, w, err := locate(c, leftLine, rightLine)
	if err != nil {
		return Result{}, err
	}

	log.Debug("peak.boundaries", "apex_x", c.x[apex], "start_x", start.X, "end_x", end.X,
		"samples", w.len())

	wx := c.x[w.lo : w.hi+1]
	wy := c.y[w.lo : w.hi+1]

	est := newEstimator(wx, wy, leftLine, rightLine)
	shifts := est.run(start, end, e.cfg.Iterations)

	res := Result{
		X:        make([]float64, len(wx)),
		Y:        make([]float64, len(wx)),
		Baseline: est.baseline(),
		Start:    start,
		End:      end,
		Apex:     c.at(apex),
		Left:     leftLine,
		Right:    rightLine,
		Shifts:   shifts,
	}
	copy(res.X, wx)

	vecmath.ScaleBlock(res.Y, res.Baseline, -1)
	vecmath.AddBlockInPlace(res.Y, wy)

	res.Area = integrate.Trapz(res.X, res.Y)

	if e.cfg.NormalizeArea {
		vecmath.ScaleBlockInPlace(res.Y, 1/res.Area)
		res.Normalized = true
	}

	if err := res.index(); err != nil {
		return Result{}, err
	}

	if !res.Finite() {
		log.Warn("peak.degenerate_area", "area", res.Area)
	}

	log.Debug("peak.done", "samples", len(res.X), "area", res.Area, "normalized", res.Normalized)

	return res, nil
}
