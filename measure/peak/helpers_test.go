package peak

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-peak/dsp/signal"
	"github.com/cwbudde/algo-peak/stats/regress"
)

// triangleCurve is y=2x+1 on [0,10], y=-x+40 on [30,40] and, in between,
// the chord from (10,21) to (30,10) plus a triangular bump of height 30
// peaking at x=20. Samples every 0.5.
func triangleCurve() (x, y []float64) {
	x, _ = signal.Linspace(0, 40, 81)
	y = make([]float64, len(x))
	for i, t := range x {
		switch {
		case t <= 10:
			y[i] = 2*t + 1
		case t >= 30:
			y[i] = -t + 40
		default:
			y[i] = 21 + (10-21)*(t-10)/20 + 30*math.Max(0, 1-math.Abs(t-20)/10)
		}
	}
	return x, y
}

var (
	triangleLeft  = Bounds{Low: 0, High: 10}
	triangleRight = Bounds{Low: 30, High: 40}
	dscLeft       = Bounds{Low: 700, High: 800}
	dscRight      = Bounds{Low: 1000, High: 1100}
)

// dscCurve is a downward Gaussian peak at x=900 on a sigmoidally switching
// baseline, sampled every 1 from 700 to 1100.
func dscCurve(t *testing.T, noise float64, seed int64) (x, y []float64) {
	t.Helper()
	x, err := signal.Linspace(700, 1100, 401)
	if err != nil {
		t.Fatal(err)
	}
	y, err = signal.NewGenerator(signal.WithSeed(seed)).Curve(x, signal.DefaultTransformation(), noise)
	if err != nil {
		t.Fatal(err)
	}
	return x, y
}

// referenceExtract re-integrates every partial area from scratch on every
// iteration, the quadratic form of the method, for parity checks.
func referenceExtract(t *testing.T, x, y []float64, left, right Bounds, iterations int, down bool) (xs, ys []float64) {
	t.Helper()

	c, err := prepare(x, y, left, right, Config{PeakPointingDown: down})
	if err != nil {
		t.Fatal(err)
	}
	lx, ly := c.sub(func(v float64) bool { return v <= left.High })
	rx, ry := c.sub(func(v float64) bool { return v >= right.Low })
	l, err := regress.TheilSen(lx, ly)
	if err != nil {
		t.Fatal(err)
	}
	r, err := regress.TheilSen(rx, ry)
	if err != nil {
		t.Fatal(err)
	}

	_, start, end, w, err := locate(c, l, r)
	if err != nil {
		t.Fatal(err)
	}
	px := c.x[w.lo : w.hi+1]
	py := c.y[w.lo : w.hi+1]

	trapz := func(xs, ys []float64) float64 {
		var a float64
		for i := 1; i < len(xs); i++ {
			a += (xs[i] - xs[i-1]) * (ys[i-1] + ys[i]) / 2
		}
		return a
	}

	m := (start.Y - end.Y) / (start.X - end.X)
	b := start.Y - m*start.X
	bl := make([]float64, len(px))
	for i, v := range px {
		bl[i] = m*v + b
	}

	for range iterations {
		resid := make([]float64, len(px))
		for i := range px {
			resid[i] = py[i] - bl[i]
		}
		area := trapz(px, resid)
		next := make([]float64, len(px))
		for i := range px {
			alpha := trapz(px[:i], resid[:i]) / area
			next[i] = l.At(px[i])*(1-alpha) + r.At(px[i])*alpha
		}
		bl = next
	}

	ys = make([]float64, len(px))
	for i := range px {
		ys[i] = py[i] - bl[i]
	}
	area := trapz(px, ys)
	for i := range ys {
		ys[i] /= area
	}

	xs = make([]float64, len(px))
	copy(xs, px)
	return xs, ys
}
