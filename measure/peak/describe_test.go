package peak

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-peak/internal/testutil"
)

func handResult(t *testing.T, x, y []float64) Result {
	t.Helper()
	r := Result{X: x, Y: y}
	if err := r.index(); err != nil {
		t.Fatalf("index() error = %v", err)
	}
	return r
}

func TestDescribeTriangle(t *testing.T) {
	r := handResult(t, []float64{0, 1, 2, 3, 4}, []float64{0, 1, 2, 1, 0})

	d := r.Describe()
	if d.Onset != 0 || d.End != 4 {
		t.Fatalf("Onset/End = %v/%v, want 0/4", d.Onset, d.End)
	}
	if d.ApexX != 2 || d.ApexY != 2 {
		t.Fatalf("apex = (%v, %v), want (2, 2)", d.ApexX, d.ApexY)
	}
	testutil.RequireNearlyEqual(t, "area", d.Area, 4, 1e-12)
	testutil.RequireNearlyEqual(t, "centroid", d.Centroid, 2, 1e-12)
	testutil.RequireNearlyEqual(t, "fwhm", d.FWHM, 2, 1e-12)
}

func TestDescribeEdgeCases(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		d := Result{}.Describe()
		if !math.IsNaN(d.Centroid) || !math.IsNaN(d.FWHM) {
			t.Fatalf("empty descriptors = %+v, want NaN centroid and width", d)
		}
	})

	t.Run("non-positive apex", func(t *testing.T) {
		r := handResult(t, []float64{0, 1, 2}, []float64{-1, -2, -1})
		if d := r.Describe(); !math.IsNaN(d.FWHM) {
			t.Fatalf("FWHM = %v, want NaN", d.FWHM)
		}
	})

	t.Run("half height not reached", func(t *testing.T) {
		r := handResult(t, []float64{0, 1, 2}, []float64{1.5, 2, 1.5})
		testutil.RequireNearlyEqual(t, "fwhm", r.Describe().FWHM, 2, 0)
	})
}

func TestFraction(t *testing.T) {
	r := handResult(t, []float64{0, 1, 2, 3, 4}, []float64{0, 1, 2, 1, 0})

	for _, tc := range []struct {
		x, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.03125},
		{1, 0.125},
		{2, 0.5},
		{3, 0.875},
		{4, 1},
		{10, 1},
	} {
		testutil.RequireNearlyEqual(t, "fraction", r.Fraction(tc.x), tc.want, 1e-12)
	}

	if !math.IsNaN(r.Fraction(math.NaN())) {
		t.Fatal("Fraction(NaN) should be NaN")
	}
}

func TestFractionMonotoneOnExtractedPeak(t *testing.T) {
	x, y := dscCurve(t, 0, 1)

	res, err := Extract(x, y, dscLeft, dscRight, WithPeakPointingDown(true))
	if err != nil {
		t.Fatal(err)
	}

	d := res.Describe()
	testutil.RequireNearlyEqual(t, "area", d.Area, 1, 1e-9)
	if math.Abs(d.Centroid-900) > 5 {
		t.Fatalf("centroid = %v, want near 900", d.Centroid)
	}
	// Gaussian with sigma 25: FWHM = 2*sqrt(2 ln 2)*25.
	if math.Abs(d.FWHM-58.87) > 3 {
		t.Fatalf("FWHM = %v, want near 58.87", d.FWHM)
	}

	var fr []float64
	for q := res.X[0]; q <= res.X[len(res.X)-1]; q += 0.25 {
		fr = append(fr, res.Fraction(q))
	}
	// The start sample sits at or just below the left flank line, so the
	// running integral may dip by rounding-sized amounts past the onset.
	for i := 1; i < len(fr); i++ {
		if fr[i] < fr[i-1]-1e-9 {
			t.Fatalf("Fraction decreases at step %d: %v < %v", i, fr[i], fr[i-1])
		}
	}
	testutil.RequireNearlyEqual(t, "fraction at apex", res.Fraction(900), 0.5, 0.02)
}
