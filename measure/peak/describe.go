package peak

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-peak/dsp/interp"
)

// Descriptors summarizes the shape of an extracted peak.
type Descriptors struct {
	Onset    float64 // first window x
	End      float64 // last window x
	ApexX    float64 // x of the largest cleaned value
	ApexY    float64 // largest cleaned value
	Area     float64 // net area of Y (1 when normalized)
	Centroid float64 // ∫x·y dx / ∫y dx
	FWHM     float64 // full width at half of ApexY; NaN if undefined
}

// Describe computes the peak descriptors of the cleaned signal.
func (r Result) Describe() Descriptors {
	n := len(r.X)
	if n == 0 {
		return Descriptors{Centroid: math.NaN(), FWHM: math.NaN()}
	}

	apex := apexIndex(r.Y)
	d := Descriptors{
		Onset: r.X[0],
		End:   r.X[n-1],
		ApexX: r.X[apex],
		ApexY: r.Y[apex],
		Area:  r.cum[n-1],
	}

	xy := make([]float64, n)
	for i := range xy {
		xy[i] = r.X[i] * r.Y[i]
	}

	var moment float64
	for i := 1; i < n; i++ {
		moment += (r.X[i] - r.X[i-1]) * (xy[i-1] + xy[i]) / 2
	}

	d.Centroid = moment / d.Area
	d.FWHM = r.fwhm(apex)

	return d
}

// fwhm linearly interpolates the half-height crossings on each side of the
// apex. A side that never falls below half height uses the window edge.
func (r Result) fwhm(apex int) float64 {
	peakY := r.Y[apex]
	if !(peakY > 0) {
		return math.NaN()
	}

	half := peakY / 2
	n := len(r.X)

	lo := r.X[0]
	for i := apex; i > 0; i-- {
		if r.Y[i-1] < half {
			lo = crossing(r.X[i-1], r.Y[i-1], r.X[i], r.Y[i], half)
			break
		}
	}

	hi := r.X[n-1]
	for i := apex; i < n-1; i++ {
		if r.Y[i+1] < half {
			hi = crossing(r.X[i], r.Y[i], r.X[i+1], r.Y[i+1], half)
			break
		}
	}

	return hi - lo
}

func crossing(x0, y0, x1, y1, level float64) float64 {
	if y1 == y0 {
		return x0
	}
	return interp.Linear2((level-y0)/(y1-y0), x0, x1)
}

// Fraction returns the share of the net peak area accumulated up to x:
// 0 before the window, 1 after it, and the interpolated running integral
// divided by the total area in between. For DSC crystallization peaks this
// is the transformed (crystallized) fraction.
func (r Result) Fraction(x float64) float64 {
	n := len(r.X)

	switch {
	case n == 0 || math.IsNaN(x):
		return math.NaN()
	case x < r.X[0]:
		return 0
	case x >= r.X[n-1]:
		return 1
	}

	total := r.cum[n-1]

	j := sort.Search(n, func(i int) bool { return r.X[i] > x })
	x0, y0 := r.X[j-1], r.Y[j-1]
	yq := r.At(x)

	return (r.cum[j-1] + (x-x0)*(y0+yq)/2) / total
}
