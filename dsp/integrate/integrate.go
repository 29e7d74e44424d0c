// Package integrate provides trapezoidal integration over non-uniformly
// sampled curves.
//
// [Trapz] returns the definite integral over all samples. [CumTrapz] returns
// every prefix integral in one pass, so that prefix[i] equals
// Trapz(x[:i+1], y[:i+1]) for each i.
package integrate

import "fmt"

// Trapz integrates y over x with the trapezoidal rule.
// Fewer than two samples integrate to 0. x need not be sorted; segments with
// decreasing x contribute negative area.
// Panics if x and y differ in length.
func Trapz(x, y []float64) float64 {
	mustMatch(x, y)

	var area float64
	for i := 1; i < len(x); i++ {
		area += segment(x[i-1], x[i], y[i-1], y[i])
	}

	return area
}

// CumTrapz writes the running trapezoidal integral of y over x into dst and
// returns it. dst[0] is 0. If dst is too short a new slice is allocated.
// Panics if x and y differ in length.
func CumTrapz(dst, x, y []float64) []float64 {
	mustMatch(x, y)

	n := len(x)
	if cap(dst) < n {
		dst = make([]float64, n)
	}

	dst = dst[:n]
	if n == 0 {
		return dst
	}

	dst[0] = 0
	for i := 1; i < n; i++ {
		dst[i] = dst[i-1] + segment(x[i-1], x[i], y[i-1], y[i])
	}

	return dst
}

func segment(x0, x1, y0, y1 float64) float64 {
	return (x1 - x0) * (y0 + y1) / 2
}

func mustMatch(x, y []float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("integrate: length mismatch: x=%d y=%d", len(x), len(y)))
	}
}
