package peak

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-peak/stats/regress"
)

// window is an inclusive index range into a curve.
type window struct {
	lo, hi int
}

func (w window) len() int { return w.hi - w.lo + 1 }

// apexIndex returns the index of the largest y, preferring the first
// occurrence on ties. NaN samples never win.
func apexIndex(y []float64) int {
	best := -1
	for i, v := range y {
		if !math.IsNaN(v) && (best < 0 || v > y[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// locate finds the peak start, scanning from the apex toward lower x for
// the first sample at or below the left line, and the peak end, scanning
// toward higher x for the first sample at or below the right line.
func locate(c curve, left, right regress.Line) (apex int, start, end Point, w window, err error) {
	n := c.len()
	apex = apexIndex(c.y)
	xM := c.x[apex]

	// Samples with x <= xM, walked in descending x.
	lastLE := sort.Search(n, func(i int) bool { return c.x[i] > xM }) - 1

	startIdx := -1
	for i := lastLE; i >= 0; i-- {
		if c.y[i]-left.At(c.x[i]) <= 0 {
			startIdx = i
			break
		}
	}

	if startIdx < 0 {
		return apex, Point{}, Point{}, window{}, fmt.Errorf(
			"%w: curve stays above left baseline between x=%g and apex x=%g",
			ErrNoBoundaryFound, c.x[0], xM)
	}

	// Samples with x >= xM, walked in ascending x.
	firstGE := sort.Search(n, func(i int) bool { return c.x[i] >= xM })

	endIdx := -1
	for i := firstGE; i < n; i++ {
		if c.y[i]-right.At(c.x[i]) <= 0 {
			endIdx = i
			break
		}
	}

	if endIdx < 0 {
		return apex, Point{}, Point{}, window{}, fmt.Errorf(
			"%w: curve stays above right baseline between apex x=%g and x=%g",
			ErrNoBoundaryFound, xM, c.x[n-1])
	}

	start, end = c.at(startIdx), c.at(endIdx)

	// Every sample with start.X <= x <= end.X, including duplicates of the
	// boundary x values.
	w = window{
		lo: sort.Search(n, func(i int) bool { return c.x[i] >= start.X }),
		hi: sort.Search(n, func(i int) bool { return c.x[i] > end.X }) - 1,
	}

	return apex, start, end, w, nil
}
