package peak

import (
	"fmt"

	"github.com/cwbudde/algo-peak/stats/regress"
)

// fitFlanks fits one line to the samples with x <= left.High and one to the
// samples with x >= right.Low.
func fitFlanks(c curve, left, right Bounds, est regress.Estimator) (regress.Line, regress.Line, error) {
	lx, ly := c.sub(func(x float64) bool { return x <= left.High })

	l, err := fitFlank("left", lx, ly, est)
	if err != nil {
		return regress.Line{}, regress.Line{}, err
	}

	rx, ry := c.sub(func(x float64) bool { return x >= right.Low })

	r, err := fitFlank("right", rx, ry, est)
	if err != nil {
		return regress.Line{}, regress.Line{}, err
	}

	return l, r, nil
}

func fitFlank(side string, x, y []float64, est regress.Estimator) (regress.Line, error) {
	if n := regress.DistinctCount(x); n < 2 {
		return regress.Line{}, fmt.Errorf("%w: %s flank has %d distinct x values, need 2",
			ErrInsufficientData, side, n)
	}

	line, err := est(x, y)
	if err != nil {
		return regress.Line{}, fmt.Errorf("%w: %s flank: %w", ErrInsufficientData, side, err)
	}

	return line, nil
}
