// Package regress provides straight-line regression primitives for sampled
// curves.
//
// Three estimators share the [Estimator] signature:
//
//   - [TheilSen]:       median of all pairwise slopes (robust, breakdown ~29%)
//   - [RepeatedMedian]: Siegel's repeated medians (robust, breakdown 50%)
//   - [LeastSquares]:   ordinary least squares (not robust)
//
// All estimators are deterministic: slope lists are fully sorted and even
// counts take the mean of the two middle values, so identical input always
// yields an identical [Line].
//
// # Usage
//
//	line, err := regress.TheilSen(x, y)
//	if err != nil {
//		return err
//	}
//	trend := line.At(850)
package regress
