// Package peak extracts a single transformation peak from a measured curve
// and removes an iteratively estimated, non-linear baseline from it.
//
// The method follows Reis (2012) and Reis, Fokin and Zanotto (2016), who
// developed it to isolate crystallization peaks in DSC runs:
//
//  1. Sort the samples by x, keep those inside [left.Low, right.High] and,
//     for downward peaks, negate y.
//  2. Fit one robust straight line to each flank: samples with
//     x <= left.High and samples with x >= right.Low (Theil–Sen by default).
//  3. From the apex (maximum y), walk toward lower x until the curve drops
//     to or below the left line, and toward higher x until it drops to or
//     below the right line. These two samples bound the peak window.
//  4. Start from the chord between the two boundary samples and repeat a
//     fixed number of times: with α(x) the fraction of peak area accumulated
//     before x, replace the baseline by left(x)·(1−α) + right(x)·α.
//  5. Subtract the baseline, optionally normalize the net area to 1, and
//     wrap the result in a linear interpolator that is 0 outside the window.
//
// Degenerate peaks (zero net area) produce NaN or Inf values instead of an
// error; use [Result.Finite] to detect them.
//
// # Usage
//
//	res, err := peak.Extract(x, y,
//		peak.Bounds{Low: 765, High: 820},
//		peak.Bounds{Low: 1000, High: 1150},
//		peak.WithPeakPointingDown(true),
//	)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.At(900))
package peak
