// Package smooth provides zero-phase smoothing for noisy sampled curves.
//
// [Gaussian] convolves a curve with a normalized Gaussian kernel using
// FFT-based linear convolution. The curve is mirrored at both ends before
// filtering so that the edges are not pulled toward zero.
//
// Smoothing works in the sample-index domain: sigma is measured in samples,
// which matches the physical axis only for (near-)uniformly sampled data.
package smooth

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrInvalidSigma is returned when sigma is not a positive finite number.
var ErrInvalidSigma = errors.New("smooth: sigma must be positive and finite")

// kernelRadius is the kernel half-width in units of sigma.
const kernelRadius = 4.0

// GaussianKernel returns a normalized Gaussian kernel of length 2*r+1 with
// r = ceil(4*sigma).
func GaussianKernel(sigma float64) ([]float64, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}

	r := int(math.Ceil(kernelRadius * sigma))
	kernel := make([]float64, 2*r+1)

	var sum float64
	for i := range kernel {
		d := float64(i - r)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel, nil
}

// Gaussian smooths src with a Gaussian of the given sigma (in samples) and
// writes the result into dst, which is returned. dst may alias src. If dst
// is too short a new slice is allocated.
func Gaussian(dst, src []float64, sigma float64) ([]float64, error) {
	kernel, err := GaussianKernel(sigma)
	if err != nil {
		return nil, err
	}

	n := len(src)
	if cap(dst) < n {
		dst = make([]float64, n)
	}

	dst = dst[:n]
	if n <= 1 {
		copy(dst, src)
		return dst, nil
	}

	r := len(kernel) / 2
	padded := n + 2*r
	fftSize := nextPowerOf2(padded + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("smooth: failed to create FFT plan: %w", err)
	}

	sig := make([]complex128, fftSize)
	for i := range padded {
		sig[i] = complex(src[reflect(i-r, n)], 0)
	}

	ker := make([]complex128, fftSize)
	for i, v := range kernel {
		ker[i] = complex(v, 0)
	}

	if err := plan.Forward(sig, sig); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	if err := plan.Forward(ker, ker); err != nil {
		return nil, fmt.Errorf("smooth: kernel FFT failed: %w", err)
	}

	for i := range sig {
		sig[i] *= ker[i]
	}

	if err := plan.Inverse(sig, sig); err != nil {
		return nil, fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	// Full convolution output index k corresponds to padded index k-r, so
	// input sample i sits at k = i + 2r.
	for i := range dst {
		dst[i] = real(sig[i+2*r])
	}

	return dst, nil
}

// reflect maps i onto [0, n) by mirroring about the end samples without
// repeating them (…, 2, 1, 0, 1, 2, …).
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}

	period := 2 * (n - 1)

	i %= period
	if i < 0 {
		i += period
	}

	if i >= n {
		i = period - i
	}

	return i
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
