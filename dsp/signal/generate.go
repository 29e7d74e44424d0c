// Package signal generates deterministic synthetic curves for exercising
// peak extraction: evenly spaced axes, linear trends, peak shapes, sigmoidal
// transitions and seeded noise.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

var errLengthMismatch = errors.New("signal: inputs must have same length")

// Generator creates deterministic noisy curves.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured curve generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("linspace samples must be > 0: %d", n)
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out, nil
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out, nil
}

// Linear evaluates slope*x + intercept at every x.
func Linear(x []float64, slope, intercept float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = slope*v + intercept
	}
	return out
}

// Triangle evaluates a symmetric triangular bump of the given height,
// centred at center and zero outside |x-center| >= halfWidth.
func Triangle(x []float64, center, halfWidth, height float64) []float64 {
	out := make([]float64, len(x))
	if halfWidth <= 0 {
		return out
	}
	for i, v := range x {
		d := math.Abs(v-center) / halfWidth
		if d < 1 {
			out[i] = height * (1 - d)
		}
	}
	return out
}

// Gaussian evaluates height*exp(-(x-center)^2 / (2*sigma^2)).
func Gaussian(x []float64, center, sigma, height float64) []float64 {
	out := make([]float64, len(x))
	if sigma <= 0 {
		return out
	}
	for i, v := range x {
		d := (v - center) / sigma
		out[i] = height * math.Exp(-0.5*d*d)
	}
	return out
}

// Logistic evaluates the 0→1 sigmoid 1/(1+exp(-(x-center)/width)).
// A non-positive width yields a hard step at center.
func Logistic(x []float64, center, width float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		switch {
		case width > 0:
			out[i] = 1 / (1 + math.Exp(-(v-center)/width))
		case v >= center:
			out[i] = 1
		}
	}
	return out
}

// Blend returns a*(1-w) + b*w element-wise.
func Blend(a, b, w []float64) ([]float64, error) {
	if len(a) != len(b) || len(a) != len(w) {
		return nil, fmt.Errorf("%w: %d, %d, %d", errLengthMismatch, len(a), len(b), len(w))
	}
	diff := make([]float64, len(a))
	vecmath.ScaleBlock(diff, a, -1)
	vecmath.AddBlockInPlace(diff, b)

	out := make([]float64, len(a))
	vecmath.MulBlock(out, w, diff)
	vecmath.AddBlockInPlace(out, a)
	return out, nil
}

// Sum adds curves element-wise into a new slice.
func Sum(parts ...[]float64) ([]float64, error) {
	if len(parts) == 0 {
		return nil, nil
	}
	out := make([]float64, len(parts[0]))
	for i, p := range parts {
		if len(p) != len(out) {
			return nil, fmt.Errorf("%w: part %d has %d samples, want %d", errLengthMismatch, i, len(p), len(out))
		}
		vecmath.AddBlockInPlace(out, p)
	}
	return out, nil
}

// Negate flips the sign of every element in place.
func Negate(data []float64) {
	vecmath.ScaleBlockInPlace(data, -1)
}
