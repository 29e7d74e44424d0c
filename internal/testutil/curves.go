package testutil

import (
	"math/rand"
)

// DeterministicNoise generates white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued curve.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Shuffle returns copies of x and y permuted by the same deterministic
// permutation, keeping each (x[i], y[i]) pair together.
func Shuffle(seed int64, x, y []float64) ([]float64, []float64) {
	perm := rand.New(rand.NewSource(seed)).Perm(len(x))
	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	for i, p := range perm {
		xs[i] = x[p]
		ys[i] = y[p]
	}
	return xs, ys
}

// Negate returns a copy of v with every element sign-flipped.
func Negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}
