package peak

import "github.com/cwbudde/algo-peak/stats/regress"

// DefaultIterations is the number of baseline refinement passes.
const DefaultIterations = 10

// Config holds the extraction settings.
type Config struct {
	// Iterations is the exact number of baseline refinement passes.
	Iterations int
	// PeakPointingDown negates y before processing so the peak points up.
	PeakPointingDown bool
	// NormalizeArea rescales the result to unit net area.
	NormalizeArea bool
	// Estimator fits the flank lines.
	Estimator regress.Estimator
	// Smoothing is the Gaussian sigma, in samples, applied to the curve
	// before fitting. Zero disables smoothing.
	Smoothing float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings of the published method.
func DefaultConfig() Config {
	return Config{
		Iterations:    DefaultIterations,
		NormalizeArea: true,
		Estimator:     regress.TheilSen,
	}
}

// WithIterations sets the number of refinement passes.
func WithIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Iterations = n
		}
	}
}

// WithPeakPointingDown marks the peak as pointing down (e.g. exothermic).
func WithPeakPointingDown(down bool) Option {
	return func(cfg *Config) {
		cfg.PeakPointingDown = down
	}
}

// WithNormalizeArea enables or disables unit-area normalization.
func WithNormalizeArea(normalize bool) Option {
	return func(cfg *Config) {
		cfg.NormalizeArea = normalize
	}
}

// WithEstimator selects the flank regression.
func WithEstimator(est regress.Estimator) Option {
	return func(cfg *Config) {
		if est != nil {
			cfg.Estimator = est
		}
	}
}

// WithSmoothing enables Gaussian pre-smoothing with sigma in samples.
func WithSmoothing(sigma float64) Option {
	return func(cfg *Config) {
		if sigma > 0 {
			cfg.Smoothing = sigma
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
