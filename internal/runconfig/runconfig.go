// Package runconfig loads the YAML run file used by the tpib command.
package runconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-peak/measure/peak"
	"github.com/cwbudde/algo-peak/stats/regress"
)

// ErrInvalid marks a run file that parsed but failed validation.
var ErrInvalid = errors.New("runconfig: invalid run file")

// Columns selects the x and y columns of the input CSV by name or index.
type Columns struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// Config is one extraction run.
type Config struct {
	Input   string  `yaml:"input"`
	Output  string  `yaml:"output"`
	Columns Columns `yaml:"columns"`

	Left  []float64 `yaml:"left"`
	Right []float64 `yaml:"right"`

	Iterations       int     `yaml:"iterations"`
	PeakPointingDown bool    `yaml:"peak_pointing_down"`
	NormalizeArea    *bool   `yaml:"normalize_area"`
	Estimator        string  `yaml:"estimator"`
	Smoothing        float64 `yaml:"smoothing"`

	// Grid, when positive, samples the peak function on that many evenly
	// spaced points instead of writing the discrete window.
	Grid int `yaml:"grid"`
}

var estimators = map[string]regress.Estimator{
	"theil-sen":       regress.TheilSen,
	"repeated-median": regress.RepeatedMedian,
	"least-squares":   regress.LeastSquares,
}

// Estimators lists the accepted estimator names.
func Estimators() []string {
	names := make([]string, 0, len(estimators))
	for name := range estimators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns a run with the library defaults and no bounds.
func Default() Config {
	return Config{
		Iterations: peak.DefaultIterations,
		Estimator:  "theil-sen",
	}
}

// Load reads and validates the run file at path. Unset fields keep the
// values of Default.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("runconfig: %s: %w", path, err)
	}

	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("runconfig: %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the fields that the extractor and the CLI rely on.
func (c Config) Validate() error {
	if _, err := bounds("left", c.Left); err != nil {
		return err
	}

	if _, err := bounds("right", c.Right); err != nil {
		return err
	}

	if c.Iterations < 0 {
		return invalid("iterations", "must not be negative, got %d", c.Iterations)
	}

	if c.Smoothing < 0 {
		return invalid("smoothing", "must not be negative, got %g", c.Smoothing)
	}

	if c.Grid < 0 {
		return invalid("grid", "must not be negative, got %d", c.Grid)
	}

	if _, ok := estimators[c.estimatorName()]; !ok {
		return invalid("estimator", "unknown %q (want one of %s)", c.Estimator, strings.Join(Estimators(), ", "))
	}

	return nil
}

// Bounds returns the flank regions.
func (c Config) Bounds() (left, right peak.Bounds, err error) {
	if left, err = bounds("left", c.Left); err != nil {
		return left, right, err
	}
	right, err = bounds("right", c.Right)
	return left, right, err
}

// Options maps the run onto extractor options.
func (c Config) Options() ([]peak.Option, error) {
	est, ok := estimators[c.estimatorName()]
	if !ok {
		return nil, invalid("estimator", "unknown %q", c.Estimator)
	}

	opts := []peak.Option{
		peak.WithIterations(c.Iterations),
		peak.WithPeakPointingDown(c.PeakPointingDown),
		peak.WithEstimator(est),
		peak.WithSmoothing(c.Smoothing),
	}

	if c.NormalizeArea != nil {
		opts = append(opts, peak.WithNormalizeArea(*c.NormalizeArea))
	}

	return opts, nil
}

func (c Config) estimatorName() string {
	name := strings.ToLower(strings.TrimSpace(c.Estimator))
	if name == "" {
		return "theil-sen"
	}
	return name
}

func bounds(field string, v []float64) (peak.Bounds, error) {
	if len(v) != 2 {
		return peak.Bounds{}, invalid(field, "want [low, high], got %d values", len(v))
	}

	b := peak.Bounds{Low: v[0], High: v[1]}
	if !b.Valid() {
		return peak.Bounds{}, invalid(field, "want finite low <= high, got [%g, %g]", v[0], v[1])
	}

	return b, nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...))
}
