package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peak/dsp/signal"
	"github.com/cwbudde/algo-peak/internal/curveio"
	"github.com/cwbudde/algo-peak/internal/logging"
	"github.com/cwbudde/algo-peak/internal/runconfig"
	"github.com/cwbudde/algo-peak/measure/peak"
)

var errNoInput = errors.New("no input: set --input or input in the run file")

func extractCmd() *cobra.Command {
	var (
		configPath  string
		flags       runconfig.Config
		noNormalize bool
	)

	c := &cobra.Command{
		Use:   "extract",
		Short: "Extract the peak from a CSV curve and write it as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := runconfig.Default()
			base := ""

			if configPath != "" {
				var err error
				if cfg, err = runconfig.Load(configPath); err != nil {
					return err
				}
				base = filepath.Dir(configPath)
			}

			set := cmd.Flags().Changed
			if set("input") {
				cfg.Input, base = flags.Input, ""
			}
			if set("output") {
				cfg.Output = flags.Output
			}
			if set("x") {
				cfg.Columns.X = flags.Columns.X
			}
			if set("y") {
				cfg.Columns.Y = flags.Columns.Y
			}
			if set("left") {
				cfg.Left = flags.Left
			}
			if set("right") {
				cfg.Right = flags.Right
			}
			if set("iterations") {
				cfg.Iterations = flags.Iterations
			}
			if set("pointing-down") {
				cfg.PeakPointingDown = flags.PeakPointingDown
			}
			if set("no-normalize") {
				normalize := !noNormalize
				cfg.NormalizeArea = &normalize
			}
			if set("estimator") {
				cfg.Estimator = flags.Estimator
			}
			if set("smoothing") {
				cfg.Smoothing = flags.Smoothing
			}
			if set("grid") {
				cfg.Grid = flags.Grid
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return runExtract(cmd, cfg, base)
		},
	}

	f := c.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML run file; flags override its values")
	f.StringVarP(&flags.Input, "input", "i", "", `input CSV ("-" for stdin)`)
	f.StringVarP(&flags.Output, "output", "o", "", "output CSV (default stdout)")
	f.StringVar(&flags.Columns.X, "x", curveio.DefaultX, "x column name or zero-based index")
	f.StringVar(&flags.Columns.Y, "y", curveio.DefaultY, "y column name or zero-based index")
	f.Float64SliceVar(&flags.Left, "left", nil, "left flank region as low,high")
	f.Float64SliceVar(&flags.Right, "right", nil, "right flank region as low,high")
	f.IntVarP(&flags.Iterations, "iterations", "n", peak.DefaultIterations, "baseline refinement passes")
	f.BoolVar(&flags.PeakPointingDown, "pointing-down", false, "the peak points down (exothermic)")
	f.BoolVar(&noNormalize, "no-normalize", false, "keep the net peak area instead of scaling it to 1")
	f.StringVar(&flags.Estimator, "estimator", "theil-sen", "flank regression: theil-sen, repeated-median or least-squares")
	f.Float64Var(&flags.Smoothing, "smoothing", 0, "Gaussian pre-smoothing sigma in samples (0 disables)")
	f.IntVar(&flags.Grid, "grid", 0, "sample the peak function on N evenly spaced points")

	return c
}

func runExtract(cmd *cobra.Command, cfg runconfig.Config, base string) error {
	log := logging.Logger()

	if cfg.Input == "" {
		return errNoInput
	}

	x, y, err := readCurve(cmd.InOrStdin(), cfg.Input, base, cfg.Columns)
	if err != nil {
		return err
	}

	log.Info("tpib.read", "input", cfg.Input, "samples", len(x))

	left, right, err := cfg.Bounds()
	if err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	res, err := peak.Extract(x, y, left, right, opts...)
	if err != nil {
		return fmt.Errorf("extract %s: %w", cfg.Input, err)
	}

	if !res.Finite() {
		log.Warn("tpib.non_finite", "input", cfg.Input, "area", res.Area)
	}

	outX, outY := res.X, res.Y
	if cfg.Grid > 0 {
		outX, err = signal.Linspace(res.X[0], res.X[len(res.X)-1], cfg.Grid)
		if err != nil {
			return err
		}
		outY = make([]float64, len(outX))
		for i, v := range outX {
			outY[i] = res.At(v)
		}
	}

	w, closeOut, err := create(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if err := curveio.Write(w, [2]string{"x", "y"}, outX, outY); err != nil {
		_ = closeOut()
		return err
	}

	if err := closeOut(); err != nil {
		return err
	}

	d := res.Describe()
	fmt.Fprintf(cmd.ErrOrStderr(),
		"start=%g end=%g apex=%g samples=%d area=%g centroid=%g fwhm=%g\n",
		d.Onset, d.End, res.Apex.X, len(res.X), res.Area, d.Centroid, d.FWHM)

	return nil
}

func readCurve(stdin io.Reader, path, base string, cols runconfig.Columns) (x, y []float64, err error) {
	if path == "-" {
		return curveio.Read(stdin, cols.X, cols.Y)
	}

	if base != "" && !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	x, y, err = curveio.Read(f, cols.X, cols.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return x, y, nil
}
