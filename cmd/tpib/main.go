// Command tpib extracts a single transformation peak from a measured curve
// and removes its iteratively estimated baseline.
//
// Usage:
//
//	tpib extract [flags]
//	tpib synth [flags]
//
// Examples:
//
//	tpib synth --output dsc.csv
//	tpib extract --input dsc.csv --left 700,800 --right 1000,1100 --pointing-down
//	tpib extract --config run.yaml --grid 50 --output peak.csv
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peak/internal/logging"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "tpib",
		Short:        "Transformation peak extraction with an iterative baseline",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogging(stderr, debug)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every extraction stage and iteration")
	cmd.AddCommand(extractCmd(), synthCmd())

	return cmd
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logging.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// create opens path for writing, or returns w when path is empty or "-".
func create(path string, w io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return w, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
