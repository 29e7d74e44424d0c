package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peak/dsp/signal"
	"github.com/cwbudde/algo-peak/internal/curveio"
	"github.com/cwbudde/algo-peak/internal/logging"
)

func synthCmd() *cobra.Command {
	var (
		points   int
		from, to float64
		noise    float64
		seed     int64
		down     bool
		output   string
	)

	c := &cobra.Command{
		Use:   "synth",
		Short: "Write a synthetic DSC-like curve with one transformation peak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x, err := signal.Linspace(from, to, points)
			if err != nil {
				return err
			}

			t := signal.DefaultTransformation()
			if !down {
				t.Height = -t.Height
			}

			y, err := signal.NewGenerator(signal.WithSeed(seed)).Curve(x, t, noise)
			if err != nil {
				return err
			}

			w, closeOut, err := create(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if err := curveio.Write(w, [2]string{curveio.DefaultX, curveio.DefaultY}, x, y); err != nil {
				_ = closeOut()
				return err
			}

			logging.Logger().Info("tpib.synth", "points", points, "noise", noise, "seed", seed, "down", down)

			return closeOut()
		},
	}

	f := c.Flags()
	f.IntVar(&points, "points", 401, "number of samples")
	f.Float64Var(&from, "from", 700, "first x")
	f.Float64Var(&to, "to", 1100, "last x")
	f.Float64Var(&noise, "noise", 0.01, "white noise amplitude")
	f.Int64Var(&seed, "seed", 1, "noise seed")
	f.BoolVar(&down, "down", true, "peak points down")
	f.StringVarP(&output, "output", "o", "", "output CSV (default stdout)")

	return c
}
