package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-seis/internal/pipeline"
)

func newWaveletCmd(a *app) *cobra.Command {
	var (
		length, step, freq float64
		axis, figure, csv  string
	)

	cmd := &cobra.Command{
		Use:   "wavelet",
		Short: "Generate and plot a Ricker wavelet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := a.cfg.Wavelet
			flags := cmd.Flags()
			if flags.Changed("length") {
				w.Length = length
			}
			if flags.Changed("step") {
				w.Step = step
			}
			if flags.Changed("freq") {
				w.PeakFrequency = freq
			}
			if flags.Changed("axis") {
				w.Axis = axis
			}
			if flags.Changed("figure") {
				w.Figure = figure
			}
			if flags.Changed("csv") {
				w.Table = csv
			}

			cfg := a.cfg
			cfg.Wavelet = w
			if err := cfg.Validate(); err != nil {
				return err
			}

			res, err := pipeline.RunWavelet(w, a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&length, "length", 0, "wavelet duration in seconds")
	f.Float64Var(&step, "step", 0, "sampling interval in seconds")
	f.Float64Var(&freq, "freq", 0, "peak frequency in Hz")
	f.StringVar(&axis, "axis", "", "time axis layout: symmetric or arange")
	f.StringVar(&figure, "figure", "", "figure output path; empty disables plotting")
	f.StringVar(&csv, "csv", "", "optional time,amplitude CSV output path")
	return cmd
}
