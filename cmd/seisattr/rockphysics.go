package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-seis/internal/pipeline"
	"github.com/cwbudde/algo-seis/stats/zone"
)

func newRockPhysicsCmd(a *app) *cobra.Command {
	var (
		well, petro, out, figure string
		ceiling                  float64
	)

	cmd := &cobra.Command{
		Use:   "rockphysics",
		Short: "Derive elastic attributes from a well log and export them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("well") {
				cfg.RockPhysics.WellLog = well
			}
			if flags.Changed("petro") {
				cfg.RockPhysics.Petrophysical = petro
			}
			if flags.Changed("out") {
				cfg.RockPhysics.Output = out
			}
			if flags.Changed("figure") {
				cfg.RockPhysics.Figure = figure
			}
			if flags.Changed("ceiling") {
				cfg.RockPhysics.DensityCeiling = ceiling
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			res, err := pipeline.RunRockPhysics(cfg, a.logger)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printZones(w, res.Zones)
			fmt.Fprintf(w, "\n%d samples, %d with undefined attributes\n",
				res.Attributes.Len(), res.DegenerateSamples())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&well, "well", "", "well-log CSV (depth, density, sonic columns)")
	f.StringVar(&petro, "petro", "", "petrophysical CSV (shale and sand fractions)")
	f.StringVar(&out, "out", "", "result CSV path; empty disables export")
	f.StringVar(&figure, "figure", "", "track figure path; empty disables plotting")
	f.Float64Var(&ceiling, "ceiling", 0, "density ceiling in g/cc")
	return cmd
}

func printZones(w io.Writer, zones []zone.Summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ZONE\tATTRIBUTE\tN\tMEAN\tSTD\tMIN\tMAX")
	for _, z := range zones {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			z.Interval.Name, z.Attribute, z.Count, z.Mean, z.StdDev, z.Min, z.Max)
	}
	tw.Flush()
}
