package analyze

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1analysis-go/pkg/config"
	"github.com/mpapenbr/f1analysis-go/pkg/processing/stint"
)

func NewStintsCmd() *cobra.Command {
	var minStintLaps int
	var quicklapThreshold float64
	cmd := &cobra.Command{
		Use:   "stints [drivers...]",
		Short: "Fits tire degradation models per stint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStints(args, minStintLaps, quicklapThreshold)
		},
	}
	cmd.Flags().IntVar(&minStintLaps, "min-stint-laps",
		stint.DefaultMinStintLaps, "minimum qualifying laps per stint")
	cmd.Flags().Float64Var(&quicklapThreshold, "quicklap-threshold",
		stint.DefaultQuicklapThreshold, "quicklap threshold relative to personal best")
	addFuelFlags(cmd)
	return cmd
}

func runStints(args []string, minStintLaps int, quicklapThreshold float64) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}
	drivers := resolveDrivers(sess, args)
	models, err := stint.FitModels(sess, drivers,
		stint.WithMinStintLaps(minStintLaps),
		stint.WithQuicklapThreshold(quicklapThreshold),
		stint.WithFuelLoad(config.FuelLoadKg),
		stint.WithFuelEffect(config.FuelEffect))
	if err != nil {
		return err
	}
	emit(models, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "Driver\tStint\tCompound\tLaps\tDeg (s/lap)\tR2")
		keys := make([]string, 0, len(models))
		for k := range models {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, driver := range keys {
			for _, m := range models[driver] {
				fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%+.4f\t%.3f\n",
					driver, m.Stint, m.Compound, m.Laps, m.SlopeSecPerLap, m.R2)
			}
		}
	})
	return nil
}
