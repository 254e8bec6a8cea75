package analyze

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1analysis-go/pkg/config"
	"github.com/mpapenbr/f1analysis-go/pkg/model"
	"github.com/mpapenbr/f1analysis-go/pkg/processing/fuel"
)

func NewFuelCmd() *cobra.Command {
	var stintNo int
	cmd := &cobra.Command{
		Use:   "fuel <driver>",
		Short: "Shows fuel corrected lap times for one driver's stint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFuel(args[0], stintNo)
		},
	}
	cmd.Flags().IntVar(&stintNo, "stint", 1, "stint number to correct")
	addFuelFlags(cmd)
	return cmd
}

func addFuelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&config.FuelLoadKg, "fuel-load",
		fuel.DefaultFuelLoadKg, "initial fuel load in kg")
	cmd.Flags().Float64Var(&config.FuelEffect, "fuel-effect",
		fuel.DefaultEffectSecPerKgLap, "laptime effect in seconds per kg per lap")
}

type fuelRow struct {
	Lap       int     `json:"lap"`
	Raw       float64 `json:"raw"`
	Corrected float64 `json:"corrected"`
}

func runFuel(driver string, stintNo int) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}
	laps, err := sess.Laps(driver)
	if err != nil {
		return err
	}
	stintLaps := lo.Filter(laps, func(l model.Lap, _ int) bool {
		return l.Stint == stintNo && l.HasTime()
	})
	entries := lo.Map(stintLaps, func(l model.Lap, _ int) fuel.LapTimeEntry {
		return fuel.LapTimeEntry{Lap: l.Number, Time: l.LapTime}
	})
	corrected, err := fuel.CorrectedLapTimes(entries, sess.TotalLaps(),
		config.FuelLoadKg, config.FuelEffect)
	if err != nil {
		return err
	}
	rows := make([]fuelRow, len(entries))
	for i := range entries {
		rows[i] = fuelRow{Lap: entries[i].Lap, Raw: entries[i].Time, Corrected: corrected[i]}
	}
	emit(rows, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "Lap\tRaw\tCorrected")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%.3f\t%.2f\n", r.Lap, r.Raw, r.Corrected)
		}
	})
	return nil
}
