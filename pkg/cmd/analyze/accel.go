package analyze

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1analysis-go/pkg/processing/accel"
)

func NewAccelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accel [drivers...]",
		Short: "Computes 0-100 and 100-200 km/h times from lap 1 telemetry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccel(args)
		},
	}
}

func runAccel(args []string) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}
	rows, err := accel.ComputeTable(sess, resolveDrivers(sess, args))
	if err != nil {
		return err
	}
	emit(rows, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "Driver\t0-100\t100-200")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Driver,
				fmtSeconds(r.ZeroToHundred), fmtSeconds(r.HundredToTwoHundred))
		}
	})
	return nil
}

func fmtSeconds(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2fs", v)
}
