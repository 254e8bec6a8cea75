package analyze

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1analysis-go/pkg/processing/dominance"
)

func NewDominanceCmd() *cobra.Command {
	var windowSize int
	var rotation float64
	var length float64
	cmd := &cobra.Command{
		Use:   "dominance [drivers...]",
		Short: "Computes which driver is fastest at each point of the track",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []dominance.Option{dominance.WithWindowSize(windowSize)}
			if cmd.Flags().Changed("rotation") {
				opts = append(opts, dominance.WithRotationDegrees(rotation))
			}
			if cmd.Flags().Changed("length") {
				opts = append(opts, dominance.WithCircuitLength(length))
			}
			return runDominance(args, opts)
		},
	}
	cmd.Flags().IntVar(&windowSize, "window-size",
		dominance.DefaultWindowSize, "speed smoothing window in grid samples")
	cmd.Flags().Float64Var(&rotation, "rotation", 0,
		"map rotation in degrees (default: circuit metadata)")
	cmd.Flags().Float64Var(&length, "length", 0,
		"circuit length in meters (default: circuit metadata)")
	return cmd
}

func runDominance(args []string, opts []dominance.Option) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}
	drivers := resolveDrivers(sess, args)
	result, err := dominance.Compute(sess, drivers, opts...)
	if err != nil {
		return err
	}
	emit(result, func(w *tabwriter.Writer) {
		// the segment data is meant for an external renderer; the table
		// shows the share of dominated track per driver
		counts := make(map[string]int)
		for _, d := range result.FastestAt {
			counts[d]++
		}
		fmt.Fprintln(w, "Driver\tDominated")
		for _, driver := range drivers {
			share := float64(counts[driver]) / float64(len(result.FastestAt)) * 100
			fmt.Fprintf(w, "%s\t%.1f%%\n", driver, share)
		}
	})
	return nil
}
