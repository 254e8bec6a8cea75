package analyze

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1analysis-go/pkg/processing/corner"
)

func NewCornersCmd() *cobra.Command {
	var categoriesArg string
	var window float64
	cmd := &cobra.Command{
		Use:   "corners [drivers...]",
		Short: "Compares top speed and cornering speed by corner category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorners(args, categoriesArg, window)
		},
	}
	cmd.Flags().StringVar(&categoriesArg, "categories", "",
		"corner categories, e.g. \"high=1,2,3;low=4,5\"")
	cmd.Flags().Float64Var(&window, "window",
		corner.DefaultWindowMeters, "distance window around a corner in meters")
	return cmd
}

func runCorners(args []string, categoriesArg string, window float64) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}
	categories, err := parseCategories(categoriesArg)
	if err != nil {
		return err
	}
	rows, err := corner.Compare(sess, resolveDrivers(sess, args), categories,
		corner.WithWindow(window))
	if err != nil {
		return err
	}
	names := lo.Keys(categories)
	slices.Sort(names)
	emit(rows, func(w *tabwriter.Writer) {
		fmt.Fprint(w, "Driver\tTopSpeed")
		for _, name := range names {
			fmt.Fprintf(w, "\t%s", name)
		}
		fmt.Fprintln(w)
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%.0f", r.Driver, r.TopSpeed)
			for _, name := range names {
				if v := r.Categories[name]; v != nil {
					fmt.Fprintf(w, "\t%.0f", *v)
				} else {
					fmt.Fprint(w, "\t-")
				}
			}
			fmt.Fprintln(w)
		}
	})
	return nil
}
