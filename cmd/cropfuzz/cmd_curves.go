package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

// curvesCmd exports sampled membership curves for plotting
var curvesCmd = &cobra.Command{
	Use:   "curves [variable]...",
	Short: "Export sampled membership curves as JSON",
	Long: `Samples every term of the named variables over their universes and prints
the curves as JSON. Without arguments every input and the output variable
are exported.`,
	RunE: runCurves,
}

func runCurves(cmd *cobra.Command, args []string) error {
	r, err := loadRecommender()
	if err != nil {
		return err
	}

	var curves []types.TermCurve
	if len(args) == 0 {
		curves = append(r.InputCurves(), r.OutputCurves()...)
	}
	for _, name := range args {
		v, ok := r.Variable(name)
		if !ok {
			return fmt.Errorf("profile %q has no variable %q", r.Name(), name)
		}
		curves = append(curves, v.Curves()...)
	}
	return writeJSON(cmd.OutOrStdout(), curves)
}
