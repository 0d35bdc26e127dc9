package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/recommend"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

var (
	temperature float64
	humidity    float64
	soilPH      float64
	rainfall    float64
	extraInputs []string
	withCurves  bool
)

// recommendCmd evaluates one set of readings
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a crop for one set of readings",
	Long: `Evaluates the active profile for one set of readings.

Readings for the crop profiles are given with the named flags; any input
variable can also be set with --set name=value.

Example:
  cropfuzz recommend --temperature 22 --humidity 85 --ph 4.5 --rainfall 150
  cropfuzz recommend -p my-profile.yaml --set moisture=3.5 -o json`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().Float64Var(&temperature, "temperature", 0, "Temperature reading (°C)")
	recommendCmd.Flags().Float64Var(&humidity, "humidity", 0, "Relative humidity reading (%)")
	recommendCmd.Flags().Float64Var(&soilPH, "ph", 0, "Soil pH reading")
	recommendCmd.Flags().Float64Var(&rainfall, "rainfall", 0, "Rainfall reading (mm)")
	recommendCmd.Flags().StringArrayVar(&extraInputs, "set", nil, "Reading for any input variable, as name=value (repeatable)")
	recommendCmd.Flags().BoolVar(&withCurves, "curves", false, "Include sampled input membership curves (json output)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	readings, err := collectReadings(cmd)
	if err != nil {
		return err
	}
	if len(readings) == 0 {
		return fmt.Errorf("no readings given")
	}

	r, err := loadRecommender()
	if err != nil {
		return err
	}

	var opts []recommend.RecommendOption
	if withCurves {
		opts = append(opts, recommend.WithInputCurves())
	}
	rec, err := r.Recommend(readings, opts...)
	if err != nil && !errors.Is(err, types.ErrNoRuleFired) {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		if werr := writeJSON(out, rec); werr != nil {
			return werr
		}
	} else {
		fmt.Fprint(out, renderRecommendation(rec, r.Rules(), err))
	}
	return err
}

// collectReadings merges the named flags that were set with --set pairs.
func collectReadings(cmd *cobra.Command) (types.Readings, error) {
	readings := make(types.Readings)
	named := map[string]*float64{
		"temperature": &temperature,
		"humidity":    &humidity,
		"ph":          &soilPH,
		"rainfall":    &rainfall,
	}
	for name, v := range named {
		if cmd.Flags().Changed(name) {
			readings[name] = *v
		}
	}
	for _, pair := range extraInputs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("--set %q: expected name=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("--set %s: %w", name, err)
		}
		readings[name] = v
	}
	return readings, nil
}
