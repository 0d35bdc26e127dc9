package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrhapile/fuzzy-crop-advisor/internal/config"
	"github.com/mrhapile/fuzzy-crop-advisor/internal/logging"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/profile"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/recommend"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	profileRef   string
	outputFormat string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cropfuzz",
	Short: "Fuzzy crop recommendation from temperature, humidity, soil pH and rainfall",
	Long: `cropfuzz recommends a crop with a Mamdani fuzzy inference system.

Readings are fuzzified against the active profile's linguistic variables,
combined through its rule base with min-AND, aggregated with max and
defuzzified by centroid. The crisp score is labelled through the profile's
score thresholds.

Profiles are YAML documents; two are built in (see "cropfuzz profile list").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if profileRef != "" {
			loaded.Profile = profileRef
		}
		if outputFormat != "" {
			loaded.Output.Format = outputFormat
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		cfg = loaded

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", path), zap.String("profile", cfg.Profile))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.cropfuzz/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileRef, "profile", "p", "", "Built-in profile name or profile YAML path")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: text or json")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(curvesCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(configCmd)
}

// configFilePath returns --config, or the default location.
func configFilePath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// loadRecommender resolves the configured profile and builds it.
func loadRecommender() (*recommend.Recommender, error) {
	p, err := profile.Resolve(cfg.Profile)
	if err != nil {
		return nil, err
	}
	r, err := p.Build(profile.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("profile built", zap.String("profile", p.Name), zap.Int("rules", len(p.Rules)))
	return r, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
