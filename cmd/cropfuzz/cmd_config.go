package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var forceInit bool

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the cropfuzz config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective settings to the config file",
	Long: `Writes the settings in effect (defaults, environment and flags) to the
config file given with --config, or ~/.cropfuzz/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		logger.Debug("config written", zap.String("path", path))
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
