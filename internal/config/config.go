package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/profile"
)

// Config holds cropfuzz CLI settings.
type Config struct {
	// Profile is a built-in profile name or a path to a profile YAML file.
	Profile string `yaml:"profile"`

	Logging LoggingConfig `yaml:"logging"`
	Batch   BatchConfig   `yaml:"batch"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`    // debug, info, warn, error
	Encoding    string `yaml:"encoding"` // json, console
	Development bool   `yaml:"development"`
}

// BatchConfig configures batch evaluation.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
}

var (
	ValidLevels    = []string{"debug", "info", "warn", "error"}
	ValidEncodings = []string{"json", "console"}
	ValidFormats   = []string{"text", "json"}
)

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Profile: profile.DefaultName,
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// DefaultPath returns ~/.cropfuzz/config.yaml, or a relative path if the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cropfuzz", "config.yaml")
	}
	return filepath.Join(home, ".cropfuzz", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("CROPFUZZ_PROFILE"); p != "" {
		c.Profile = p
	}
	if lvl := os.Getenv("CROPFUZZ_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = strings.ToLower(lvl)
	}
	if w := os.Getenv("CROPFUZZ_WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			c.Batch.Workers = n
		}
	}
	if f := os.Getenv("CROPFUZZ_OUTPUT"); f != "" {
		c.Output.Format = strings.ToLower(f)
	}
}

// Validate checks enumerated fields and worker count.
func (c *Config) Validate() error {
	if c.Profile == "" {
		return fmt.Errorf("no profile configured (set profile or CROPFUZZ_PROFILE)")
	}
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !contains(ValidEncodings, c.Logging.Encoding) {
		return fmt.Errorf("invalid log encoding: %s (valid: %v)", c.Logging.Encoding, ValidEncodings)
	}
	if !contains(ValidFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, ValidFormats)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch workers must be at least 1, got %d", c.Batch.Workers)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
