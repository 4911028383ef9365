// Package config loads the YAML configuration file and resolves the
// environment-driven paths shared by the CLI and the API server.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/sentiment"
	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML configuration.
type Config struct {
	Sentiment sentiment.Thresholds `yaml:"sentiment"`
	Enhanced  EnhancedConfig       `yaml:"enhanced"`
}

// EnhancedConfig holds the defaults for enhanced rule-based responses.
type EnhancedConfig struct {
	Context domain.DevelopmentContext `yaml:"context"`
	Variant domain.Variant            `yaml:"variant"`
}

// DefaultConfig returns a Config with the stock thresholds.
func DefaultConfig() *Config {
	return &Config{
		Sentiment: sentiment.DefaultThresholds(),
		Enhanced: EnhancedConfig{
			Context: domain.ContextEmerging,
			Variant: domain.VariantPragmatic,
		},
	}
}

// Load reads a config file from the given path. Fields absent from the file
// keep their defaults; a missing file yields the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the thresholds and the enhanced defaults.
func (c *Config) Validate() error {
	if err := c.Sentiment.Validate(); err != nil {
		return fmt.Errorf("config sentiment: %w", err)
	}
	if !domain.ValidContexts[string(c.Enhanced.Context)] {
		return fmt.Errorf("config enhanced.context: unknown context %q", c.Enhanced.Context)
	}
	if !domain.ValidVariants[string(c.Enhanced.Variant)] {
		return fmt.Errorf("config enhanced.variant: unknown variant %q", c.Enhanced.Variant)
	}
	return nil
}

// Dir returns ~/.dialogue.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".dialogue"), nil
}

// DBPath returns DIALOGUE_DB or ~/.dialogue/dialogue.db.
func DBPath() (string, error) {
	return envOrDefault("DIALOGUE_DB", "dialogue.db")
}

// Path returns DIALOGUE_CONFIG or ~/.dialogue/config.yaml.
func Path() (string, error) {
	return envOrDefault("DIALOGUE_CONFIG", "config.yaml")
}

func envOrDefault(env, file string) (string, error) {
	if v := os.Getenv(env); v != "" {
		return v, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, file), nil
}
