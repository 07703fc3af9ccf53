// Package config provides configuration management for mdm.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/markdown-math/internal/view"
	"github.com/open-cli-collective/markdown-math/pkg/md"
)

// Config holds the mdm configuration.
type Config struct {
	ParseMath       bool   `yaml:"parse_math"`
	SourcePositions bool   `yaml:"source_positions"`
	OutputFormat    string `yaml:"output_format,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{ParseMath: true}
}

// Validate checks that all fields hold supported values.
func (c *Config) Validate() error {
	if err := view.ValidateFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("output_format: %w", err)
	}
	if c.SourcePositions && !c.ParseMath {
		return errors.New("source_positions requires parse_math")
	}
	return nil
}

// ParseOptions converts the configuration to parser flags.
func (c *Config) ParseOptions() md.ParseOptions {
	var opts md.ParseOptions
	if c.ParseMath {
		opts |= md.ParseMath
	}
	if c.SourcePositions {
		opts |= md.SourcePositions
	}
	return opts
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v, ok := getEnvBool("MDM_PARSE_MATH"); ok {
		c.ParseMath = v
	}
	if v, ok := getEnvBool("MDM_SOURCE_POSITIONS"); ok {
		c.SourcePositions = v
	}
	if format := os.Getenv("MDM_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
}

// getEnvBool reads a boolean env var. Unparseable values are ignored with a
// warning.
func getEnvBool(name string) (bool, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("WARN: ignoring %s=%q: %v", name, raw, err)
		return false, false
	}
	return v, true
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mdm", "config.yml")
	}

	// Fall back to ~/.config/mdm/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mdm", "config.yml")
	}

	return filepath.Join(home, ".config", "mdm", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path. Fields missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. source_positions is dropped when parse_math ends up off.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		// If file doesn't exist, start with defaults
		cfg = Default()
	}

	cfg.LoadFromEnv()
	// Turning math off wins over positions that only annotate math
	if cfg.SourcePositions && !cfg.ParseMath {
		log.Printf("WARN: ignoring source_positions because parse_math is off")
		cfg.SourcePositions = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
