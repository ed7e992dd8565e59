// Package config holds cohend's runtime configuration: input parsing
// defaults and logging. Values come from an optional YAML file, overridden
// by environment variables, overridden in turn by command-line flags.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds all cohend configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig configures how input matrices are parsed.
type InputConfig struct {
	// Delimiter separating fields in the input files. Must be a single
	// character; the output file is always comma-separated.
	Delimiter string `yaml:"delimiter"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration: tab-delimited input,
// info-level logging.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter: "\t",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if d := os.Getenv("COHEND_DELIMITER"); d != "" {
		c.Input.Delimiter = d
	}
	if level := os.Getenv("COHEND_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// DelimiterRune validates the configured input delimiter and returns it as a
// rune. Escaped tab ("\\t") is accepted, since shells make a literal tab
// awkward to pass.
func (c *Config) DelimiterRune() (rune, error) {
	d := c.Input.Delimiter
	if d == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(d) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", d)
	}
	r, _ := utf8.DecodeRuneInString(d)
	return r, nil
}
