package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds settings for the demo run.
type Config struct {
	LogLevel  string  `yaml:"log_level"`  // debug, info, warn or error (default: "info")
	LogFormat string  `yaml:"log_format"` // text or json (default: "text")
	Target    float64 `yaml:"target"`     // value for the closest-reading search
	Threshold float64 `yaml:"threshold"`  // split point for the below/above filters
	Input     string  `yaml:"input"`      // CSV file of readings (optional)
	Column    string  `yaml:"column"`     // CSV value column (default: "temp")
}

// DefaultConfig returns the default demo configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Target:    0,
		Threshold: 0,
		Column:    "temp",
	}
}

// LoadConfig builds the configuration from defaults, the YAML file at path
// (skipped when path is empty) and the LOG_LEVEL / LOG_FORMAT environment
// variables, in that order.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if _, err := c.level(); err != nil {
		return errors.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.Errorf("invalid LOG_FORMAT %q: must be text or json", c.LogFormat)
	}
	if c.Input != "" && c.Column == "" {
		return errors.New("column is required when input is set")
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(c.LogLevel))
	return lvl, err
}

// String renders the settings on one line for the startup log.
func (c *Config) String() string {
	return fmt.Sprintf("target=%g threshold=%g input=%q column=%q", c.Target, c.Threshold, c.Input, c.Column)
}
