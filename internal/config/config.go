// Package config loads the optional YAML settings file for the beamgrid
// command. Missing fields keep their defaults; command-line flags are
// applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds runtime settings for a beamgrid run.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// Workers bounds concurrent walks in the configuration search; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Render prints the energized map of the default entry.
	Render bool `yaml:"render"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   0,
		Render:    false,
	}
}

// Load reads path over the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Normalize lower-cases enum fields and fills blanks with defaults.
func (c *Config) Normalize() {
	def := Default()
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q must be 'debug', 'info', 'warn', or 'error'", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format %q must be 'text' or 'json'", ErrInvalid, c.LogFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	return nil
}

// Level maps LogLevel to a slog.Level. Unknown values map to Info.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
