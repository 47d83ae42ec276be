package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type InputConfig struct {
	Format string `yaml:"format"` // "", text or yaml; empty detects from the file extension
}

type OutputConfig struct {
	Format string `yaml:"format"` // text or json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Format: "text"},
	}
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file on top of the defaults, then applies
// environment variable overrides. An empty path skips the file.
// Env vars use the prefix FTRACKER_:
//
//	FTRACKER_LOG_LEVEL, FTRACKER_INPUT_FORMAT, FTRACKER_OUTPUT_FORMAT
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FTRACKER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FTRACKER_INPUT_FORMAT"); v != "" {
		cfg.Input.Format = v
	}
	if v := os.Getenv("FTRACKER_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Input.Format {
	case "", "text", "yaml":
	default:
		return fmt.Errorf("input.format %q is not one of text, yaml", c.Input.Format)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format %q is not one of text, json", c.Output.Format)
	}
	return nil
}
