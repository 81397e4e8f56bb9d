// SPDX-License-Identifier: MIT

// Package config resolves the command-line tool's settings:
// defaults, then an optional YAML file, then COMPLX_* environment
// variables, then validation.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds tool-wide settings.
type Config struct {
	// Workers is the number of goroutines exploring top-level search branches.
	Workers int `yaml:"workers" env:"COMPLX_WORKERS" validate:"min=1,max=256"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"COMPLX_LOG_LEVEL" validate:"oneof=debug info warn error"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format" env:"COMPLX_LOG_FORMAT" validate:"oneof=text json"`
}

var validate = validator.New()

// Default returns the built-in settings: sequential search, info-level text logs.
func Default() Config {
	return Config{
		Workers:   1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load resolves the configuration. An empty path skips the file layer;
// a missing file at a non-empty path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level; unknown values map to Info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
