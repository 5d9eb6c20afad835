// Package config loads the web server configuration from an optional YAML
// file, falling back to defaults field by field.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" validate:"required"`
	// DataDir is where saved puzzles live.
	DataDir string `yaml:"data_dir" validate:"required"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// SolveTimeout bounds one solve call; zero disables the bound.
	SolveTimeout time.Duration `yaml:"solve_timeout" validate:"min=0"`
}

func Default() Config {
	return Config{
		Addr:         ":8080",
		DataDir:      "./data",
		LogLevel:     "info",
		SolveTimeout: 30 * time.Second,
	}
}

// Load reads the YAML file at path over the defaults. An empty path means
// defaults only. The result is validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		// Durations arrive as strings like "30s"; yaml.v3 cannot decode
		// those into time.Duration, so fields are merged by hand.
		var raw struct {
			Addr         *string `yaml:"addr"`
			DataDir      *string `yaml:"data_dir"`
			LogLevel     *string `yaml:"log_level"`
			SolveTimeout *string `yaml:"solve_timeout"`
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if raw.Addr != nil {
			cfg.Addr = *raw.Addr
		}
		if raw.DataDir != nil {
			cfg.DataDir = *raw.DataDir
		}
		if raw.LogLevel != nil {
			cfg.LogLevel = *raw.LogLevel
		}
		if raw.SolveTimeout != nil {
			d, err := time.ParseDuration(*raw.SolveTimeout)
			if err != nil {
				return Config{}, fmt.Errorf("parse config: solve_timeout: %w", err)
			}
			cfg.SolveTimeout = d
		}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
