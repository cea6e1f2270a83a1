// Package config contains all knobs and defaults used to configure the v10 commands.
package config

import (
	"errors"
	"fmt"
	"slices"
)

const (
	DefaultMedianSize = 20_000_000
)

// LogConfig defines flag-driven settings for the logger.
type LogConfig struct {
	// Format is the log format to use: text or json.
	Format string

	// Level is the log level to use: none, debug, info, warn or error.
	Level string
}

// MedianConfig configures the partial ordering workload.
type MedianConfig struct {
	// Size is the number of generated values, not counting the pivot. It must be even.
	Size int

	// Seed makes the workload reproducible. An empty seed draws a random one.
	Seed string

	// Workers bounds the goroutines used to generate the values. Zero means GOMAXPROCS.
	Workers int
}

type StatsConfig struct {
	// Buckets are histogram upper bounds. No histogram is produced when empty.
	Buckets []float64
}

type Config struct {
	Log    LogConfig
	Median MedianConfig
	Stats  StatsConfig
}

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"none", "debug", "info", "warn", "error"}
)

// Verify returns the combined error of every invalid setting.
func (cfg *Config) Verify() error {
	var errs []error

	if !slices.Contains(logFormats, cfg.Log.Format) {
		errs = append(errs, fmt.Errorf("config 'log.format' must be one of %v, got %q", logFormats, cfg.Log.Format))
	}
	if !slices.Contains(logLevels, cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("config 'log.level' must be one of %v, got %q", logLevels, cfg.Log.Level))
	}
	if cfg.Median.Size <= 0 || cfg.Median.Size%2 != 0 {
		errs = append(errs, fmt.Errorf("config 'median.size' must be a positive even number, got %d", cfg.Median.Size))
	}
	if cfg.Median.Workers < 0 {
		errs = append(errs, fmt.Errorf("config 'median.workers' cannot be negative, got %d", cfg.Median.Workers))
	}

	return errors.Join(errs...)
}

// DefaultConfig is the configuration used when no flag, env var or config file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		Median: MedianConfig{
			Size: DefaultMedianSize,
		},
	}
}
