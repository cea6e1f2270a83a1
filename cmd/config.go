package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/M4RKII11II/v10/pkg/config"
	"github.com/M4RKII11II/v10/pkg/logger"
)

// ReadConfig merges the defaults with config.yaml, environment variables and flags.
func ReadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setup reads and verifies the config and builds the logger it describes.
func setup() (*config.Config, logger.Logger, error) {
	cfg, err := ReadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}
