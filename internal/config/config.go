// Package config resolves configtool's own runtime options from flags and
// CONFIGTOOL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/thomaskilian/Teacup-Firmware/internal/constants"
)

// Options are the runtime options of one configtool invocation.
type Options struct {
	Folder      string `mapstructure:"folder"`
	LogLevel    string `mapstructure:"log-level"`
	HistoryPath string `mapstructure:"history-path"`
	NoHistory   bool   `mapstructure:"no-history"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Load merges defaults, environment variables and the given flags.
// Flags that were set explicitly win over the environment.
func Load(flags *pflag.FlagSet) (*Options, error) {
	viperInstance := viper.New()
	viperInstance.SetEnvPrefix(constants.EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	defaults := Default()
	viperInstance.SetDefault("folder", defaults.Folder)
	viperInstance.SetDefault("log-level", defaults.LogLevel)
	viperInstance.SetDefault("history-path", defaults.HistoryPath)
	viperInstance.SetDefault("no-history", defaults.NoHistory)
	viperInstance.SetDefault("verbose", defaults.Verbose)

	if flags != nil {
		if err := viperInstance.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var options Options
	if err := viperInstance.Unmarshal(&options); err != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", err)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("options validation failed: %w", err)
	}

	return &options, nil
}

// Validate checks that the options can be used
func (o *Options) Validate() error {
	if strings.TrimSpace(o.Folder) == "" {
		return errors.New("settings folder cannot be empty")
	}

	if o.LogLevel != "" {
		if _, err := zerolog.ParseLevel(o.LogLevel); err != nil {
			return fmt.Errorf("invalid log level '%s': %w", o.LogLevel, err)
		}
	}

	return nil
}

// ConsoleLevel returns the lowest level echoed to the terminal
func (o *Options) ConsoleLevel() zerolog.Level {
	if o.Verbose {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}
