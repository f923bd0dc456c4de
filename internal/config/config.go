// Package config loads calculator configuration from an optional YAML
// file with environment variable overrides. The resulting Config is
// constructed once at process start and passed into the engine; the
// core never reads environment state directly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the calculator.
type Config struct {
	// Precision is the number of decimal places used when displaying
	// results.
	Precision int32 `yaml:"precision"`

	// MaxInputValue caps the absolute magnitude of any operand,
	// expressed as a decimal string.
	MaxInputValue string `yaml:"max_input_value"`

	// MaxHistorySize bounds the live history; the oldest entry is
	// evicted when the bound is exceeded.
	MaxHistorySize int `yaml:"max_history_size"`

	// HistoryFile is the CSV file the history is persisted to.
	HistoryFile string `yaml:"history_file"`

	// LogFile receives the structured calculator log.
	LogFile string `yaml:"log_file"`

	// AutoSave persists history after every calculation when true.
	AutoSave bool `yaml:"auto_save"`
}

func defaultConfig() *Config {
	return &Config{
		Precision:      10,
		MaxInputValue:  "1e999",
		MaxHistorySize: 1000,
		HistoryFile:    "history/calculator_history.csv",
		LogFile:        "logs/calculator.log",
		AutoSave:       true,
	}
}

// Load reads configuration from the YAML file at path, then applies
// CALCULATOR_* environment overrides. A missing file is not an error;
// defaults plus overrides apply. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to env overrides
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Invalid numeric values are ignored in favor of the
// configured value.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CALCULATOR_PRECISION"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			cfg.Precision = int32(n)
		}
	}
	if v := os.Getenv("CALCULATOR_MAX_INPUT_VALUE"); v != "" {
		cfg.MaxInputValue = v
	}
	if v := os.Getenv("CALCULATOR_MAX_HISTORY_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxHistorySize = n
		}
	}
	if v := os.Getenv("CALCULATOR_HISTORY_FILE"); v != "" {
		cfg.HistoryFile = v
	}
	if v := os.Getenv("CALCULATOR_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("CALCULATOR_AUTO_SAVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AutoSave = b
		}
	}
}

// Validate ensures the configuration adheres to engine requirements.
func (c *Config) Validate() error {
	if c.Precision < 0 {
		return errors.New("precision cannot be negative")
	}
	if c.MaxHistorySize <= 0 {
		return errors.New("max history size must be positive")
	}
	if _, err := decimal.NewFromString(c.MaxInputValue); err != nil {
		return fmt.Errorf("max input value %q is not a valid decimal: %w", c.MaxInputValue, err)
	}
	if c.HistoryFile == "" {
		return errors.New("history file path cannot be empty")
	}
	return nil
}

// MaxInput returns the operand magnitude cap as a decimal. Validate
// must have accepted the configuration first.
func (c *Config) MaxInput() decimal.Decimal {
	v, err := decimal.NewFromString(c.MaxInputValue)
	if err != nil {
		return decimal.RequireFromString(defaultConfig().MaxInputValue)
	}
	return v
}
