// Package config loads the poker-odds configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/samber/lo"
)

// Strategy selects the equity engine.
const (
	StrategyAuto       = "auto"
	StrategyExhaustive = "exhaustive"
	StrategyMonteCarlo = "montecarlo"
	StrategyParallel   = "parallel"
)

var strategies = []string{StrategyAuto, StrategyExhaustive, StrategyMonteCarlo, StrategyParallel}

var logLevels = []string{"debug", "info", "warn", "error"}

// Config represents the complete configuration
type Config struct {
	Equity EquitySettings `hcl:"equity,block"`
	Log    LogSettings    `hcl:"log,block"`
}

// fileConfig is the on-disk shape; either block may be omitted.
type fileConfig struct {
	Equity *EquitySettings `hcl:"equity,block"`
	Log    *LogSettings    `hcl:"log,block"`
}

// EquitySettings controls how equity is computed.
type EquitySettings struct {
	Strategy  string `hcl:"strategy,optional"`
	Samples   int    `hcl:"samples,optional"`
	Workers   int    `hcl:"workers,optional"`
	Opponents int    `hcl:"opponents,optional"`
}

// LogSettings controls logging output.
type LogSettings struct {
	Level      string `hcl:"level,optional"`
	Timestamps bool   `hcl:"timestamps,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Equity: EquitySettings{
			Strategy:  StrategyAuto,
			Samples:   10000,
			Workers:   0, // one per CPU
			Opponents: 1,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var decoded fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var config Config
	if decoded.Equity != nil {
		config.Equity = *decoded.Equity
	}
	if decoded.Log != nil {
		config.Log = *decoded.Log
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &config, nil
}

// applyDefaults fills in values missing from the file
func (c *Config) applyDefaults() {
	defaults := Default()
	c.Equity.Strategy = lo.CoalesceOrEmpty(strings.ToLower(c.Equity.Strategy), defaults.Equity.Strategy)
	c.Equity.Samples = lo.CoalesceOrEmpty(c.Equity.Samples, defaults.Equity.Samples)
	c.Equity.Opponents = lo.CoalesceOrEmpty(c.Equity.Opponents, defaults.Equity.Opponents)
	c.Log.Level = lo.CoalesceOrEmpty(strings.ToLower(c.Log.Level), defaults.Log.Level)
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if !lo.Contains(strategies, c.Equity.Strategy) {
		return fmt.Errorf("unknown strategy %q (want one of %s)", c.Equity.Strategy, strings.Join(strategies, ", "))
	}
	if c.Equity.Samples <= 0 {
		return errors.New("samples must be positive")
	}
	if c.Equity.Workers < 0 {
		return errors.New("workers cannot be negative")
	}
	if c.Equity.Opponents < 1 || c.Equity.Opponents > 22 {
		return errors.New("opponents must be between 1 and 22")
	}
	if !lo.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// LogLevel returns the configured charmbracelet log level.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
