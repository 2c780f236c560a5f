// Package config provides configuration management for the cleaning pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputPath        = errors.New("pipeline.input_path is required")
	ErrMissingCleanedPath      = errors.New("pipeline.cleaned_output_path is required")
	ErrMissingReportPath       = errors.New("pipeline.report_path is required")
	ErrInvalidMinContentLength = errors.New("pipeline.min_content_length must be at least 1")
	ErrInvalidTopFailures      = errors.New("pipeline.top_failures must be at least 1")
	ErrEmptyDateKey            = errors.New("pipeline.date_keys entries must be non-empty")
	ErrMissingUserAgent        = errors.New("scraper.user_agent is required")
	ErrInvalidTimeout          = errors.New("scraper.timeout_sec must be at least 1")
	ErrInvalidMaxBodySize      = errors.New("scraper.max_body_kb must be at least 1")
	ErrInvalidLogLevel         = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Defaults for the pipeline artifacts and rules.
const (
	DefaultInputPath        = "sample_data.json"
	DefaultCleanedPath      = "cleaned_output.json"
	DefaultReportPath       = "quality_report.txt"
	DefaultMinContentLength = 10
	DefaultTopFailures      = 5
	DefaultUserAgent        = "scrubber/1.0 (educational)"
	DefaultTimeoutSec       = 20
	DefaultMaxBodyKb        = 1024
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Scraper  ScraperConfig  `yaml:"scraper"`
	Logging  LoggingConfig  `yaml:"logging"`
	Features FeaturesConfig `yaml:"features"`
}

// PipelineConfig contains batch-processing settings.
type PipelineConfig struct {
	InputPath         string   `yaml:"input_path"`
	CleanedOutputPath string   `yaml:"cleaned_output_path"`
	ReportPath        string   `yaml:"report_path"`
	DateKeys          []string `yaml:"date_keys"`
	MinContentLength  int      `yaml:"min_content_length"`
	TopFailures       int      `yaml:"top_failures"`
}

// ScraperConfig contains settings for the single-article scraper.
type ScraperConfig struct {
	UserAgent  string `yaml:"user_agent"`
	TimeoutSec int    `yaml:"timeout_sec"`
	MaxBodyKb  int    `yaml:"max_body_kb"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	SignOutputs bool `yaml:"sign_outputs"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			InputPath:         DefaultInputPath,
			CleanedOutputPath: DefaultCleanedPath,
			ReportPath:        DefaultReportPath,
			MinContentLength:  DefaultMinContentLength,
			TopFailures:       DefaultTopFailures,
		},
		Scraper: ScraperConfig{
			UserAgent:  DefaultUserAgent,
			TimeoutSec: DefaultTimeoutSec,
			MaxBodyKb:  DefaultMaxBodyKb,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields absent from
// the file keep their default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	// Pipeline paths and rules
	if c.Pipeline.InputPath == "" {
		return ErrMissingInputPath
	}

	if c.Pipeline.CleanedOutputPath == "" {
		return ErrMissingCleanedPath
	}

	if c.Pipeline.ReportPath == "" {
		return ErrMissingReportPath
	}

	if c.Pipeline.MinContentLength < 1 {
		return ErrInvalidMinContentLength
	}

	if c.Pipeline.TopFailures < 1 {
		return ErrInvalidTopFailures
	}

	for i, key := range c.Pipeline.DateKeys {
		if key == "" {
			return fmt.Errorf("%w: date_keys[%d]", ErrEmptyDateKey, i)
		}
	}

	// Scraper settings
	if c.Scraper.UserAgent == "" {
		return ErrMissingUserAgent
	}

	if c.Scraper.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Scraper.MaxBodyKb < 1 {
		return ErrInvalidMaxBodySize
	}

	// Logging settings
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetTimeout returns the scraper timeout duration.
func (s *ScraperConfig) GetTimeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// GetMaxBodyBytes returns the response size cap in bytes.
func (s *ScraperConfig) GetMaxBodyBytes() int64 {
	return int64(s.MaxBodyKb) * 1024
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Cleaned: %s, Report: %s, MinContentLength: %d}",
		c.Pipeline.InputPath,
		c.Pipeline.CleanedOutputPath,
		c.Pipeline.ReportPath,
		c.Pipeline.MinContentLength,
	)
}
