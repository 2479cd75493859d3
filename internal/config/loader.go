package config

import (
	"strings"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		ApplyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	RejectBlankTitles *bool

	ReportFormat *string
	ReportTitle  *string
	ReportWidth  *int

	LogLevel *string

	Verbose *bool
}

// ApplyOverrides applies command line overrides to the configuration
func ApplyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.RejectBlankTitles != nil {
		config.Validation.RejectBlankTitles = *overrides.RejectBlankTitles
	}

	if overrides.ReportFormat != nil {
		config.Report.Format = strings.ToLower(*overrides.ReportFormat)
	}
	if overrides.ReportTitle != nil {
		config.Report.Title = *overrides.ReportTitle
	}
	if overrides.ReportWidth != nil {
		config.Report.Width = *overrides.ReportWidth
	}

	if overrides.LogLevel != nil {
		config.Logging.Level = strings.ToLower(*overrides.LogLevel)
	}

	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
