package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration options for the task tracker application
type Config struct {
	Validation  ValidationConfig
	Report      ReportConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	RejectBlankTitles bool `env:"TM_VALIDATION_REJECT_BLANK"`
}

// ReportConfig holds report rendering configuration
type ReportConfig struct {
	Format string `env:"TM_REPORT_FORMAT"`
	Title  string `env:"TM_REPORT_TITLE"`
	Width  int    `env:"TM_REPORT_WIDTH"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `env:"TM_LOG_LEVEL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"TM_APP_VERBOSE"`
}

// Supported report formats
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// Supported log levels
var logLevels = []string{"debug", "info", "warn", "error"}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Validation: ValidationConfig{
			RejectBlankTitles: false,
		},
		Report: ReportConfig{
			Format: FormatText,
			Title:  "Project Report",
			Width:  40,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Validation configuration
	if reject := os.Getenv("TM_VALIDATION_REJECT_BLANK"); reject != "" {
		if b, err := strconv.ParseBool(reject); err == nil {
			c.Validation.RejectBlankTitles = b
		}
	}

	// Report configuration
	if format := os.Getenv("TM_REPORT_FORMAT"); format != "" {
		c.Report.Format = strings.ToLower(format)
	}
	if title := os.Getenv("TM_REPORT_TITLE"); title != "" {
		c.Report.Title = title
	}
	if width := os.Getenv("TM_REPORT_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Report.Width = w
		}
	}

	// Logging configuration
	if level := os.Getenv("TM_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}

	// Application configuration
	if verbose := os.Getenv("TM_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate report configuration
	if !IsSupportedFormat(c.Report.Format) {
		return &ConfigError{Field: "report.format", Message: "format must be one of text, csv, json, pdf"}
	}
	if c.Report.Title == "" {
		return &ConfigError{Field: "report.title", Message: "report title cannot be empty"}
	}
	if c.Report.Width < 10 {
		return &ConfigError{Field: "report.width", Message: "report width must be at least 10"}
	}

	// Validate logging configuration
	if !isLogLevel(c.Logging.Level) {
		return &ConfigError{Field: "logging.level", Message: "log level must be one of debug, info, warn, error"}
	}

	return nil
}

// IsSupportedFormat reports whether format names a report format
func IsSupportedFormat(format string) bool {
	switch format {
	case FormatText, FormatCSV, FormatJSON, FormatPDF:
		return true
	default:
		return false
	}
}

func isLogLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
