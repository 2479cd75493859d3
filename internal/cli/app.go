package cli

import (
	"fmt"
	"io"
	"os"

	"task-tracker/internal/config"
	"task-tracker/internal/export"
	"task-tracker/internal/logging"
	"task-tracker/internal/services"
)

// App represents the main CLI application
type App struct {
	config   *config.Config
	out      io.Writer
	errOut   io.Writer
	logger   *logging.Logger
	exporter *export.Exporter
	errors   *ErrorHandler
}

// NewApp creates a new CLI application writing to stdout and stderr
func NewApp(cfg *config.Config) *App {
	return NewAppWithOutput(cfg, os.Stdout, os.Stderr)
}

// NewAppWithOutput creates a new CLI application with explicit writers
func NewAppWithOutput(cfg *config.Config, out, errOut io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		config:   cfg,
		out:      out,
		errOut:   errOut,
		logger:   logging.Default().With("component", "cli"),
		exporter: export.NewExporter(),
		errors:   NewErrorHandler(),
	}
}

// newManager creates a task manager honoring the current configuration
func (a *App) newManager() *services.TaskManager {
	return services.NewTaskManagerWithConfig(a.config, logging.Default())
}

// verbosef prints to the error stream when verbose output is enabled
func (a *App) verbosef(format string, args ...interface{}) {
	if a.config.Application.Verbose {
		_, _ = fmt.Fprintf(a.errOut, format, args...)
	}
}
