package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"task-tracker/internal/config"
	"task-tracker/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command writing to stdout and stderr
func NewRootCommand(cfg *config.Config) *RootCommand {
	return newRootCommand(NewApp(cfg))
}

// NewRootCommandWithOutput creates the root cobra command with explicit writers
func NewRootCommandWithOutput(cfg *config.Config, out, errOut io.Writer) *RootCommand {
	root := newRootCommand(NewAppWithOutput(cfg, out, errOut))
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)
	return root
}

func newRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "A command-line task manager for features and bug fixes",
		Long: `Task Manager (tm) tracks feature requests and bug fixes in memory and
prints a project report.

EXAMPLES:
  tm demo                                           # Run the scripted demo session
  tm report --feature "Implement X=Epic A" \
            --bug "Fix Y=critical" --complete 2     # Build and report a task list
  tm report --bug "Fix Y=high" --format csv         # Export the report as CSV
  tm report --feature "Write Z=Epic B" --format pdf > report.pdf

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TM_REPORT_FORMAT                       Report format: text, csv, json, pdf (default: text)
    TM_REPORT_TITLE                        Report heading (default: Project Report)
    TM_REPORT_WIDTH                        Report separator width (default: 40)
    TM_VALIDATION_REJECT_BLANK             Reject whitespace-only titles (default: false)
    TM_LOG_LEVEL                           Log level: debug, info, warn, error (default: warn)
    TM_APP_VERBOSE                         Enable verbose output (default: false)
    TM_DEBUG                               Force debug logging when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlags(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides the arguments read from os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration in effect
func (r *RootCommand) Config() *config.Config {
	return r.app.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("format", "", "Report format: text, csv, json, pdf (overrides TM_REPORT_FORMAT)")
	flags.String("title", "", "Report heading (overrides TM_REPORT_TITLE)")
	flags.Int("width", 0, "Report separator width (overrides TM_REPORT_WIDTH)")
	flags.Bool("reject-blank", false, "Reject whitespace-only titles (overrides TM_VALIDATION_REJECT_BLANK)")
	flags.String("log-level", "", "Log level (overrides TM_LOG_LEVEL)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TM_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted demo session",
		Long: `Create three tasks, complete the second one, print the report and release
the manager. Then show that a task with an empty title is rejected without
stopping the program.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDemoCommand(r.app).Execute()
		},
	}

	var opts ReportOptions
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Build a task list from flags and print its report",
		Long: `Build a task list from flags and print its report.

Features are added first, then bug fixes, each in the order given, so ids
follow that order starting at 1. Bug priorities are low, medium, high or
critical; an empty priority means medium.

Examples:
  tm report --feature "Implement X=Epic A" --bug "Fix Y=critical" --complete 2
  tm report --bug "Fix Y=" --pending
  tm report --feature "Write Z=Epic B" --kind feature --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewReportCommand(r.app).Execute(opts)
		},
	}
	reportFlags := reportCmd.Flags()
	reportFlags.StringArrayVar(&opts.Features, "feature", nil, "Add a feature as \"title=epic\" (repeatable)")
	reportFlags.StringArrayVar(&opts.Bugs, "bug", nil, "Add a bug fix as \"title=priority\" (repeatable)")
	reportFlags.IntSliceVar(&opts.Complete, "complete", nil, "Mark the task with this id completed (repeatable)")
	reportFlags.StringVar(&opts.Kind, "kind", "", "Only report tasks of this kind: feature or bugfix")
	reportFlags.BoolVar(&opts.Pending, "pending", false, "Only report pending tasks")
	reportFlags.BoolVar(&opts.Completed, "completed", false, "Only report completed tasks")

	r.cmd.AddCommand(demoCmd, reportCmd)
}

// applyFlags updates the configuration with values from command-line flags
func (r *RootCommand) applyFlags(cmd *cobra.Command) error {
	if r.app.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("format") {
		format, _ := flags.GetString("format")
		overrides.ReportFormat = &format
	}
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		overrides.ReportTitle = &title
	}
	if flags.Changed("width") {
		width, _ := flags.GetInt("width")
		overrides.ReportWidth = &width
	}
	if flags.Changed("reject-blank") {
		reject, _ := flags.GetBool("reject-blank")
		overrides.RejectBlankTitles = &reject
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		overrides.LogLevel = &level
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	config.ApplyOverrides(r.app.config, overrides)
	if err := r.app.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ConfigureLogging(r.app.config)
	logging.Debugf("config: %+v\n", *r.app.config)
	return nil
}

// ConfigureLogging sets the default logger level from cfg unless TM_DEBUG
// already forces debug output.
func ConfigureLogging(cfg *config.Config) {
	if logging.DebugEnabled() {
		logging.SetLevel(logging.LevelDebug)
		return
	}
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return
	}
	logging.SetLevel(level)
}
