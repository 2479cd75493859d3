package cli

import (
	"strconv"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/services"
	"task-tracker/internal/validation"
)

// ReportOptions describes the tasks to create and the report to produce.
// Features are added before bug fixes, each in flag order.
type ReportOptions struct {
	Features  []string // "title=epic"
	Bugs      []string // "title=priority", empty priority means medium
	Complete  []int
	Kind      string // "", "feature" or "bugfix"
	Pending   bool
	Completed bool
}

// ReportCommand builds a manager from flags and prints its report
type ReportCommand struct {
	app *App
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{app: app}
}

// Execute runs the report command
func (c *ReportCommand) Execute(opts ReportOptions) error {
	filter, err := c.buildFilter(opts)
	if err != nil {
		return c.app.errors.Handle("build report", err)
	}

	err = services.Scope(c.app.newManager(), func(manager *services.TaskManager) error {
		if err := c.addTasks(manager, opts); err != nil {
			return err
		}
		if err := c.completeTasks(manager, opts.Complete); err != nil {
			return err
		}

		report := manager.GenerateFilteredReport(filter)
		logging.Debugf("report: %d of %d tasks selected\n", len(report.Entries), manager.Count())

		cfg := c.app.config.Report
		return c.app.exporter.Export(c.app.out, report, cfg.Format, cfg.Width)
	})
	if err != nil {
		return c.app.errors.Handle("build report", err)
	}
	return nil
}

func (c *ReportCommand) addTasks(manager *services.TaskManager, opts ReportOptions) error {
	for _, raw := range opts.Features {
		title, epic, err := splitPair("feature", raw, "title=epic")
		if err != nil {
			return err
		}
		id, err := manager.AddFeature(title, epic)
		if err != nil {
			return err
		}
		c.app.verbosef("[System] Added feature #%d.\n", id)
	}

	for _, raw := range opts.Bugs {
		title, level, err := splitPair("bug", raw, "title=priority")
		if err != nil {
			return err
		}
		priority, err := domain.ParsePriority(level)
		if err != nil {
			return err
		}
		id, err := manager.AddBugFix(title, priority)
		if err != nil {
			return err
		}
		c.app.verbosef("[System] Added bug fix #%d.\n", id)
	}
	return nil
}

func (c *ReportCommand) completeTasks(manager *services.TaskManager, ids []int) error {
	taskValidator := validation.NewTaskValidator()
	for _, id := range ids {
		if err := taskValidator.ValidateTaskID(id); err != nil {
			return errors.NewValidationError("invalid task id", err)
		}
		task, ok := manager.FindTaskByID(id)
		if !ok {
			return errors.NewNotFoundError("task", strconv.Itoa(id))
		}
		task.Complete()
		c.app.verbosef("[System] Marked ID %d as completed.\n", id)
	}
	return nil
}

func (c *ReportCommand) buildFilter(opts ReportOptions) (domain.TaskFilter, error) {
	var filter domain.TaskFilter

	if opts.Pending && opts.Completed {
		return filter, errors.NewInvalidInputError("status", "pending,completed", "choose at most one of --pending and --completed")
	}
	if opts.Pending || opts.Completed {
		completed := opts.Completed
		filter.Completed = &completed
	}

	switch strings.ToLower(opts.Kind) {
	case "":
	case "feature":
		kind := domain.KindFeature
		filter.Kind = &kind
	case "bugfix", "bug":
		kind := domain.KindBugFix
		filter.Kind = &kind
	default:
		return filter, errors.NewInvalidInputError("kind", opts.Kind, "must be feature or bugfix")
	}

	return filter, nil
}

// splitPair splits "left=right" at the first '='
func splitPair(field, raw, expected string) (string, string, error) {
	left, right, found := strings.Cut(raw, "=")
	if !found {
		validationErr := validation.NewValidationError()
		validationErr.AddInvalidFormatError(field, raw, expected)
		return "", "", errors.NewValidationError("invalid --"+field+" value", validationErr)
	}
	return left, right, nil
}
