package cli

import (
	"fmt"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/services"
)

// DemoCommand walks through a scripted session against a fresh manager
type DemoCommand struct {
	app *App
}

// NewDemoCommand creates a new demo command handler
func NewDemoCommand(app *App) *DemoCommand {
	return &DemoCommand{app: app}
}

// Execute runs the scripted session followed by the validation walkthrough
func (c *DemoCommand) Execute() error {
	out := c.app.out

	fmt.Fprint(out, "--- Starting Application ---\n\n")

	err := services.Scope(c.app.newManager(), func(manager *services.TaskManager) error {
		if _, err := manager.AddFeature("Implement C++20 Modules", "Architecture Epic"); err != nil {
			return err
		}
		if _, err := manager.AddBugFix("Fix IntelliSense Squiggles", domain.PriorityCritical); err != nil {
			return err
		}
		if _, err := manager.AddFeature("Write a Custom CLI", "DevEx Epic"); err != nil {
			return err
		}
		c.app.verbosef("[System] Created %d tasks.\n", manager.Count())

		if task, ok := manager.FindTaskByID(2); ok {
			task.Complete()
			fmt.Fprint(out, "\n[System] Marked ID 2 as completed.\n")
		}

		if err := manager.PrintReport(out); err != nil {
			return err
		}

		fmt.Fprint(out, "--- Manager is about to go out of scope ---\n")
		return nil
	})
	if err != nil {
		return c.app.errors.Handle("run demo", err)
	}
	logging.Debugln("demo: manager released")

	c.validationWalkthrough()

	fmt.Fprint(out, "\n--- Application Finished Successfully ---\n")
	return nil
}

// validationWalkthrough shows that a rejected task leaves the program running
func (c *DemoCommand) validationWalkthrough() {
	out := c.app.out

	fmt.Fprint(out, "\nStep 1: Creating valid task...\n")
	task, err := domain.NewFeature(101, "Learn Go Default Values", "Go Mastery")
	if err == nil {
		fmt.Fprintln(out, task.Describe())
	}

	fmt.Fprint(out, "\nStep 2: Trying to create INVALID task (Empty title)...\n")
	if _, err := domain.NewFeature(102, "", "Go Mastery"); err != nil {
		fmt.Fprintf(c.app.errOut, "\n [CAUGHT ERROR]: %s\n", errors.GetUserMessage(err))
	}

	fmt.Fprint(out, "\n--- App continues to run safely ---\n")
}
