package domain

import (
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/validation"
)

// Kind identifies which variant a Task is.
type Kind int

const (
	KindFeature Kind = iota
	KindBugFix
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFeature:
		return "Feature"
	case KindBugFix:
		return "BugFix"
	default:
		return "Unknown"
	}
}

// Status is the completion state of a task.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Task is one trackable unit of work. The set of implementations is closed:
// only *Feature and *BugFix satisfy it.
type Task interface {
	ID() int
	Title() string
	Kind() Kind
	Status() Status
	IsCompleted() bool
	// Complete marks the task done. Calling it again has no effect.
	Complete()
	// Describe returns a one-line human-readable summary.
	Describe() string

	isTask()
}

var titleValidator = validation.NewTaskValidator()

// baseTask holds the state shared by every variant.
type baseTask struct {
	id        int
	title     string
	completed bool
}

func (b *baseTask) ID() int           { return b.id }
func (b *baseTask) Title() string     { return b.title }
func (b *baseTask) IsCompleted() bool { return b.completed }
func (b *baseTask) Complete()         { b.completed = true }
func (b *baseTask) isTask()           {}

func (b *baseTask) Status() Status {
	if b.completed {
		return StatusCompleted
	}
	return StatusPending
}

func (b *baseTask) describe(kind Kind, detail string) string {
	return fmt.Sprintf("[#%d] %s: %s (%s) - %s", b.id, kind, b.title, detail, b.Status())
}

// Feature is a feature request belonging to an epic.
type Feature struct {
	baseTask
	epic string
}

// NewFeature creates a pending Feature. It fails with a validation error
// when title is empty; epic may be empty.
func NewFeature(id int, title, epic string) (*Feature, error) {
	if err := titleValidator.ValidateTitle(title); err != nil {
		return nil, errors.NewValidationError("invalid feature", err).
			WithContext("kind", KindFeature.String())
	}
	return &Feature{
		baseTask: baseTask{id: id, title: title},
		epic:     epic,
	}, nil
}

// Epic returns the epic label of the feature.
func (f *Feature) Epic() string { return f.epic }

// Kind returns KindFeature.
func (f *Feature) Kind() Kind { return KindFeature }

// Describe returns a summary including the epic and completion state.
func (f *Feature) Describe() string {
	return f.describe(KindFeature, "Epic: "+f.epic)
}

// BugFix is a defect to be fixed, labelled with a priority.
type BugFix struct {
	baseTask
	priority Priority
}

// NewBugFix creates a pending BugFix. It fails with a validation error
// when title is empty.
func NewBugFix(id int, title string, priority Priority) (*BugFix, error) {
	if err := titleValidator.ValidateTitle(title); err != nil {
		return nil, errors.NewValidationError("invalid bug fix", err).
			WithContext("kind", KindBugFix.String())
	}
	return &BugFix{
		baseTask: baseTask{id: id, title: title},
		priority: priority,
	}, nil
}

// Priority returns the priority label of the bug fix.
func (b *BugFix) Priority() Priority { return b.priority }

// Kind returns KindBugFix.
func (b *BugFix) Kind() Kind { return KindBugFix }

// Describe returns a summary including the priority and completion state.
func (b *BugFix) Describe() string {
	return b.describe(KindBugFix, "Priority: "+b.priority.String())
}
