package services

import (
	"strconv"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// TaskHandle is a non-owning reference to a task held by a TaskManager.
// It stays usable only while the manager is open; once the manager is
// closed every method except Valid panics with a released error.
type TaskHandle struct {
	owner *TaskManager
	index int
	id    int
}

// Valid reports whether the handle still refers to a live task
func (h *TaskHandle) Valid() bool {
	return h.owner != nil && !h.owner.closed && h.index < len(h.owner.tasks)
}

// ID returns the task id
func (h *TaskHandle) ID() int {
	return h.resolve().ID()
}

// Title returns the task title
func (h *TaskHandle) Title() string {
	return h.resolve().Title()
}

// Kind returns the task variant
func (h *TaskHandle) Kind() domain.Kind {
	return h.resolve().Kind()
}

// Status returns the completion state
func (h *TaskHandle) Status() domain.Status {
	return h.resolve().Status()
}

// IsCompleted reports whether the task has been completed
func (h *TaskHandle) IsCompleted() bool {
	return h.resolve().IsCompleted()
}

// Describe returns the task summary line
func (h *TaskHandle) Describe() string {
	return h.resolve().Describe()
}

// Complete marks the referenced task completed. Repeated calls are no-ops.
func (h *TaskHandle) Complete() {
	task := h.resolve()
	if task.IsCompleted() {
		return
	}
	task.Complete()
	h.owner.logger.Debug("task completed", "id", task.ID())
}

func (h *TaskHandle) resolve() domain.Task {
	if !h.Valid() {
		panic(errors.NewReleasedError("task handle", strconv.Itoa(h.id)))
	}
	return h.owner.tasks[h.index]
}
