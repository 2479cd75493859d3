package services

import (
	"task-tracker/internal/domain"
)

// TaskMapper handles conversion from domain tasks to report entries.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToReportEntry converts a domain Task to a ReportEntry.
func (m *TaskMapper) ToReportEntry(task domain.Task) ReportEntry {
	return ReportEntry{
		ID:          task.ID(),
		Kind:        task.Kind().String(),
		Title:       task.Title(),
		Detail:      m.detail(task),
		Status:      string(task.Status()),
		Description: task.Describe(),
	}
}

// ToReportEntries converts a slice of domain Tasks to report entries.
func (m *TaskMapper) ToReportEntries(tasks []domain.Task) []ReportEntry {
	entries := make([]ReportEntry, len(tasks))
	for i, task := range tasks {
		entries[i] = m.ToReportEntry(task)
	}
	return entries
}

func (m *TaskMapper) detail(task domain.Task) string {
	switch t := task.(type) {
	case *domain.Feature:
		return t.Epic()
	case *domain.BugFix:
		return t.Priority().String()
	default:
		return ""
	}
}
