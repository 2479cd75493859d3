package services

import (
	"task-tracker/internal/domain"
)

// ReportEntry represents one task line of a report
type ReportEntry struct {
	ID          int    `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Detail      string `json:"detail"` // Epic for features, priority for bug fixes
	Status      string `json:"status"`
	Description string `json:"description"`
}

// ReportSummary represents the task counts of a report
type ReportSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// Report represents a read-only, ordered summary of all tasks
type Report struct {
	Title   string        `json:"title"`
	Entries []ReportEntry `json:"entries"`
	Summary ReportSummary `json:"summary"`
}

// ReportingService handles report building over a task collection
type ReportingService interface {
	// BuildReport returns one entry per task, in the order given
	BuildReport(title string, tasks []domain.Task) *Report
	// Summarize counts total, completed and pending tasks
	Summarize(tasks []domain.Task) ReportSummary
}
