package services

import (
	"fmt"
	"io"
	"strings"

	"task-tracker/internal/domain"
)

const (
	// DefaultReportTitle is used when no title is configured
	DefaultReportTitle = "Project Report"
	// DefaultReportWidth is the width of the report separator line
	DefaultReportWidth = 40
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	mapper *TaskMapper
}

// NewReportingService creates a new ReportingService instance
func NewReportingService() ReportingService {
	return &reportingServiceImpl{
		mapper: NewTaskMapper(),
	}
}

// BuildReport returns a report with one entry per task in collection order
func (r *reportingServiceImpl) BuildReport(title string, tasks []domain.Task) *Report {
	if title == "" {
		title = DefaultReportTitle
	}
	return &Report{
		Title:   title,
		Entries: r.mapper.ToReportEntries(tasks),
		Summary: r.Summarize(tasks),
	}
}

// Summarize counts total, completed and pending tasks
func (r *reportingServiceImpl) Summarize(tasks []domain.Task) ReportSummary {
	summary := ReportSummary{Total: len(tasks)}
	for _, task := range tasks {
		if task.IsCompleted() {
			summary.Completed++
		}
	}
	summary.Pending = summary.Total - summary.Completed
	return summary
}

// WriteText renders the report as plain text: a heading, one line per task
// and a closing line of counts.
func (r *Report) WriteText(w io.Writer, width int) error {
	if width <= 0 {
		width = DefaultReportWidth
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== %s ===\n", r.Title))
	if len(r.Entries) == 0 {
		sb.WriteString("No tasks.\n")
	}
	for _, entry := range r.Entries {
		sb.WriteString(entry.Description)
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("-", width))
	sb.WriteString("\n")
	sb.WriteString(r.Summary.String())
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the counts as a single line
func (s ReportSummary) String() string {
	return fmt.Sprintf("Total: %d | Completed: %d | Pending: %d", s.Total, s.Completed, s.Pending)
}
