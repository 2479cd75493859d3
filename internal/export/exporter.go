// Package export renders task reports in the supported output formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"task-tracker/internal/config"
	"task-tracker/internal/errors"
	"task-tracker/internal/services"

	"github.com/jung-kurt/gofpdf"
)

// Exporter writes a report to an io.Writer in a named format
type Exporter struct{}

// NewExporter creates a new Exporter
func NewExporter() *Exporter { return &Exporter{} }

// Formats returns the names accepted by Export
func Formats() []string {
	return []string{config.FormatText, config.FormatCSV, config.FormatJSON, config.FormatPDF}
}

// Export writes report to w. Width only affects the text format.
func (e *Exporter) Export(w io.Writer, report *services.Report, format string, width int) error {
	switch strings.ToLower(format) {
	case config.FormatText, "":
		return report.WriteText(w, width)
	case config.FormatCSV:
		return e.exportCSV(w, report)
	case config.FormatJSON:
		return e.exportJSON(w, report)
	case config.FormatPDF:
		return e.exportPDF(w, report)
	default:
		return errors.NewInvalidInputError("format", format, "must be one of "+strings.Join(Formats(), ", "))
	}
}

func (e *Exporter) exportCSV(w io.Writer, report *services.Report) error {
	writer := csv.NewWriter(w)

	header := []string{"ID", "Kind", "Title", "Detail", "Status"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range report.Entries {
		row := []string{
			strconv.Itoa(entry.ID),
			entry.Kind,
			entry.Title,
			entry.Detail,
			entry.Status,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (e *Exporter) exportJSON(w io.Writer, report *services.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func (e *Exporter) exportPDF(w io.Writer, report *services.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(report.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, report.Title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if len(report.Entries) == 0 {
		pdf.MultiCell(0, 6, "No tasks.", "0", "L", false)
	}
	for _, entry := range report.Entries {
		pdf.MultiCell(0, 6, entry.Description, "0", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.MultiCell(0, 6, report.Summary.String(), "T", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}
