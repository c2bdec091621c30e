package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"taskdeck/internal/storage"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

type Exporter struct{ repo storage.Repository }

func NewExporter(repo storage.Repository) *Exporter { return &Exporter{repo: repo} }

type row struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Export re-reads the full task list and renders it in the given format.
func (e *Exporter) Export(ctx context.Context, format string) ([]byte, error) {
	all, err := e.repo.ListTasks(ctx, storage.TaskListFilter{})
	if err != nil {
		return nil, err
	}
	rows := make([]row, 0, len(all))
	for _, t := range all {
		rows = append(rows, row{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			DueDate:     t.DueDate.Format("2006-01-02"),
			Status:      t.Status,
			CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	switch strings.ToLower(format) {
	case FormatJSON:
		return json.MarshalIndent(rows, "", "  ")
	case FormatCSV:
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"ID", "Title", "Description", "Priority", "Due Date", "Status", "Created At"})
		for _, r := range rows {
			_ = w.Write([]string{fmt.Sprint(r.ID), r.Title, r.Description, r.Priority, r.DueDate, r.Status, r.CreatedAt})
		}
		w.Flush()
		return []byte(b.String()), nil
	case FormatPDF:
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task Report")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, r := range rows {
			line := fmt.Sprintf("#%d [%s] %s due %s (%s)", r.ID, r.Priority, r.Title, r.DueDate, r.Status)
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

// WriteFile renders the export and writes my_tasks.<ext> into dir, returning
// the path of the written file.
func (e *Exporter) WriteFile(ctx context.Context, format, dir string) (string, error) {
	data, err := e.Export(ctx, format)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "my_tasks."+strings.ToLower(format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
