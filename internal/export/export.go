package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/tinytelemetry/clover/internal/model"
	"github.com/tinytelemetry/clover/internal/report"
)

// Writer writes report artifacts to disk. Rendering stays in the report
// package; this layer only owns file handling.
type Writer struct{}

// NewWriter creates an artifact writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText writes the plain-text report to filename.
func (w *Writer) WriteText(r model.Report, source, filename string) error {
	if err := os.WriteFile(filename, []byte(report.Text(r, source)), 0644); err != nil {
		return fmt.Errorf("export: write text report: %w", err)
	}
	return nil
}

// WriteJSON writes the machine-readable JSON report to filename.
func (w *Writer) WriteJSON(r model.Report, filename string) error {
	data, err := report.JSON(r)
	if err != nil {
		return fmt.Errorf("export: encode JSON report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("export: write JSON report: %w", err)
	}
	return nil
}

// WriteRankingsCSV writes the client and endpoint rankings to filename.
func (w *Writer) WriteRankingsCSV(r model.Report, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("export: create csv: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	defer cw.Flush()

	if err := cw.Write([]string{"kind", "key", "requests"}); err != nil {
		return err
	}
	for _, c := range r.TopClients {
		if err := cw.Write([]string{"client", c.Key, fmt.Sprintf("%d", c.Count)}); err != nil {
			return err
		}
	}
	for _, e := range r.TopEndpoints {
		if err := cw.Write([]string{"endpoint", e.Key, fmt.Sprintf("%d", e.Count)}); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}
