// Package report writes a run's artifacts: per-analysis CSV tables and the
// run summary JSON. One Writer serves a whole run, rooted at its output
// directory.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Writer writes artifacts into a single run directory and remembers what it
// wrote, so the run summary can list its own files.
type Writer struct {
	dir       string
	artifacts []string
}

// NewWriter creates the run output directory (parents included) and returns
// a writer rooted there.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, fmt.Errorf("report: output directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: creating output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the run output directory.
func (w *Writer) Dir() string { return w.dir }

// Artifacts returns the file names written so far, in write order.
func (w *Writer) Artifacts() []string {
	return append([]string(nil), w.artifacts...)
}

// WriteCSV writes header and rows to <name>.csv in the run directory. Every
// row must match the header width; column order is the caller's and is
// preserved exactly.
func (w *Writer) WriteCSV(name string, header []string, rows [][]string) error {
	if err := checkName(name); err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("report: %s.csv row %d has %d cells, header has %d", name, i, len(row), len(header))
		}
	}
	file := name + ".csv"
	f, err := os.Create(filepath.Join(w.dir, file))
	if err != nil {
		return fmt.Errorf("report: creating %s: %w", file, err)
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("report: writing %s: %w", file, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("report: writing %s: %w", file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: closing %s: %w", file, err)
	}
	w.artifacts = append(w.artifacts, file)
	return nil
}

// WriteSummary writes the run summary to summary.json.
func (w *Writer) WriteSummary(s *Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("report: encoding summary: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(w.dir, "summary.json"), data, 0o644); err != nil {
		return fmt.Errorf("report: writing summary.json: %w", err)
	}
	w.artifacts = append(w.artifacts, "summary.json")
	return nil
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("report: bad artifact name %q", name)
	}
	return nil
}

// Cell formats a value for a CSV cell with full round-trip precision.
func Cell(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// Cells formats a row of values.
func Cells(vals ...float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = Cell(v)
	}
	return out
}
