package testutil

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/internal/report"
)

// RunDir returns the run directory a harness run created for the named
// study, and fails the test unless there is exactly one.
func RunDir(t *testing.T, outDir, study string) string {
	t.Helper()
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)

	var matches []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), study+"-") {
			matches = append(matches, filepath.Join(outDir, e.Name()))
		}
	}
	require.Len(t, matches, 1, "expected exactly one run directory for study %q", study)
	return matches[0]
}

// ReadSummary decodes a run directory's summary.json.
func ReadSummary(t *testing.T, runDir string) *report.Summary {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(runDir, "summary.json"))
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, json.Unmarshal(data, &s))
	return &s
}

// ReadCSV reads a CSV artifact from a run directory, returning its header
// and data rows.
func ReadCSV(t *testing.T, dir, name string) ([]string, [][]string) {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records, "%s has no rows at all", name)
	return records[0], records[1:]
}
