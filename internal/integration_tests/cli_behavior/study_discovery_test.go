package integration_tests

import (
	"strings"
	"testing"

	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/testutil"
)

// Test for: a study path pointing at a directory runs every file in it
func TestCLIBehavior_DirectoryRunsEveryStudyFile(t *testing.T) {
	// --- Arrange ---
	// Two study files, one of them nested, each with its own study block.
	alpha := `
		study "alpha" {
			samples    = 32
			seed       = 1
			mission    = "LEO"
			technology = "kerosene_gg"

			analysis "reuse_npv" "npv" {}
		}
	`
	beta := `
		study "beta" {
			samples    = 32
			seed       = 2
			mission    = "GTO"
			technology = "hydrogen_sc"

			analysis "cost_breakdown" "stack" {
				sweep = "launch_rate"
			}
		}
	`
	files := map[string]string{
		"alpha.hcl":        alpha,
		"nested/beta.hcl":  beta,
		"nested/notes.txt": "not a study file, must be ignored",
	}

	// --- Act ---
	result := testutil.RunStudyTest(t, files)

	// --- Assert ---
	if result.Err != nil {
		t.Fatalf("app.Run() returned an unexpected error: %v", result.Err)
	}

	for _, study := range []string{"alpha", "beta"} {
		runDir := testutil.RunDir(t, result.OutDir, study)
		summary := testutil.ReadSummary(t, runDir)
		if summary.Status != report.StatusOK {
			t.Errorf("study %s should have passed, got %q", study, summary.Status)
		}
	}

	if got := strings.Count(result.LogOutput, "Study run finished."); got != 2 {
		t.Errorf("expected 2 finished study runs in the log, got %d", got)
	}
}
