package integration_tests

import (
	"strings"
	"testing"

	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/testutil"
)

// Test for: a failed analysis fails the study and skips the rest
func TestErrorHandling_FailedAnalysis_SkipsRest(t *testing.T) {
	// --- Arrange ---
	// Sweeping the service life of an expendable stage is a runtime error,
	// not a reference error, so it passes validation and fails in Run.
	studyHCL := `
		study "failing" {
			samples    = 32
			seed       = 3
			mission    = "LEO"
			technology = "kerosene_gg"

			analysis "reuse_sweep" "bad" {
				strategy = "expendable"
			}

			analysis "reuse_npv" "after" {}
		}
	`
	files := map[string]string{"failing.hcl": studyHCL}

	// --- Act ---
	result := testutil.RunStudyTest(t, files)

	// --- Assert ---
	if result.Err == nil {
		t.Fatal("the study should have failed")
	}
	errMsg := result.Err.Error()
	if !strings.Contains(errMsg, `study "failing" failed`) {
		t.Errorf("expected the study failure wrap, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "expends its first stage") {
		t.Errorf("expected the analysis error to surface, got: %s", errMsg)
	}

	// The summary still accounts for both analyses.
	runDir := testutil.RunDir(t, result.OutDir, "failing")
	summary := testutil.ReadSummary(t, runDir)
	if summary.Status != report.StatusFailed {
		t.Errorf("expected study status %q, got %q", report.StatusFailed, summary.Status)
	}
	if len(summary.Analyses) != 2 {
		t.Fatalf("expected 2 analysis summaries, got %d", len(summary.Analyses))
	}
	if summary.Analyses[0].Status != report.StatusFailed {
		t.Errorf("first analysis should be failed, got %q", summary.Analyses[0].Status)
	}
	if !strings.Contains(summary.Analyses[0].Error, "expends its first stage") {
		t.Errorf("the summary should carry the analysis error, got %q", summary.Analyses[0].Error)
	}
	if summary.Analyses[1].Status != report.StatusSkipped {
		t.Errorf("second analysis should be skipped, got %q", summary.Analyses[1].Status)
	}
}
