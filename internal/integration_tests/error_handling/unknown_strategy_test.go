package integration_tests

import (
	"strings"
	"testing"

	"github.com/lvreuse/boostback/internal/testutil"
)

// Test for: a strategy reference in analysis options fails at load time
func TestErrorHandling_UnknownStrategy_FailsAtLoadTime(t *testing.T) {
	// --- Arrange ---
	// The kind and the block shape are fine; only the strategy name is
	// wrong. The options validator must catch it before any sampling.
	studyHCL := `
		study "misref" {
			samples    = 1000
			mission    = "LEO"
			technology = "kerosene_gg"

			analysis "strategy_compare" "ranking" {
				strategies = ["expendable", "skyhook"]
			}
		}
	`
	files := map[string]string{"misref.hcl": studyHCL}

	// --- Act ---
	result := testutil.RunStudyTest(t, files)

	// --- Assert ---
	if result.Err == nil {
		t.Fatal("an unknown strategy should be rejected at load time")
	}
	errMsg := result.Err.Error()
	if !strings.Contains(errMsg, "application startup panicked") {
		t.Errorf("the failure should happen at startup, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, `unknown strategy "skyhook"`) {
		t.Errorf("expected the error to name the strategy, got: %s", errMsg)
	}
	// Startup rejection means no run directory was ever created.
	if strings.Contains(result.LogOutput, "Starting study run.") {
		t.Error("no study run should have started")
	}
}
