package integration_tests

import (
	"testing"

	"github.com/lvreuse/boostback/internal/testutil"
)

// Test for: the engine's progress counters account for every sample
func TestStudyBehavior_ProgressCountersAccountForSamples(t *testing.T) {
	// --- Arrange ---
	studyHCL := `
		study "counted" {
			samples    = 64
			seed       = 11
			mission    = "LEO"
			technology = "kerosene_gg"

			analysis "strategy_compare" "one" {
				strategies = ["expendable"]
			}
		}
	`
	files := map[string]string{"counted.hcl": studyHCL}

	// --- Act ---
	result := testutil.RunStudyTest(t, files)

	// --- Assert ---
	if result.Err != nil {
		t.Fatalf("app.Run() returned an unexpected error: %v", result.Err)
	}

	progress := result.App.Engine().Progress()
	if progress.Total != 64 {
		t.Errorf("expected 64 scheduled samples, got %d", progress.Total)
	}
	if progress.Completed+progress.Failed != progress.Total {
		t.Errorf("counters should add up after the run: %+v", progress)
	}
}
