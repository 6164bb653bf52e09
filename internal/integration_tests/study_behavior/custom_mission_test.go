package integration_tests

import (
	"testing"

	"github.com/lvreuse/boostback/internal/testutil"
)

// Test for: mission blocks define missions the catalog does not have
func TestStudyBehavior_CustomMissionBlocks(t *testing.T) {
	// --- Arrange ---
	// LEO_heavy reuses the LEO trajectory with a 50 Mg payload; the study
	// flies it directly and the cost_ratio analysis references it by name
	// next to a built-in mission.
	studyHCL := `
		mission "LEO_heavy" {
			dv      = 9850
			payload = 50000
		}

		study "heavy" {
			samples    = 32
			seed       = 7
			mission    = "LEO_heavy"
			technology = "kerosene_gg"

			analysis "cost_ratio" "ratios" {
				missions = ["LEO_heavy", "GTO"]
			}
		}
	`
	files := map[string]string{"heavy.hcl": studyHCL}

	// --- Act ---
	result := testutil.RunStudyTest(t, files)

	// --- Assert ---
	if result.Err != nil {
		t.Fatalf("app.Run() returned an unexpected error: %v", result.Err)
	}

	runDir := testutil.RunDir(t, result.OutDir, "heavy")
	summary := testutil.ReadSummary(t, runDir)
	if summary.Mission != "LEO_heavy" {
		t.Errorf("expected the summary to fly LEO_heavy, got %q", summary.Mission)
	}

	_, rows := testutil.ReadCSV(t, runDir, "cost_ratio-ratios.csv")
	if len(rows) != 2 {
		t.Fatalf("expected one ratio row per mission, got %d rows", len(rows))
	}
	if rows[0][0] != "LEO_heavy" || rows[1][0] != "GTO" {
		t.Errorf("mission rows are wrong: %v / %v", rows[0], rows[1])
	}
}
