package integration_tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lvreuse/boostback/internal/app"
	"github.com/lvreuse/boostback/internal/hcl"
	"github.com/lvreuse/boostback/internal/testutil"
)

// Test for: the --seed flag overrides the seed of every loaded study
func TestCLIBehavior_SeedFlagOverridesStudySeed(t *testing.T) {
	// --- Arrange ---
	// The study pins seed = 5; the config carries the CLI override. The
	// study path points at the file itself, not a directory.
	studyHCL := `
		study "overridden" {
			samples    = 32
			seed       = 5
			mission    = "LEO"
			technology = "kerosene_gg"

			analysis "reuse_npv" "npv" {}
		}
	`
	tempDir := t.TempDir()
	studyPath := filepath.Join(tempDir, "overridden.hcl")
	if err := os.WriteFile(studyPath, []byte(studyHCL), 0600); err != nil {
		t.Fatalf("failed to write study file: %v", err)
	}
	outDir := filepath.Join(tempDir, "out")

	appConfig, err := app.NewConfig(app.AppConfig{
		StudyPath: studyPath,
		OutDir:    outDir,
		LogLevel:  "debug",
		Seed:      99,
	})
	if err != nil {
		t.Fatalf("app.NewConfig() returned an unexpected error: %v", err)
	}

	// --- Act ---
	logBuffer := &testutil.SafeBuffer{}
	testApp := app.NewApp(logBuffer, appConfig, hcl.NewLoader())
	runErr := testApp.Run(context.Background())

	// --- Assert ---
	if runErr != nil {
		t.Fatalf("app.Run() returned an unexpected error: %v", runErr)
	}
	runDir := testutil.RunDir(t, outDir, "overridden")
	summary := testutil.ReadSummary(t, runDir)
	if summary.Seed != 99 {
		t.Errorf("expected the override seed 99 in the summary, got %d", summary.Seed)
	}
}
