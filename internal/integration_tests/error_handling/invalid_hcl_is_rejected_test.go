package integration_tests

import (
	"strings"
	"testing"

	"github.com/lvreuse/boostback/internal/testutil"
)

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	// --- Arrange ---
	// A study file with a clear syntax error (a missing closing brace).
	invalidHCL := `
		study "broken" {
			samples = 64
	`
	files := map[string]string{"broken.hcl": invalidHCL}

	// --- Act ---
	// Startup loads every study, so the failure surfaces as a panic that
	// the harness converts back into an error, the same way main does.
	result := testutil.RunStudyTest(t, files)

	// --- Assert ---
	if result.Err == nil {
		t.Fatal("the app should have refused a study file with broken syntax")
	}
	errMsg := result.Err.Error()
	if !strings.Contains(errMsg, "application startup panicked") {
		t.Errorf("expected a startup panic, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "failed to parse HCL file") {
		t.Errorf("expected the error to name the parse failure, got: %s", errMsg)
	}
}

// Test for: misspelled analysis options are decode errors
func TestErrorHandling_UnknownOption_IsRejected(t *testing.T) {
	// --- Arrange ---
	studyHCL := `
		study "typo" {
			samples    = 32
			mission    = "LEO"
			technology = "kerosene_gg"

			analysis "reuse_sweep" "sweep" {
				strategy   = "propulsive_downrange"
				max_resues = 10
			}
		}
	`
	files := map[string]string{"typo.hcl": studyHCL}

	// --- Act ---
	result := testutil.RunStudyTest(t, files)

	// --- Assert ---
	if result.Err == nil {
		t.Fatal("a misspelled option should be rejected at load time")
	}
	if !strings.Contains(result.Err.Error(), "failed to decode analysis options") {
		t.Errorf("expected an options decode error, got: %s", result.Err.Error())
	}
}
