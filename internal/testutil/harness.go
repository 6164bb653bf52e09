package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/internal/app"
	"github.com/lvreuse/boostback/internal/hcl"
	"github.com/lvreuse/boostback/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	OutDir    string
}

// RunStudyTest provides a standardized harness for running the whole app
// against inline study files, using a default background context.
func RunStudyTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunStudyTestWithContext(context.Background(), t, files, modules...)
}

// RunStudyTestWithContext provides a standardized harness for running the
// whole app with a specific context provided by the caller. The files map
// holds study files by relative path; outputs land under the returned
// OutDir. With no modules given, the app registers its core analysis kinds.
func RunStudyTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir, err := os.MkdirTemp("", ".tmp-integration-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	studyDir := filepath.Join(tmpDir, "studies")
	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, os.Mkdir(studyDir, 0755))

	// 2. Write all study files. Relative paths may carry subdirectories,
	//    which naturally builds the tree under the study root.
	for name, content := range files {
		filePath := filepath.Join(studyDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig, err := app.NewConfig(app.AppConfig{
		StudyPath: studyDir,
		OutDir:    outDir,
		LogLevel:  "debug",
		LogFormat: "text",
		Workers:   4,
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}

	// 3. Construct the app, trapping startup panics the way main does.
	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("BOOSTBACK_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl.NewLoader(), modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			OutDir:    outDir,
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("BOOSTBACK_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		OutDir:    outDir,
	}
}
