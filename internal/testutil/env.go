package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/mc"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
)

// NewAnalysisEnv builds a ready-to-run analysis environment over a temp
// report directory: the LEO mission with kerosene gas generator technology,
// a fixed seed, and a sample count small enough for unit tests. Tests
// adjust the fields they care about before running.
func NewAnalysisEnv(t *testing.T, kind string) *analysis.Env {
	t.Helper()

	writer, err := report.NewWriter(t.TempDir())
	require.NoError(t, err)
	mission, err := strategy.MissionByName("LEO")
	require.NoError(t, err)
	pair, err := strategy.TechPairByName("kerosene_gg")
	require.NoError(t, err)

	return &analysis.Env{
		StudyName: "test",
		Kind:      kind,
		Name:      "t",
		Mission:   mission,
		Tech:      pair,
		Samples:   64,
		Seed:      7,
		Engine:    mc.NewEngine(4),
		Report:    writer,
	}
}
