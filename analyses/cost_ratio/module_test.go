package cost_ratio_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/analyses/cost_ratio"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/strategy"
	"github.com/lvreuse/boostback/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	r := registry.New()
	(&cost_ratio.Module{}).Register(r)

	_, ok := r.Kind("cost_ratio")
	assert.True(t, ok)
}

func TestRunDefaultsToStudyMission(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "cost_ratio")

	out, err := cost_ratio.Run(context.Background(), env, &cost_ratio.Options{})
	require.NoError(t, err)

	header, rows := testutil.ReadCSV(t, env.Report.Dir(), "cost_ratio-t.csv")
	assert.Equal(t, []string{"mission", "ratio_p05", "ratio_p50", "ratio_p95"}, header)
	require.Len(t, rows, 1)
	assert.Equal(t, "LEO", rows[0][0])

	p05, err := strconv.ParseFloat(rows[0][1], 64)
	require.NoError(t, err)
	p50, err := strconv.ParseFloat(rows[0][2], 64)
	require.NoError(t, err)
	p95, err := strconv.ParseFloat(rows[0][3], 64)
	require.NoError(t, err)

	assert.Greater(t, p05, 0.0)
	assert.LessOrEqual(t, p05, p50)
	assert.LessOrEqual(t, p50, p95)

	assert.InDelta(t, p05, out.Headline["LEO_ratio_p05"], 1e-12)
	assert.InDelta(t, p95, out.Headline["LEO_ratio_p95"], 1e-12)
}

func TestRunCustomMissionList(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "cost_ratio")
	env.Missions = map[string]strategy.Mission{
		"LEO_heavy": {Name: "LEO_heavy", DV: 9.85e3, Payload: 50e3},
	}

	out, err := cost_ratio.Run(context.Background(), env, &cost_ratio.Options{
		Strategy: "winged_glider",
		Missions: []string{"LEO", "LEO_heavy"},
	})
	require.NoError(t, err)

	_, rows := testutil.ReadCSV(t, env.Report.Dir(), "cost_ratio-t.csv")
	require.Len(t, rows, 2)
	assert.Equal(t, "LEO", rows[0][0])
	assert.Equal(t, "LEO_heavy", rows[1][0])

	assert.Contains(t, out.Headline, "LEO_ratio_p05")
	assert.Contains(t, out.Headline, "LEO_heavy_ratio_p95")
}

func TestRunUnknownMission(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "cost_ratio")

	_, err := cost_ratio.Run(context.Background(), env, &cost_ratio.Options{
		Missions: []string{"LLO"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mission "LLO"`)
}
