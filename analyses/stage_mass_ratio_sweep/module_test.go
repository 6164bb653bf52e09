package stage_mass_ratio_sweep_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/analyses/stage_mass_ratio_sweep"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	r := registry.New()
	(&stage_mass_ratio_sweep.Module{}).Register(r)

	_, ok := r.Kind("stage_mass_ratio_sweep")
	assert.True(t, ok)
}

func TestRunSweepsMassRatio(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "stage_mass_ratio_sweep")

	out, err := stage_mass_ratio_sweep.Run(context.Background(), env, &stage_mass_ratio_sweep.Options{
		Points: 19,
	})
	require.NoError(t, err)

	header, rows := testutil.ReadCSV(t, env.Report.Dir(), "stage_mass_ratio_sweep-t.csv")
	assert.Equal(t, "y", header[0])
	assert.Equal(t, "pi_star_expendable", header[1])
	require.Len(t, rows, 19)

	col := func(row []string, i int) float64 {
		v, err := strconv.ParseFloat(row[i], 64)
		require.NoError(t, err)
		return v
	}

	assert.InDelta(t, 0.10, col(rows[0], 0), 1e-9)
	assert.InDelta(t, 1.0, col(rows[18], 0), 1e-9)

	// Staging velocity falls as the upper stage grows.
	first, last := col(rows[0], 2), col(rows[18], 2)
	assert.Greater(t, first, last)
	assert.Greater(t, last, 0.0)

	// The payload fraction optimum sits inside the grid, not at an edge.
	bestY := out.Headline["best_y_expendable"]
	assert.Greater(t, bestY, 0.10)
	assert.Less(t, bestY, 1.0)

	maxPi := 0.0
	for _, row := range rows {
		if pi := col(row, 1); pi > maxPi {
			maxPi = pi
		}
	}
	assert.Greater(t, maxPi, 0.0)
}

func TestRunValidatesGrid(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "stage_mass_ratio_sweep")

	_, err := stage_mass_ratio_sweep.Run(context.Background(), env, &stage_mass_ratio_sweep.Options{
		YMin: 0.5, YMax: 0.2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "y_max must exceed y_min")
}
