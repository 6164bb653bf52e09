package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/internal/strategy"
	"github.com/lvreuse/boostback/internal/testutil"
)

func TestEnvArtifact(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "reuse_sweep")

	assert.Equal(t, "reuse_sweep-t", env.Artifact(""))
	assert.Equal(t, "reuse_sweep-t-coupled", env.Artifact("coupled"))
}

func TestEnvResolveMission(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "cost_ratio")

	t.Run("builtin mission", func(t *testing.T) {
		m, err := env.ResolveMission("GTO")
		require.NoError(t, err)
		assert.Equal(t, 11.77e3, m.DV)
	})

	t.Run("custom mission wins over builtin", func(t *testing.T) {
		env := testutil.NewAnalysisEnv(t, "cost_ratio")
		env.Missions = map[string]strategy.Mission{
			"GTO": {Name: "GTO", DV: 12e3, Payload: 5e3},
		}
		m, err := env.ResolveMission("GTO")
		require.NoError(t, err)
		assert.Equal(t, 12e3, m.DV)
	})

	t.Run("unknown mission errors", func(t *testing.T) {
		_, err := env.ResolveMission("LLO")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown mission")
	})
}

func TestEnvNewRNG(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "strategy_compare")

	// Every call starts the same stream, so an analysis cannot depend on
	// what ran before it.
	a, b := env.NewRNG(), env.NewRNG()
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestEnvStrategies(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "strategy_compare")

	t.Run("empty names build the whole catalog", func(t *testing.T) {
		strats, err := env.Strategies(nil)
		require.NoError(t, err)
		assert.Len(t, strats, len(strategy.Names()))
	})

	t.Run("named strategies keep their order", func(t *testing.T) {
		strats, err := env.Strategies([]string{"parachute", "expendable"})
		require.NoError(t, err)
		require.Len(t, strats, 2)
		assert.Equal(t, "parachute", strats[0].Name)
		assert.Equal(t, "expendable", strats[1].Name)
	})

	t.Run("unknown name errors", func(t *testing.T) {
		_, err := env.Strategies([]string{"skyhook"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown strategy "skyhook"`)
	})
}
