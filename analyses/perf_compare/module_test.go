package perf_compare_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/analyses/perf_compare"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/strategy"
	"github.com/lvreuse/boostback/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	r := registry.New()
	(&perf_compare.Module{}).Register(r)

	_, ok := r.Kind("perf_compare")
	assert.True(t, ok)
}

func TestRunComparesAllStrategies(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "perf_compare")

	out, err := perf_compare.Run(context.Background(), env, &perf_compare.Options{})
	require.NoError(t, err)

	header, rows := testutil.ReadCSV(t, env.Report.Dir(), "perf_compare-t.csv")
	assert.Equal(t, "strategy", header[0])
	assert.Equal(t, "response", header[1])
	// Two responses per strategy: pi_star and e_1.
	assert.Len(t, rows, 2*len(strategy.Names()))

	// Recovering the first stage always costs payload, so the expendable
	// median must beat every reuse strategy.
	exp := out.Headline["expendable_pi_star_p50"]
	require.Greater(t, exp, 0.0)
	for _, name := range strategy.Names() {
		if name == "expendable" {
			continue
		}
		assert.Less(t, out.Headline[name+"_pi_star_p50"], exp, name)
	}
}

func TestRunFalcon9Anchors(t *testing.T) {
	t.Parallel()

	t.Run("leo anchors expendable and launch site recovery", func(t *testing.T) {
		env := testutil.NewAnalysisEnv(t, "perf_compare")
		out, err := perf_compare.Run(context.Background(), env, &perf_compare.Options{
			Strategies: []string{"expendable"},
		})
		require.NoError(t, err)

		assert.Contains(t, out.Headline, "falcon9_pi_star_expendable")
		assert.Contains(t, out.Headline, "falcon9_pi_star_propulsive_launch_site")
		assert.NotContains(t, out.Headline, "falcon9_pi_star_propulsive_downrange")
	})

	t.Run("gto anchors downrange recovery instead", func(t *testing.T) {
		env := testutil.NewAnalysisEnv(t, "perf_compare")
		mission, err := strategy.MissionByName("GTO")
		require.NoError(t, err)
		env.Mission = mission

		out, err := perf_compare.Run(context.Background(), env, &perf_compare.Options{
			Strategies: []string{"expendable"},
		})
		require.NoError(t, err)

		assert.Contains(t, out.Headline, "falcon9_pi_star_expendable")
		assert.Contains(t, out.Headline, "falcon9_pi_star_propulsive_downrange")
		assert.NotContains(t, out.Headline, "falcon9_pi_star_propulsive_launch_site")
	})
}
