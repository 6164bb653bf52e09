package m_payload_sweep_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/analyses/m_payload_sweep"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	r := registry.New()
	(&m_payload_sweep.Module{}).Register(r)

	_, ok := r.Kind("m_payload_sweep")
	assert.True(t, ok)
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&m_payload_sweep.Options{}).Validate())
	assert.Error(t, (&m_payload_sweep.Options{Strategies: []string{"catapult"}}).Validate())
}

func TestRunScalesCostPerKilogram(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "m_payload_sweep")

	out, err := m_payload_sweep.Run(context.Background(), env, &m_payload_sweep.Options{
		Strategies: []string{"expendable"},
	})
	require.NoError(t, err)

	header, rows := testutil.ReadCSV(t, env.Report.Dir(), "m_payload_sweep-t.csv")
	assert.Equal(t, []string{
		"strategy", "payload_kg", "cost_per_kg_p10", "cost_per_kg_p50", "cost_per_kg_p90",
	}, header)
	require.Len(t, rows, 4)

	p50 := map[string]float64{}
	for _, row := range rows {
		assert.Equal(t, "expendable", row[0])
		v, err := strconv.ParseFloat(row[3], 64)
		require.NoError(t, err)
		p50[row[1]] = v
	}

	// Vehicle cost grows sublinearly with mass, so a smallsat launcher is
	// far more expensive per kilogram than a heavy lifter.
	assert.Greater(t, p50["100"], p50["100000"])

	assert.Equal(t, 100e3, out.Headline["min_cost_per_kg_payload"])
	assert.Greater(t, out.Headline["min_cost_per_kg_p50"], 0.0)
}
