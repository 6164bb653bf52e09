package cpf_validation_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/analyses/cpf_validation"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/testutil"
	"github.com/lvreuse/boostback/internal/vehicles"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	r := registry.New()
	(&cpf_validation.Module{}).Register(r)

	_, ok := r.Kind("cpf_validation")
	assert.True(t, ok)
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&cpf_validation.Options{Vehicles: []string{"ariane5_g"}}).Validate())

	err := (&cpf_validation.Options{Vehicles: []string{"saturn_v"}}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown vehicle "saturn_v"`)
}

func TestRunSweepsOneVehicle(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "cpf_validation")

	out, err := cpf_validation.Run(context.Background(), env, &cpf_validation.Options{
		Vehicles: []string{"ariane5_g"},
	})
	require.NoError(t, err)

	header, rows := testutil.ReadCSV(t, env.Report.Dir(), "cpf_validation-t.csv")
	assert.Equal(t, []string{"vehicle", "launch_rate", "cost_per_flight", "price_per_flight"}, header)
	require.Len(t, rows, 10)

	cpfAt := map[int]float64{}
	for _, row := range rows {
		assert.Equal(t, "ariane5_g", row[0])
		rate, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		cpf, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		price, err := strconv.ParseFloat(row[3], 64)
		require.NoError(t, err)
		assert.Greater(t, cpf, 0.0)
		assert.GreaterOrEqual(t, price, cpf)
		cpfAt[rate] = cpf
	}

	// Annual fixed costs amortize over more launches.
	assert.Greater(t, cpfAt[3], cpfAt[12])

	assert.Greater(t, out.Headline["ariane5_g_model_cpf"], 0.0)
	assert.Equal(t, 485.0, out.Headline["ariane5_g_published_price"])
}

func TestRunDefaultsToWholeCatalog(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "cpf_validation")

	out, err := cpf_validation.Run(context.Background(), env, &cpf_validation.Options{})
	require.NoError(t, err)

	_, rows := testutil.ReadCSV(t, env.Report.Dir(), "cpf_validation-t.csv")
	assert.Len(t, rows, 10*len(vehicles.Names()))

	// Only vehicles with a published price get a comparison headline.
	assert.Contains(t, out.Headline, "atlas_v_401_model_cpf")
	assert.Contains(t, out.Headline, "falcon9_block3_published_price")
	assert.NotContains(t, out.Headline, "ariane5_eca_model_cpf")
	assert.NotContains(t, out.Headline, "electron_published_price")
}

func TestRunValidatesRateRange(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "cpf_validation")

	_, err := cpf_validation.Run(context.Background(), env, &cpf_validation.Options{
		RateMin: 10, RateMax: 3,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not usable")
}
