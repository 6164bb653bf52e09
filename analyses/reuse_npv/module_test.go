package reuse_npv_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/analyses/reuse_npv"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	r := registry.New()
	(&reuse_npv.Module{}).Register(r)

	_, ok := r.Kind("reuse_npv")
	assert.True(t, ok)
}

func TestRunDiscountsSavings(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "reuse_npv")

	out, err := reuse_npv.Run(context.Background(), env, &reuse_npv.Options{
		Rates:  []int{1, 10},
		Points: 5,
	})
	require.NoError(t, err)

	header, rows := testutil.ReadCSV(t, env.Report.Dir(), "reuse_npv-t.csv")
	assert.Equal(t, []string{"cpf_ratio", "pv_rate_1", "pv_rate_10"}, header)
	require.Len(t, rows, 5)

	col := func(row []string, i int) float64 {
		v, err := strconv.ParseFloat(row[i], 64)
		require.NoError(t, err)
		return v
	}

	// An annuity-due of 20 years of full cost-per-flight savings at a 20%
	// annual discount rate: 6*(1-1.2^-20) for one flight a year,
	// 51*(1-1.02^-200) for ten.
	assert.InDelta(t, 0.0, col(rows[0], 0), 1e-12)
	assert.InDelta(t, 5.8435, col(rows[0], 1), 1e-3)
	assert.InDelta(t, 50.028, col(rows[0], 2), 1e-2)

	// Saving nothing per flight is worth nothing.
	assert.InDelta(t, 1.0, col(rows[4], 0), 1e-12)
	assert.InDelta(t, 0.0, col(rows[4], 1), 1e-12)
	assert.InDelta(t, 0.0, col(rows[4], 2), 1e-12)

	// The affordable spend shrinks as the reusable vehicle gets costlier.
	for i := 1; i < len(rows); i++ {
		assert.Less(t, col(rows[i], 1), col(rows[i-1], 1))
	}

	assert.InDelta(t, 2.92175, out.Headline["pv_at_half_rate_1"], 1e-4)
	assert.InDelta(t, 25.014, out.Headline["pv_at_half_rate_10"], 1e-2)
}

func TestRunValidatesTerms(t *testing.T) {
	t.Parallel()
	env := testutil.NewAnalysisEnv(t, "reuse_npv")

	_, err := reuse_npv.Run(context.Background(), env, &reuse_npv.Options{Rates: []int{0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launch rates must be positive")

	_, err = reuse_npv.Run(context.Background(), env, &reuse_npv.Options{DiscountRate: -0.1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discount_rate must be positive")

	_, err = reuse_npv.Run(context.Background(), env, &reuse_npv.Options{Points: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points must be at least 2")
}
