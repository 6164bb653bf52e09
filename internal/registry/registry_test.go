package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/internal/analysis"
)

func newRunner(kind string) *analysis.Runner {
	return &analysis.Runner{
		Kind: kind,
		Run: func(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
			return &analysis.Outcome{}, nil
		},
	}
}

func TestRegistry(t *testing.T) {
	t.Run("registers and looks up a kind", func(t *testing.T) {
		r := New()
		r.RegisterAnalysis(newRunner("strategy_compare"))

		rn, ok := r.Kind("strategy_compare")
		require.True(t, ok)
		assert.Equal(t, "strategy_compare", rn.Kind)

		_, ok = r.Kind("unknown")
		assert.False(t, ok)
	})

	t.Run("duplicate kind panics", func(t *testing.T) {
		r := New()
		r.RegisterAnalysis(newRunner("reuse_sweep"))

		require.PanicsWithValue(t, "analysis kind 'reuse_sweep' already registered", func() {
			r.RegisterAnalysis(newRunner("reuse_sweep"))
		})
	})

	t.Run("runner without a kind panics", func(t *testing.T) {
		r := New()
		require.Panics(t, func() {
			r.RegisterAnalysis(&analysis.Runner{})
		})
	})

	t.Run("runner without a run function panics", func(t *testing.T) {
		r := New()
		require.Panics(t, func() {
			r.RegisterAnalysis(&analysis.Runner{Kind: "sensitivity"})
		})
	})

	t.Run("kinds are sorted", func(t *testing.T) {
		r := New()
		for _, kind := range []string{"sensitivity", "cost_ratio", "reuse_sweep"} {
			r.RegisterAnalysis(newRunner(kind))
		}
		assert.Equal(t, []string{"cost_ratio", "reuse_sweep", "sensitivity"}, r.Kinds())
	})
}
