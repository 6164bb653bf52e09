package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/internal/mc"
	"github.com/lvreuse/boostback/internal/registry"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("requires a study path", func(t *testing.T) {
		_, err := NewConfig(AppConfig{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "StudyPath is a required configuration field")
	})

	t.Run("list mode needs no study path", func(t *testing.T) {
		cfg, err := NewConfig(AppConfig{List: true})
		require.NoError(t, err)
		assert.True(t, cfg.List)
	})

	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := NewConfig(AppConfig{StudyPath: "studies"})
		require.NoError(t, err)
		assert.Equal(t, "out", cfg.OutDir)
		assert.Equal(t, 10, cfg.Workers)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg, err := NewConfig(AppConfig{StudyPath: "s.hcl", OutDir: "results", Workers: 2})
		require.NoError(t, err)
		assert.Equal(t, "results", cfg.OutDir)
		assert.Equal(t, 2, cfg.Workers)
	})
}

func TestCoreModulesRegisterEveryKind(t *testing.T) {
	t.Parallel()
	r := registry.New()
	for _, m := range coreModules {
		m.Register(r)
	}

	kinds := r.Kinds()
	assert.Len(t, kinds, 11)
	assert.True(t, sort.StringsAreSorted(kinds))
	for _, kind := range []string{
		"cost_breakdown", "cost_ratio", "cpf_validation",
		"dv_mission_sweep", "m_payload_sweep", "perf_compare",
		"reuse_npv", "reuse_sweep", "sensitivity",
		"stage_mass_ratio_sweep", "strategy_compare",
	} {
		_, ok := r.Kind(kind)
		assert.True(t, ok, kind)
	}
}

func TestListModePrintsCatalogs(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	cfg, err := NewConfig(AppConfig{List: true})
	require.NoError(t, err)

	a := NewApp(&out, cfg, nil)
	require.NoError(t, a.Run(context.Background()))

	listing := out.String()
	for _, want := range []string{
		"analysis kinds:", "strategy_compare",
		"strategies:", "propulsive_downrange",
		"missions:", "GTO",
		"technologies:", "kerosene_gg",
		"reference vehicles:", "falcon9_block3",
	} {
		assert.Contains(t, listing, want)
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := NewConfig(AppConfig{List: true})
	require.NoError(t, err)
	return NewApp(new(bytes.Buffer), cfg, nil)
}

func TestHealthzHandler(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.healthzHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestProgressHandler(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)

	rec := httptest.NewRecorder()
	a.progressHandler(rec, httptest.NewRequest(http.MethodGet, "/progress", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var progress mc.Progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.Zero(t, progress.Total)
	assert.Zero(t, progress.Completed)
}
