package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvreuse/boostback/internal/units"
)

func TestBoosterEngineMass(t *testing.T) {
	t.Run("kerosene cluster", func(t *testing.T) {
		m, err := BoosterEngineMass(500e3, 9, "kerosene/O2")
		require.NoError(t, err)
		// thrust = m0*(2 + g0), nine engines at T/W 80.
		want := 500e3 * (2 + units.G0) / (80 * units.G0 * 9)
		assert.InDelta(t, want, m, 1e-9)
	})

	t.Run("hydrogen engines are heavier per thrust", func(t *testing.T) {
		kero, err := BoosterEngineMass(500e3, 9, "kerosene/O2")
		require.NoError(t, err)
		h2, err := BoosterEngineMass(500e3, 9, "H2/O2")
		require.NoError(t, err)
		assert.Greater(t, h2, kero)
	})

	t.Run("unknown propellants error", func(t *testing.T) {
		_, err := BoosterEngineMass(500e3, 9, "N2O4/MMH")
		assert.ErrorContains(t, err, `no booster engine thrust/weight data for propellant "N2O4/MMH"`)
	})
}

func TestUpperEngineMass(t *testing.T) {
	m, err := UpperEngineMass(30e3, 1, "kerosene/O2")
	require.NoError(t, err)
	want := 30e3 * 10.0 / (63 * units.G0)
	assert.InDelta(t, want, m, 1e-9)

	_, err = UpperEngineMass(30e3, 1, "solid")
	assert.ErrorContains(t, err, "no upper engine thrust/weight data")
}
