package strategy

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/lvreuse/boostback/internal/mc"
	"github.com/lvreuse/boostback/internal/uncertainty"
	"github.com/lvreuse/boostback/internal/units"
)

func keroLEO(t *testing.T) (TechPair, Mission) {
	t.Helper()
	pair, err := TechPairByName("kerosene_gg")
	require.NoError(t, err)
	mission, err := MissionByName("LEO")
	require.NoError(t, err)
	return pair, mission
}

func TestMissionCatalog(t *testing.T) {
	t.Run("LEO targets 9.85 km/s with a 10 t payload", func(t *testing.T) {
		m, err := MissionByName("LEO")
		require.NoError(t, err)
		assert.Equal(t, 9.85e3, m.DV)
		assert.Equal(t, 10e3, m.Payload)
	})

	t.Run("GTO needs more delta v for the same payload", func(t *testing.T) {
		gto, err := MissionByName("GTO")
		require.NoError(t, err)
		leo, err := MissionByName("LEO")
		require.NoError(t, err)
		assert.Equal(t, 11.77e3, gto.DV)
		assert.Greater(t, gto.DV, leo.DV)
		assert.Equal(t, leo.Payload, gto.Payload)
	})

	t.Run("smallsat rides the LEO trajectory with 100 kg", func(t *testing.T) {
		m, err := MissionByName("LEO_smallsat")
		require.NoError(t, err)
		assert.Equal(t, 9.85e3, m.DV)
		assert.Equal(t, 100.0, m.Payload)
	})

	t.Run("unknown mission", func(t *testing.T) {
		_, err := MissionByName("lunar")
		assert.ErrorContains(t, err, "unknown mission")
	})

	t.Run("names are stable and sorted", func(t *testing.T) {
		assert.Equal(t, []string{"GTO", "LEO", "LEO_smallsat"}, MissionNames())
	})
}

func TestTechPairCatalog(t *testing.T) {
	t.Run("hydrogen booster runs staged combustion", func(t *testing.T) {
		pair, err := TechPairByName("hydrogen_sc")
		require.NoError(t, err)
		assert.Equal(t, "H2", pair.Booster.Fuel)
		assert.Equal(t, 6.0, pair.Booster.OFMassRatio)
		assert.Equal(t, 9, pair.Booster.NumEngines)
		assert.Equal(t, 1, pair.Upper.NumEngines)
	})

	t.Run("exhaust velocity is specific impulse times standard gravity", func(t *testing.T) {
		assert.InDelta(t, 287.9*units.G0, KeroGGBooster.ExhaustVelocity.Mode(), 1e-9)
		assert.InDelta(t, 458.0*units.G0, H2SCUpper.ExhaustVelocity.Mode(), 1e-9)
	})

	t.Run("unknown technology", func(t *testing.T) {
		_, err := TechPairByName("methalox_ffsc")
		assert.ErrorContains(t, err, "unknown technology")
	})
}

func TestNewTechPair(t *testing.T) {
	booster := StageSpec{
		Stage: "booster", Fuel: "kerosene", Oxidizer: "O2", OFMassRatio: 2.3,
		Cycle: "gas generator", NumEngines: 9,
		C: [3]float64{2700, 2850, 3000}, E: [3]float64{0.05, 0.055, 0.06},
	}
	upper := StageSpec{
		Stage: "upper", Fuel: "kerosene", Oxidizer: "O2", OFMassRatio: 2.3,
		Cycle: "gas generator", NumEngines: 1,
		C: [3]float64{3300, 3400, 3450}, E: [3]float64{0.04, 0.05, 0.06},
	}

	t.Run("builds a pairing strategies can fly", func(t *testing.T) {
		pair, err := NewTechPair("kerolox_uprated", booster, upper)
		require.NoError(t, err)
		assert.Equal(t, "c_1", pair.Booster.ExhaustVelocity.Name())
		assert.Equal(t, "E_2", pair.Upper.InertFraction.Name())
		assert.InDelta(t, 2850, pair.Booster.ExhaustVelocity.Mode(), 1e-9)

		mission, err := MissionByName("LEO")
		require.NoError(t, err)
		st := NewExpendable(pair, mission)
		res, err := st.Evaluate(st.Uncertainties().Modes())
		require.NoError(t, err)
		assert.Greater(t, res.PiStar, 0.0)
	})

	t.Run("rejects propellants without model data", func(t *testing.T) {
		methalox := booster
		methalox.Fuel = "CH4"
		_, err := NewTechPair("methalox", methalox, upper)
		assert.ErrorContains(t, err, "no booster engine thrust/weight data")
	})

	t.Run("rejects propellants without price data", func(t *testing.T) {
		pricey := upper
		pricey.Oxidizer = "H2O2"
		_, err := NewTechPair("peroxide", booster, pricey)
		assert.ErrorContains(t, err, `no price data for propellant "H2O2"`)
	})

	t.Run("rejects swapped stages", func(t *testing.T) {
		_, err := NewTechPair("swapped", upper, booster)
		assert.ErrorContains(t, err, "needs one booster and one upper stage spec")
	})
}

func TestStrategyCatalog(t *testing.T) {
	pair, mission := keroLEO(t)

	t.Run("names are stable and sorted", func(t *testing.T) {
		assert.Equal(t, []string{
			"expendable",
			"parachute",
			"parachute_partial",
			"propulsive_downrange",
			"propulsive_launch_site",
			"winged_glider",
			"winged_powered_launch_site",
			"winged_powered_launch_site_partial",
		}, Names())
	})

	t.Run("unknown strategy lists the known ones", func(t *testing.T) {
		_, err := New("hoverslam", pair, mission)
		assert.ErrorContains(t, err, "unknown strategy")
		assert.ErrorContains(t, err, "expendable")
	})

	t.Run("all builds every strategy in name order", func(t *testing.T) {
		sts := All(pair, mission)
		require.Len(t, sts, len(Names()))
		for i, name := range Names() {
			assert.Equal(t, name, sts[i].Name)
			assert.Equal(t, "LEO", sts[i].Mission().Name)
		}
	})

	t.Run("metadata describes the recovery scheme", func(t *testing.T) {
		st, err := New("winged_powered_launch_site_partial", pair, mission)
		require.NoError(t, err)
		assert.Equal(t, "winged", st.LandingMethod)
		assert.Equal(t, "air-breathing", st.RecoveryProp)
		assert.Equal(t, "launch site", st.RecoveryLocation)
		assert.Equal(t, "partial", st.PortionRecovered)
	})
}

func TestUncertaintySets(t *testing.T) {
	pair, mission := keroLEO(t)

	cases := []struct {
		name    string
		want    []string
		wantNot []string
	}{
		{
			name: "expendable",
			want: []string{"c_1", "E_1", "c_2", "E_2", "f1_s1", "f1_e1", "prod_a_s1",
				"dev_x_e2", "launch_rate", "insurance", "f0_prod_veh", "num_program_flights"},
			wantNot: []string{"a", "recovery_cost", "num_reuses_s1", "f5_e1", "f_ss", "p_d1"},
		},
		{
			name: "propulsive_launch_site",
			want: []string{"a", "f_ss", "dv_entry", "landing_m_A", "landing_accel",
				"recovery_cost", "num_reuses_s1", "num_reuses_e1", "f5_s1", "f5_e1"},
			wantNot: []string{"I_sp_ab", "p_d1", "num_reuses_ab"},
		},
		{
			name:    "propulsive_downrange",
			want:    []string{"a", "dv_entry", "landing_m_A", "landing_accel", "recovery_cost"},
			wantNot: []string{"f_ss"},
		},
		{
			name:    "winged_powered_launch_site",
			want:    []string{"a", "f_ss", "I_sp_ab", "v_cruise", "lift_drag", "num_reuses_ab", "f5_ab"},
			wantNot: []string{"p_d1", "dv_entry"},
		},
		{
			name: "winged_powered_launch_site_partial",
			want: []string{"p_d1", "prod_a_d1", "dev_a_d1", "num_reuses_ab"},
		},
		{
			name:    "winged_glider",
			want:    []string{"a", "recovery_cost"},
			wantNot: []string{"f_ss", "I_sp_ab", "v_cruise"},
		},
		{
			name:    "parachute",
			want:    []string{"a", "num_reuses_s1"},
			wantNot: []string{"dv_entry", "landing_m_A", "p_d1"},
		},
		{
			name:    "parachute_partial",
			want:    []string{"a", "p_d1", "prod_a_d1"},
			wantNot: []string{"num_reuses_ab", "I_sp_ab"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := New(tc.name, pair, mission)
			require.NoError(t, err)
			set := st.Uncertainties()
			for _, name := range tc.want {
				_, ok := set.Get(name)
				assert.True(t, ok, "expected %s in the set", name)
			}
			for _, name := range tc.wantNot {
				_, ok := set.Get(name)
				assert.False(t, ok, "did not expect %s in the set", name)
			}
		})
	}

	t.Run("recovery cost scales with distance", func(t *testing.T) {
		ls := NewPropulsiveLaunchSite(pair, mission)
		dr := NewPropulsiveDownrange(pair, mission)
		uLS, ok := ls.Uncertainties().Get("recovery_cost")
		require.True(t, ok)
		uDR, ok := dr.Uncertainties().Get("recovery_cost")
		require.True(t, ok)
		assert.InDelta(t, 0.7, uLS.Mode(), 1e-12)
		assert.InDelta(t, 1.5, uDR.Mode(), 1e-12)
	})

	t.Run("performance subset excludes cost parameters", func(t *testing.T) {
		st := NewPropulsiveLaunchSite(pair, mission)
		names := make(map[string]bool)
		for _, u := range st.PerfUncertainties() {
			names[u.Name()] = true
		}
		assert.True(t, names["c_1"])
		assert.True(t, names["a"])
		assert.True(t, names["dv_entry"])
		assert.False(t, names["launch_rate"])
		assert.False(t, names["prod_a_s1"])
	})
}

func TestEnginePodZM(t *testing.T) {
	pair, mission := keroLEO(t)

	t.Run("nine kerosene engines on a nominal structure", func(t *testing.T) {
		st := NewParachutePartial(pair, mission)
		zm, err := st.enginePodZM(0.06)
		require.NoError(t, err)
		assert.InDelta(t, 0.37157, zm, 1e-5)
	})

	t.Run("heavier structures shrink the pod fraction", func(t *testing.T) {
		st := NewParachutePartial(pair, mission)
		light, err := st.enginePodZM(0.06)
		require.NoError(t, err)
		heavy, err := st.enginePodZM(0.12)
		require.NoError(t, err)
		assert.Less(t, heavy, light)
	})
}

func TestMassBreakdown(t *testing.T) {
	pair, mission := keroLEO(t)

	t.Run("accounts for every kilogram of liftoff mass", func(t *testing.T) {
		st := NewExpendable(pair, mission)
		masses, err := st.massBreakdown(0.03, 0, 0.06, 0.05)
		require.NoError(t, err)

		assert.InDelta(t, 333333.3, masses["m0"], 0.5)
		assert.InDelta(t, 11150.2, masses["s1"], 0.5)
		assert.InDelta(t, 557.38, masses["e1"], 0.05)
		assert.InDelta(t, 1660.34, masses["s2"], 0.05)
		assert.InDelta(t, 1034.10, masses["e2"], 0.05)
		assert.InDelta(t, 92264.3, masses["kerosene"], 1)
		assert.InDelta(t, 212207.9, masses["O2"], 1)

		total := masses["s1"] + 9*masses["e1"] + masses["s2"] + masses["e2"] +
			masses["kerosene"] + masses["O2"]
		assert.InEpsilon(t, masses["m0"]-mission.Payload, total, 1e-9)
	})

	t.Run("winged partial splits stage one into pod tank and air breathers", func(t *testing.T) {
		st := NewWingedPoweredLaunchSitePartial(pair, mission)
		masses, err := st.massBreakdown(0.01, 0.574, 0.06, 0.05)
		require.NoError(t, err)

		assert.InDelta(t, 30200, masses["d1"], 10)
		assert.InDelta(t, 3562.8, masses["ab"], 2)
		assert.Greater(t, masses["s1"], 0.0)

		total := masses["s1"] + 9*masses["e1"] + 2*masses["ab"] + masses["d1"] +
			masses["s2"] + masses["e2"] + masses["kerosene"] + masses["O2"]
		assert.InEpsilon(t, masses["m0"]-mission.Payload, total, 1e-9)
	})

	t.Run("rejects a payload fraction the stages cannot carry", func(t *testing.T) {
		st := NewExpendable(pair, mission)
		_, err := st.massBreakdown(0.9, 0, 0.06, 0.05)
		assert.ErrorContains(t, err, "non-positive mass")
	})
}

func TestArchitectureEvaluateCost(t *testing.T) {
	pair, mission := keroLEO(t)
	arch := NewExpendable(pair, mission).arch
	masses := map[string]float64{
		"m0": 1e6, "s1": 5, "e1": 7, "s2": 2, "e2": 3,
		"kerosene": 10000, "O2": 20000,
	}

	t.Run("nominal factors reduce production to mass sums", func(t *testing.T) {
		bd, err := arch.EvaluateCost(uncertainty.Scenario{"launch_rate": 15}, masses)
		require.NoError(t, err)

		// Unit CERs make each element's unit cost equal its mass, so the
		// vehicle costs s2 + e2 + s1 + 9*e1 per flight.
		assert.InDelta(t, 73, bd.ProdCostPerFlight, 1e-9)
		assert.InDelta(t, 68, bd.Stage1ProdPerFlight, 1e-9)
		assert.InDelta(t, 5, bd.Stage2ProdPerFlight, 1e-9)
		assert.InDelta(t, 0, bd.CheckoutPerFlight, 1e-9)
		assert.InDelta(t, 17, bd.DevCost, 1e-9)
		assert.InDelta(t, 0.1273738, bd.PropsCostPerFlight, 1e-7)
		assert.Zero(t, bd.RefurbCostPerFlight)
		assert.InDelta(t, 78.97, bd.OpsCostPerFlight, 0.02)
		assert.InDelta(t, bd.ProdCostPerFlight+bd.OpsCostPerFlight, bd.CostPerFlight, 1e-9)
		assert.InDelta(t, bd.CostPerFlight, bd.PricePerFlight, 1e-9)
	})

	t.Run("reuse amortizes stage production and adds refurbishment", func(t *testing.T) {
		sc := uncertainty.Scenario{"launch_rate": 15, "num_reuses_s1": 10, "f5_s1": 0.01}
		bd, err := arch.EvaluateCost(sc, masses)
		require.NoError(t, err)

		assert.InDelta(t, 68.5, bd.ProdCostPerFlight, 1e-9)
		assert.InDelta(t, 0.05, bd.RefurbCostPerFlight, 1e-12)
	})

	t.Run("requires a launch rate", func(t *testing.T) {
		_, err := arch.EvaluateCost(uncertainty.Scenario{}, masses)
		assert.ErrorContains(t, err, "launch_rate")
	})

	t.Run("reports which element mass is missing", func(t *testing.T) {
		short := map[string]float64{"m0": 1e6, "s1": 5, "e1": 7, "s2": 2}
		_, err := arch.EvaluateCost(uncertainty.Scenario{"launch_rate": 15}, short)
		assert.ErrorContains(t, err, "missing element")
	})
}

func TestStrategyModeScenarios(t *testing.T) {
	pair, mission := keroLEO(t)

	for _, st := range All(pair, mission) {
		st := st
		t.Run(st.Name, func(t *testing.T) {
			sc := st.Uncertainties().Modes()
			res, err := st.Evaluate(sc)
			require.NoError(t, err)

			assert.Greater(t, res.PiStar, 0.0)
			assert.Less(t, res.PiStar, 0.06)
			assert.GreaterOrEqual(t, res.E1, 0.06)

			assert.Greater(t, res.ProdCostPerFlight, 0.0)
			assert.Greater(t, res.OpsCostPerFlight, 0.0)
			assert.Greater(t, res.PropsCostPerFlight, 0.0)
			assert.Greater(t, res.DevCost, 0.0)
			assert.InDelta(t, res.ProdCostPerFlight+res.OpsCostPerFlight, res.CostPerFlight, 1e-9)
			assert.InDelta(t, res.CostPerFlight, res.PricePerFlight, 1e-9)

			// Vehicle integration and checkout is exactly the vehicle-level
			// markup over the stage portions.
			markup := math.Pow(1.025, st.arch.stages)*1.02 - 1
			assert.InEpsilon(t, markup*(res.Stage1ProdPerFlight+res.Stage2ProdPerFlight),
				res.CheckoutPerFlight, 1e-9)

			if st.Name == "expendable" {
				assert.InDelta(t, 0.06, res.E1, 1e-12)
				assert.Zero(t, res.RefurbCostPerFlight)
			} else {
				assert.Greater(t, res.E1, 0.06)
				assert.Greater(t, res.RefurbCostPerFlight, 0.0)
			}
		})
	}
}

func TestStrategyModeOrdering(t *testing.T) {
	pair, mission := keroLEO(t)

	evaluate := func(t *testing.T, name string) Result {
		t.Helper()
		st, err := New(name, pair, mission)
		require.NoError(t, err)
		res, err := st.Evaluate(st.Uncertainties().Modes())
		require.NoError(t, err)
		return res
	}

	t.Run("expendable delivers the largest payload fraction", func(t *testing.T) {
		exp := evaluate(t, "expendable")
		for _, name := range Names() {
			if name == "expendable" {
				continue
			}
			assert.Greater(t, exp.PiStar, evaluate(t, name).PiStar, name)
		}
	})

	t.Run("boostback costs more payload than a downrange landing", func(t *testing.T) {
		dr := evaluate(t, "propulsive_downrange")
		ls := evaluate(t, "propulsive_launch_site")
		assert.Greater(t, dr.PiStar, ls.PiStar)
	})

	t.Run("propulsive downrange recovery flies cheaper than expending", func(t *testing.T) {
		exp := evaluate(t, "expendable")
		dr := evaluate(t, "propulsive_downrange")
		assert.Greater(t, exp.CostPerFlight, dr.CostPerFlight)
		assert.Greater(t, exp.ProdCostPerFlight, dr.ProdCostPerFlight)
	})
}

func TestStrategyMonteCarlo(t *testing.T) {
	pair, mission := keroLEO(t)
	st := NewExpendable(pair, mission)

	rng := rand.New(rand.NewSource(7))
	scenarios := st.Uncertainties().LatinHypercube(64, rng)
	table, err := mc.NewEngine(4).Run(context.Background(), st.Model(), ResponseNames(), scenarios)
	require.NoError(t, err)

	assert.Zero(t, table.FailureCount())

	median, err := table.Quantile("cost_per_flight", 0.5)
	require.NoError(t, err)
	assert.Greater(t, median, 0.0)

	lo, err := table.Quantile("pi_star", 0.05)
	require.NoError(t, err)
	hi, err := table.Quantile("pi_star", 0.95)
	require.NoError(t, err)
	assert.Greater(t, lo, 0.01)
	assert.Less(t, hi, 0.06)
}
