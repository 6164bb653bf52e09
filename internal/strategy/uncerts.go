package strategy

import "github.com/lvreuse/boostback/internal/uncertainty"

// Shared performance uncertainties. Each strategy adds the ones its recovery
// scheme needs.
var (
	// Downrange distance at stage separation, model coefficient [s^2/m].
	fssUncert = uncertainty.NewTriangular("f_ss", 0.01, 0.02, 0.03)
	// Entry burn delta-v for propulsive recovery [m/s].
	dvEntryUncert = uncertainty.NewTriangular("dv_entry", 0, 800, 1000)
	// Mass/area ratio for the landing burn [kg/m^2].
	landingMALargeUncert = uncertainty.NewTriangular("landing_m_A", 1500, 2000, 2500)
	// Landing burn acceleration [m/s^2].
	landingAccelUncert = uncertainty.NewTriangular("landing_accel", 20, 30, 40)
	// Air-breathing propulsion effective specific impulse [s].
	ispABUncert = uncertainty.NewTriangular("I_sp_ab", 3200, 3600, 4000)
	// Recovery cruise speed [m/s].
	vCruiseUncert = uncertainty.NewTriangular("v_cruise", 100, 200, 300)
	// Winged recovery vehicle lift/drag ratio.
	liftDragUncert = uncertainty.NewTriangular("lift_drag", 4, 6, 8)
)

// Recovery hardware transport cost per flight [WYr], by recovery location.
var (
	recoveryCostLaunchSite = uncertainty.NewTriangular("recovery_cost", 0.5, 0.7, 1.0)
	recoveryCostDownrange  = uncertainty.NewTriangular("recovery_cost", 1, 1.5, 2)
)

// Learning factor for the disposed stage 1 tank on partial-reuse strategies.
var learningD1Uncert = uncertainty.NewTriangular("p_d1", 0.75, 0.8, 0.85)

func prodCostUncerts() []uncertainty.Uncertainty {
	return []uncertainty.Uncertainty{
		// Learning factors for serial production.
		uncertainty.NewTriangular("p_s1", 0.75, 0.8, 0.85),
		uncertainty.NewTriangular("p_e1", 0.75, 0.8, 0.85),
		uncertainty.NewTriangular("p_s2", 0.75, 0.8, 0.85),
		uncertainty.NewTriangular("p_e2", 0.75, 0.8, 0.85),
		// System management factor for vehicle production.
		uncertainty.NewTriangular("f0_prod_veh", 1.02, 1.025, 1.03),
		// Subcontractor cost factor, assuming only 20% of the project is subcontracted.
		uncertainty.NewTriangular("f9_veh", 1.01, 1.02, 1.03),
		// Cost reduction by past experience, technical progress and cost engineering.
		uncertainty.NewTriangular("f10_s1", 0.75, 0.8, 0.85),
		uncertainty.NewTriangular("f10_e1", 0.75, 0.8, 0.85),
		uncertainty.NewTriangular("f10_s2", 0.75, 0.8, 0.85),
		uncertainty.NewTriangular("f10_e2", 0.75, 0.8, 0.85),
		// Cost reduction by independent development, free of government
		// contract requirements and customer interference.
		uncertainty.NewTriangular("f11_s1", 0.45, 0.5, 0.55),
		uncertainty.NewTriangular("f11_e1", 0.45, 0.5, 0.55),
		uncertainty.NewTriangular("f11_s2", 0.45, 0.5, 0.55),
		uncertainty.NewTriangular("f11_e2", 0.45, 0.5, 0.55),
	}
}

func opsCostUncerts() []uncertainty.Uncertainty {
	return []uncertainty.Uncertainty{
		uncertainty.NewTriangular("launch_rate", 10, 15, 20),
		uncertainty.NewTriangular("p_ops", 0.8, 0.85, 0.9),
		uncertainty.NewTriangular("insurance", 1, 2, 3),
		uncertainty.NewTriangular("f11_ops", 0.45, 0.5, 0.55),
	}
}

func devCostUncerts() []uncertainty.Uncertainty {
	return []uncertainty.Uncertainty{
		// Systems engineering/integration factor for vehicle development.
		uncertainty.NewTriangular("f0_dev_veh", 1.03*1.03, 1.04*1.04, 1.05*1.05),
		uncertainty.NewTriangular("num_program_flights", 100, 120, 150),
		// Development standard factors for the second stage, assumed to be a
		// variant of an existing system.
		uncertainty.NewTriangular("f1_s2", 0.3, 0.4, 0.5),
		uncertainty.NewTriangular("f1_e2", 0.3, 0.4, 0.5),
	}
}

func reuseCostUncerts() []uncertainty.Uncertainty {
	return []uncertainty.Uncertainty{
		// Reusable hardware lifetime, in flights.
		uncertainty.NewTriangular("num_reuses_e1", 5, 10, 25),
		uncertainty.NewTriangular("num_reuses_s1", 5, 10, 25),
		// Refurbishment cost factors.
		uncertainty.NewTriangular("f5_e1", 0.5e-2, 1e-2, 3e-2),
		uncertainty.NewTriangular("f5_s1", 0.008e-2, 1e-2, 2.3e-2),
	}
}

func reuseCostABUncerts() []uncertainty.Uncertainty {
	return []uncertainty.Uncertainty{
		uncertainty.NewTriangular("num_reuses_ab", 100, 700, 1000),
		uncertainty.NewTriangular("f5_ab", 0.001e-2, 0.1e-2, 0.5e-2),
	}
}

// devStage1Uncerts builds the first stage development standard factors. The
// ranges vary by strategy: recovery hardware adds new technical and
// operational features over a state-of-the-art expendable stage.
func devStage1Uncerts(f1S1Min, f1S1Mode, f1S1Max, f1E1Min, f1E1Mode, f1E1Max float64) []uncertainty.Uncertainty {
	return []uncertainty.Uncertainty{
		uncertainty.NewTriangular("f1_s1", f1S1Min, f1S1Mode, f1S1Max),
		uncertainty.NewTriangular("f1_e1", f1E1Min, f1E1Mode, f1E1Max),
	}
}
