package vehicles

import (
	"fmt"
	"strings"

	"github.com/lvreuse/boostback/internal/cost"
	"github.com/lvreuse/boostback/internal/uncertainty"
)

// AtlasV401 models the Atlas V 401. The first stage engine is the
// Russian-built RD-180, hence its productivity correction.
func AtlasV401() *Dataset {
	d := &Dataset{
		Name:   "atlas_v_401",
		Label:  "Atlas V 401",
		M0:     334.5,
		Stages: 2,
		Elements: []Element{
			// CCB with booster and interstage adapters, less engine.
			{Tag: "s1", Class: cost.ExpendableBallisticStageStorable, Mass: 20743 + 420 + 375 - 5480, Count: 1, F8: 1.0},
			// RD-180.
			{Tag: "e1", Class: cost.StorableTurboFed, Mass: 5480, Count: 1, F8: 1.49},
			// Centaur with short fairing, less engine.
			{Tag: "s2", Class: cost.ExpendableBallisticStageLH2, Mass: 1914 + 2085 - 168, Count: 1, F8: 1.0},
			// RL-10A.
			{Tag: "e2", Class: cost.CryoLH2TurboFed, Mass: 168, Count: 1, F8: 1.0},
		},
		VehicleF8:  1.0,
		OpsF8:      1.0,
		FV:         0.9,
		FC:         0.85,
		SumQN:      0.8,
		Provider:   "B",
		Stage1Tags: []string{"s1", "e1"},
		Stage2Tags: []string{"s2", "e2"},
		ProdRun:    cost.NewUnitRange(68, 78),
		LaunchRun:  cost.NewUnitRange(68, 78),
		// Oxidizer and hydrogen loads carry a boil-off margin.
		PropsCost: mustPropsCost(map[string]float64{
			"kerosene": 76370,
			"O2":       (207729 + 17625) * 1.6,
			"H2":       3204 * 1.85,
		}),
		ReferencePrice: 314,
	}
	d.set = assembleSet(d.Elements,
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("p_s1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_e1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_s2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_e2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f0_prod_veh", 1.02, 1.025, 1.03),
			uncertainty.NewTriangular("f9_veh", 1.05, 1.08, 1.15),
			uncertainty.NewTriangular("f10_s1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f10_e1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f10_s2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f10_e2", 0.75, 0.8, 0.85),
		},
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("launch_rate", 5, 7, 9),
			uncertainty.NewTriangular("p_ops", 0.8, 0.85, 0.9),
			uncertainty.NewTriangular("insurance", 1, 2, 3),
		},
		[]uncertainty.Uncertainty{
			// Stage 1 was modified from the Atlas III core.
			uncertainty.NewTriangular("f1_s1", 0.6, 0.7, 0.8),
			// RD-180 flew on Atlas III before.
			uncertainty.NewTriangular("f1_e1", 0.0, 0.0, 0.01),
			// Centaur elongation of the Atlas II stage.
			uncertainty.NewTriangular("f1_s2", 0.6, 0.7, 0.8),
			// RL-10 variant.
			uncertainty.NewTriangular("f1_e2", 0.3, 0.4, 0.5),
			uncertainty.NewTriangular("f2_s1", 0.9, 1.0, 1.1),
			// Qualified over 238 firings.
			uncertainty.NewTriangular("f2_e1", 0.72, 0.78, 0.84),
			uncertainty.NewTriangular("f2_s2", 0.9, 1.0, 1.1),
			// Qualified over 1600 firings.
			uncertainty.NewTriangular("f2_e2", 1.35, 1.42, 1.46),
			uncertainty.NewTriangular("f3_s1", 0.7, 0.8, 0.9),
			uncertainty.NewTriangular("f3_e1", 0.7, 0.8, 0.9),
			uncertainty.NewTriangular("f3_s2", 0.7, 0.8, 0.9),
			uncertainty.NewTriangular("f3_e2", 0.7, 0.8, 0.9),
			uncertainty.NewTriangular("f0_dev_veh", 1.03*1.03, 1.04*1.04, 1.05*1.05),
			uncertainty.NewTriangular("num_program_flights", 100, 120, 140),
			uncertainty.NewTriangular("profit_multiplier", 1.05, 1.07, 1.09),
		})
	return d
}

// Falcon9Block3 models the expendable Falcon 9 Block 3.
func Falcon9Block3() *Dataset {
	d := &Dataset{
		Name:   "falcon9_block3",
		Label:  "Falcon 9 Block 3",
		M0:     459.054,
		Stages: 2,
		Elements: []Element{
			// Stage less its nine engines.
			{Tag: "s1", Class: cost.ExpendableBallisticStageStorable, Mass: 27200 - 9*470, Count: 1, F8: 1.0},
			// Merlin 1D.
			{Tag: "e1", Class: cost.ModernTurboFed, Mass: 470, Count: 9, F8: 1.0},
			// Stage with fairing, less engine.
			{Tag: "s2", Class: cost.ExpendableBallisticStageStorable, Mass: 4500 + 1900 - 470, Count: 1, F8: 1.0},
			{Tag: "e2", Class: cost.ModernTurboFed, Mass: 470, Count: 1, F8: 1.0},
		},
		VehicleF8:  1.0,
		OpsF8:      1.0,
		FV:         0.8,
		FC:         0.7,
		SumQN:      0.8,
		Provider:   "C",
		Stage1Tags: []string{"s1", "e1"},
		Stage2Tags: []string{"s2", "e2"},
		ProdRun:    cost.NewUnitRange(35, 45),
		LaunchRun:  cost.NewUnitRange(50, 60),
		PropsCost: mustPropsCost(map[string]float64{
			"kerosene": 90234,
			"O2":       197904 * 1.6,
		}),
		ReferencePrice: 177,
	}
	d.set = assembleSet(d.Elements,
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("p_s1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_e1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_s2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_e2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f0_prod_veh", 1.02, 1.025, 1.03),
			uncertainty.NewTriangular("f9_veh", 1.01, 1.02, 1.03),
			uncertainty.NewTriangular("f11_s1", 0.45, 0.5, 0.55),
			uncertainty.NewTriangular("f11_e1", 0.45, 0.5, 0.55),
			uncertainty.NewTriangular("f11_s2", 0.45, 0.5, 0.55),
			uncertainty.NewTriangular("f11_e2", 0.45, 0.5, 0.55),
			uncertainty.NewTriangular("f10_s1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f10_e1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f10_s2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f10_e2", 0.75, 0.8, 0.85),
		},
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("launch_rate", 10, 18, 25),
			uncertainty.NewTriangular("p_ops", 0.8, 0.85, 0.9),
			uncertainty.NewTriangular("insurance", 1, 2, 3),
			uncertainty.NewTriangular("f11_ops", 0.45, 0.5, 0.55),
		},
		[]uncertainty.Uncertainty{
			// Design modification from Falcon 1.
			uncertainty.NewTriangular("f1_s1", 0.6, 0.7, 0.8),
			// Merlin 1C variant.
			uncertainty.NewTriangular("f1_e1", 0.0, 0.0, 0.001),
			uncertainty.NewTriangular("f1_s2", 0.6, 0.7, 0.8),
			uncertainty.NewTriangular("f1_e2", 0.0, 0.0, 0.001),
			uncertainty.NewTriangular("f2_s1", 0.9, 1.0, 1.1),
			uncertainty.NewTriangular("f2_s2", 0.9, 1.0, 1.1),
			uncertainty.NewTriangular("f3_s1", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f3_e1", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f3_s2", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f3_e2", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f0_dev_veh", 1.03*1.03, 1.04*1.04, 1.05*1.05),
			uncertainty.NewTriangular("num_program_flights", 100, 120, 150),
		})
	return d
}

// DeltaIVMedium models the Delta IV Medium (4,0) with no solid boosters.
func DeltaIVMedium() *Dataset {
	d := &Dataset{
		Name:   "delta_iv_medium",
		Label:  "Delta IV Medium (4,0)",
		M0:     257,
		Stages: 2,
		Elements: []Element{
			// CBC with interstage, less engine.
			{Tag: "s1", Class: cost.ExpendableBallisticStageLH2, Mass: 26760 - 6600, Count: 1, F8: 1.0},
			// RS-68.
			{Tag: "e1", Class: cost.ModernTurboFed, Mass: 6600, Count: 1, F8: 1.0},
			// DCSS with fairing, less engine.
			{Tag: "s2", Class: cost.ExpendableBallisticStageLH2, Mass: 2850 + 1677 - 277, Count: 1, F8: 1.0},
			// RL-10B-2.
			{Tag: "e2", Class: cost.CryoLH2TurboFed, Mass: 277, Count: 1, F8: 1.0},
		},
		VehicleF8:  1.0,
		OpsF8:      1.0,
		FV:         1.0,
		FC:         0.85,
		SumQN:      0.8,
		Provider:   "B",
		Stage1Tags: []string{"s1", "e1"},
		Stage2Tags: []string{"s2", "e2"},
		ProdRun:    cost.NewUnitRange(27, 37),
		LaunchRun:  cost.NewUnitRange(27, 37),
		PropsCost: mustPropsCost(map[string]float64{
			"O2": (171086 + 17261) * 1.6,
			"H2": (28514 + 3138) * 1.85,
		}),
		ReferencePrice: 553,
	}
	d.set = assembleSet(d.Elements,
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("p_s1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_e1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_s2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_e2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f0_prod_veh", 1.02, 1.025, 1.03),
			uncertainty.NewTriangular("f9_veh", 1.05, 1.08, 1.15),
			uncertainty.NewTriangular("f10_s1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f10_e1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f10_s2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("f10_e2", 0.75, 0.8, 0.85),
		},
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("launch_rate", 3, 4, 5),
			uncertainty.NewTriangular("p_ops", 0.8, 0.85, 0.9),
			uncertainty.NewTriangular("insurance", 1, 2, 3),
		},
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("f2_s1", 0.9, 1.0, 1.1),
			uncertainty.NewTriangular("f2_s2", 0.9, 1.0, 1.1),
			uncertainty.NewTriangular("f3_s1", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f3_e1", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f3_s2", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f3_e2", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f0_dev_veh", 1.03*1.03, 1.04*1.04, 1.05*1.05),
			uncertainty.NewTriangular("num_program_flights", 100, 120, 150),
			uncertainty.NewTriangular("profit_multiplier", 1.05, 1.07, 1.09),
		})
	return d
}

// Ariane5G models the Ariane 5G with two solid boosters. European production
// and operations carry the 0.86 productivity correction; the Aestus engine
// 0.77.
func Ariane5G() *Dataset {
	d := &Dataset{
		Name:   "ariane5_g",
		Label:  "Ariane 5G",
		M0:     746,
		Stages: 4,
		Elements: []Element{
			// P230 boosters.
			{Tag: "b1", Class: cost.SolidPropellantBooster, Mass: 39800, Count: 2, F8: 0.86},
			// H158 core, less engine.
			{Tag: "s1", Class: cost.ExpendableBallisticStageLH2, Mass: 12200 - 1300, Count: 1, F8: 0.86},
			// Vulcain 1.
			{Tag: "e1", Class: cost.CryoLH2TurboFed, Mass: 1300, Count: 1, F8: 0.86},
			// EPS L9 with VEB, short fairing and SPELTRA, less engine.
			{Tag: "s2", Class: cost.ExpendableBallisticStageStorable, Mass: 1200 + 1500 + 2025 + 716 - 111, Count: 1, F8: 0.86},
			// Aestus.
			{Tag: "e2", Class: cost.StorablePressureFed, Mass: 111, Count: 1, F8: 0.77},
		},
		VehicleF8:  0.86,
		OpsF8:      0.86,
		FV:         0.6,
		FC:         0.85,
		SumQN:      1.6,
		Provider:   "A",
		Stage1Tags: []string{"s1", "e1", "b1"},
		Stage2Tags: []string{"s2", "e2"},
		ProdRun:    cost.NewUnitRange(89, 99),
		LaunchRun:  cost.NewUnitRange(89, 99),
		PropsCost: mustPropsCost(map[string]float64{
			"H2":   22777 * 1.85,
			"O2":   141222 * 1.6,
			"MMH":  3180,
			"N2O4": 6520,
		}),
		ReferencePrice: 485,
	}
	d.set = assembleSet(d.Elements,
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("p_s1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_e1", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_s2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_e2", 0.75, 0.8, 0.85),
			uncertainty.NewTriangular("p_b1", 0.8, 0.85, 0.9),
			uncertainty.NewTriangular("f0_prod_veh", 1.02, 1.025, 1.03),
			uncertainty.NewTriangular("f9_veh", 1.05, 1.08, 1.15),
		},
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("launch_rate", 5, 6, 7),
			uncertainty.NewTriangular("p_ops", 0.8, 0.85, 0.9),
			uncertainty.NewTriangular("insurance", 1, 2, 3),
		},
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("f1_s1", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f1_e1", 1.0, 1.1, 1.2),
			uncertainty.NewTriangular("f1_s2", 0.8, 0.9, 1.0),
			uncertainty.NewTriangular("f1_e2", 0.7, 0.8, 0.9),
			uncertainty.NewTriangular("f2_s1", 1.06, 1.16, 1.26),
			uncertainty.NewTriangular("f2_e1", 0.72, 0.79, 0.84),
			uncertainty.NewTriangular("f2_s2", 0.99, 1.09, 1.19),
			uncertainty.NewTriangular("f3_s1", 0.75, 0.85, 0.95),
			uncertainty.NewTriangular("f3_e1", 0.8, 0.9, 1.0),
			uncertainty.NewTriangular("f3_s2", 0.8, 0.9, 1.0),
			uncertainty.NewTriangular("f3_e2", 0.7, 0.8, 0.9),
			// Boosters, core and upper stage were all new developments.
			uncertainty.NewTriangular("f0_dev_veh", 1.03*1.03*1.03, 1.04*1.04*1.04, 1.05*1.05*1.05),
			uncertainty.NewTriangular("num_program_flights", 100, 120, 140),
			uncertainty.NewTriangular("profit_multiplier", 1.05, 1.07, 1.09),
		})
	return d
}

// Ariane5ECA is a deterministic Ariane 5 ECA point model: published factor
// estimates instead of distributions, costed over one production batch of
// 60 vehicles.
func Ariane5ECA() *Dataset {
	d := &Dataset{
		Name:   "ariane5_eca",
		Label:  "Ariane 5 ECA",
		M0:     791,
		Stages: 4,
		Elements: []Element{
			{Tag: "p240", Class: cost.SolidPropellantBooster, Mass: 40300, Count: 2, F8: 0.86},
			{Tag: "h173", Class: cost.ExpendableBallisticStageLH2, Mass: 16000 - 1800, Count: 1, F8: 0.86},
			{Tag: "vulcain2", Class: cost.CryoLH2TurboFed, Mass: 1800, Count: 1, F8: 0.86},
			// ESC-A with VEB, short fairing and SPELTRA, less engine.
			{Tag: "esc_a", Class: cost.ExpendableBallisticStageStorable, Mass: 3418 + 950 + 2025 + 716 - 165, Count: 1, F8: 0.86},
			{Tag: "hm7b", Class: cost.CryoLH2TurboFed, Mass: 165, Count: 1, F8: 0.77},
		},
		VehicleF8:  0.86,
		OpsF8:      0.86,
		FV:         0.6,
		FC:         0.85,
		SumQN:      1.6,
		Provider:   "A",
		Stage1Tags: []string{"p240", "h173", "vulcain2"},
		Stage2Tags: []string{"esc_a", "hm7b"},
		ProdRun:    cost.NewUnitRange(60, 60),
		LaunchRun:  cost.NewUnitRange(60, 60),
		Insurance:  1.5,
	}
	// The published point model prices N2O4 an order of magnitude above the
	// propellant catalog.
	const costN2O4 = 3.3951e-4 // WYr/kg
	d.PropsCost = mustPropsCost(map[string]float64{
		"H2":  22777 * 1.85,
		"O2":  141222 * 1.6,
		"MMH": 3180,
	}) + 6520*costN2O4
	d.fixed = &fixedFactors{
		params: cost.ParamsMap{
			"p240":     {CER: cost.SolidPropellantBooster.CER, Factors: cost.ElementCostFactors{F1: 1.1, F2: 1.0, F3: 0.9, F8: 0.86, F10: 1.0, F11: 1.0, P: 0.95}, Count: 2},
			"h173":     {CER: cost.ExpendableBallisticStageLH2.CER, Factors: cost.ElementCostFactors{F1: 1.1, F2: 1.16, F3: 0.85, F8: 0.86, F10: 1.0, F11: 1.0, P: 0.9}, Count: 1},
			"vulcain2": {CER: cost.CryoLH2TurboFed.CER, Factors: cost.ElementCostFactors{F1: 1.1, F2: 0.79, F3: 0.9, F8: 0.86, F10: 1.0, F11: 1.0, P: 0.9}, Count: 1},
			"esc_a":    {CER: cost.ExpendableBallisticStageStorable.CER, Factors: cost.ElementCostFactors{F1: 0.9, F2: 1.09, F3: 0.9, F8: 0.86, F10: 1.0, F11: 1.0, P: 0.9}, Count: 1},
			"hm7b":     {CER: cost.CryoLH2TurboFed.CER, Factors: cost.ElementCostFactors{F1: 0.8, F2: 1.0, F3: 0.8, F8: 0.77, F10: 1.0, F11: 1.0, P: 0.9}, Count: 1},
		},
		vehF: cost.VehicleCostFactors{F0Dev: 1.04 * 1.04 * 1.04, F0Prod: 1.02, F6: 1.0, F7: 1.0, F8: 0.86, F9: 1.07},
		opsF: cost.OperationsCostFactors{F8: 0.86, F11: 1.0, FV: 0.6, FC: 0.85, P: 0.85},
	}
	return d
}

// Electron models Rocket Lab's Electron smallsat launcher at the start of
// its production run. The source tables stop at the production factors, so
// operations assumptions mirror Falcon 9 and no propellant bill is carried.
func Electron() *Dataset {
	d := &Dataset{
		Name:   "electron",
		Label:  "Electron",
		M0:     13.0,
		Stages: 2,
		Elements: []Element{
			// Stage less its nine engines.
			{Tag: "s1", Class: cost.ExpendableBallisticStageStorable, Mass: 950 - 9*35, Count: 1, F8: 1.0},
			// Rutherford.
			{Tag: "e1", Class: cost.ModernTurboFed, Mass: 35, Count: 9, F8: 1.0},
			// Stage with fairing, less engine.
			{Tag: "s2", Class: cost.ExpendableBallisticStageStorable, Mass: 250 + 44 - 35, Count: 1, F8: 1.0},
			{Tag: "e2", Class: cost.ModernTurboFed, Mass: 35, Count: 1, F8: 1.0},
		},
		VehicleF8:  1.0,
		OpsF8:      1.0,
		FV:         0.8,
		FC:         0.7,
		SumQN:      0.8,
		Provider:   "C",
		Stage1Tags: []string{"s1", "e1"},
		Stage2Tags: []string{"s2", "e2"},
		ProdRun:    cost.NewUnitRange(1, 3),
		LaunchRun:  cost.NewUnitRange(1, 3),
	}
	d.set = assembleSet(d.Elements,
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("p_s1", 0.85, 0.9, 0.95),
			uncertainty.NewTriangular("p_e1", 0.85, 0.9, 0.95),
			uncertainty.NewTriangular("p_s2", 0.85, 0.9, 0.95),
			uncertainty.NewTriangular("p_e2", 0.85, 0.9, 0.95),
			uncertainty.NewTriangular("f0_prod_veh", 1.02, 1.025, 1.03),
			uncertainty.NewTriangular("f9_veh", 1.01, 1.02, 1.03),
			uncertainty.NewTriangular("f11_s1", 0.45, 0.5, 0.55),
			uncertainty.NewTriangular("f11_e1", 0.45, 0.5, 0.55),
			uncertainty.NewTriangular("f11_s2", 0.45, 0.5, 0.55),
			uncertainty.NewTriangular("f11_e2", 0.45, 0.5, 0.55),
		},
		nil, nil)
	return d
}

// All returns every reference vehicle dataset.
func All() []*Dataset {
	return []*Dataset{
		AtlasV401(),
		Falcon9Block3(),
		DeltaIVMedium(),
		Ariane5G(),
		Ariane5ECA(),
		Electron(),
	}
}

// Names lists the dataset names in catalog order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}

// ByName returns the named dataset.
func ByName(name string) (*Dataset, error) {
	for _, d := range All() {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown vehicle %q (known: %s)", name, strings.Join(Names(), ", "))
}

func mustPropsCost(masses map[string]float64) float64 {
	c, err := cost.PropellantsCost(masses)
	if err != nil {
		panic(err)
	}
	return c
}

// assembleSet builds a dataset's uncertainty set in a stable order:
// production factors, operations factors, development factors, then every
// element's production and development CER coefficients.
func assembleSet(elements []Element, prod, ops, dev []uncertainty.Uncertainty) *uncertainty.Set {
	set := uncertainty.NewSet()
	for _, u := range prod {
		set.Add(u)
	}
	for _, u := range ops {
		set.Add(u)
	}
	for _, u := range dev {
		set.Add(u)
	}
	for _, el := range elements {
		for _, u := range el.Class.ProdDists(el.Tag) {
			set.Add(u)
		}
	}
	for _, el := range elements {
		for _, u := range el.Class.DevDists(el.Tag) {
			set.Add(u)
		}
	}
	return set
}
