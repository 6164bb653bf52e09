package strategy

import (
	"fmt"

	"github.com/lvreuse/boostback/internal/cost"
	"github.com/lvreuse/boostback/internal/uncertainty"
	"github.com/lvreuse/boostback/internal/units"
)

// Assembly and integration cost factor, assuming horizontal assembly and
// checkout, transport to pad, erection.
const assemblyFC = 0.7

// Launch provider type C: the launch service provider and the vehicle
// manufacturer are the same company, with only a small portion of the work
// subcontracted.
const launchProviderType = "C"

// archElement pairs an element tag with its cost class and the number of
// identical units per vehicle.
type archElement struct {
	tag   string
	class *cost.Class
	count int
}

// Architecture is the costed configuration of a launch vehicle: the element
// classes it is built from and the vehicle-level cost parameters that do not
// vary across scenarios.
type Architecture struct {
	elements []archElement // order: s2, e2, s1, (d1), e1, (ab)
	stages   float64       // stage count N for system management factors

	f8       float64 // country productivity correction, US baseline
	fv       float64 // launch vehicle type factor
	sumQN    float64 // sum of stage type factors Q over the vehicle
	provider string

	propellants []string // propellant mass keys priced per flight

	prodRun   cost.UnitRange // vehicle serial numbers in production
	launchRun cost.UnitRange // flight numbers averaged for ops costs

	hasD1 bool // expendable tank disposed each flight (partial reuse)
	hasAB bool // air-breathing recovery engines on stage 1
}

func stage1Class(stageType, fuel, portion string) *cost.Class {
	if stageType == "winged" {
		return cost.VTOStageFlybackVehicle
	}
	switch portion {
	case "none":
		if fuel == "H2" {
			return cost.ExpendableBallisticStageLH2
		}
		return cost.ExpendableBallisticStageStorable
	case "full", "partial":
		if fuel == "H2" {
			return cost.ReusableBallisticStageLH2
		}
		return cost.ReusableBallisticStageStorable
	}
	panic(fmt.Sprintf("no stage class for %s/%s/%s", stageType, fuel, portion))
}

func engineClass(fuel string) *cost.Class {
	if fuel == "H2" {
		return cost.CryoLH2TurboFed
	}
	return cost.StorableTurboFed
}

// newArchitecture builds the cost configuration for a first stage of the
// given type and reuse portion, flying the given technologies. The second
// stage is always costed as an expendable storable-propellant stage. numAB
// is ignored unless abRec is set.
func newArchitecture(tech1, tech2 Technology, stageType, portion string, abRec bool, numAB int, sumQN float64) *Architecture {
	a := &Architecture{
		stages:    2,
		f8:        1.0,
		fv:        0.8,
		sumQN:     sumQN,
		provider:  launchProviderType,
		prodRun:   cost.NewUnitRange(20, 59),
		launchRun: cost.NewUnitRange(20, 59),
		hasD1:     portion == "partial",
		hasAB:     abRec,
	}
	if a.hasD1 {
		a.stages = 3
	}
	if tech1.Fuel == "H2" {
		a.fv = 1.0
	}

	a.elements = []archElement{
		{tag: "s2", class: cost.ExpendableBallisticStageStorable, count: 1},
		{tag: "e2", class: cost.StorableTurboFed, count: tech2.NumEngines},
		{tag: "s1", class: stage1Class(stageType, tech1.Fuel, portion), count: 1},
	}
	if a.hasD1 {
		a.elements = append(a.elements, archElement{tag: "d1", class: cost.ExpendableTank, count: 1})
	}
	a.elements = append(a.elements, archElement{tag: "e1", class: engineClass(tech1.Fuel), count: tech1.NumEngines})
	if a.hasAB {
		a.elements = append(a.elements, archElement{tag: "ab", class: cost.TurboJetEngine, count: numAB})
	}

	for _, name := range []string{tech1.Fuel, tech1.Oxidizer, tech2.Fuel, tech2.Oxidizer} {
		seen := false
		for _, have := range a.propellants {
			if have == name {
				seen = true
				break
			}
		}
		if !seen {
			a.propellants = append(a.propellants, name)
		}
	}
	return a
}

func (a *Architecture) count(tag string) int {
	for _, el := range a.elements {
		if el.tag == tag {
			return el.count
		}
	}
	return 0
}

// stage1Tags returns the element tags charged to the first stage: its
// structure and engines, plus the disposed tank and air-breathers when the
// architecture carries them.
func (a *Architecture) stage1Tags() []string {
	tags := []string{"s1", "e1"}
	if a.hasD1 {
		tags = append(tags, "d1")
	}
	if a.hasAB {
		tags = append(tags, "ab")
	}
	return tags
}

// costUncertainties returns the cost model's sampled parameters: production
// factors, operations factors, development factors with the given first
// stage development standards, then the production and development CER
// coefficients of every element. Order is stable so that seeded sampling
// reproduces.
func (a *Architecture) costUncertainties(devStage1 []uncertainty.Uncertainty) []uncertainty.Uncertainty {
	var out []uncertainty.Uncertainty
	out = append(out, prodCostUncerts()...)
	if a.hasD1 {
		out = append(out, learningD1Uncert)
	}
	out = append(out, opsCostUncerts()...)
	out = append(out, devCostUncerts()...)
	out = append(out, devStage1...)
	for _, el := range a.elements {
		out = append(out, el.class.ProdDists(el.tag)...)
	}
	for _, el := range a.elements {
		out = append(out, el.class.DevDists(el.tag)...)
	}
	return out
}

// vehicle assembles the costed launch vehicle for one scenario's mass
// breakdown. Masses are in kg; the cost model takes M0 in Mg. A winged first
// stage is costed at its operating weight empty, engines included, because
// the flyback vehicle CERs are regressed against complete vehicles.
func (a *Architecture) vehicle(masses map[string]float64) (*cost.LaunchVehicle, error) {
	m0, ok := masses["m0"]
	if !ok {
		return nil, fmt.Errorf("mass breakdown missing %q", "m0")
	}
	elements := make([]*cost.Element, 0, len(a.elements))
	for _, el := range a.elements {
		m, ok := masses[el.tag]
		if !ok {
			return nil, fmt.Errorf("mass breakdown missing element %q", el.tag)
		}
		if el.tag == "s1" && el.class == cost.VTOStageFlybackVehicle {
			m += float64(a.count("e1")) * masses["e1"]
			if a.hasAB {
				m += float64(a.count("ab")) * masses["ab"]
			}
		}
		elements = append(elements, &cost.Element{Tag: el.tag, Class: el.class, Mass: m})
	}
	return &cost.LaunchVehicle{
		Name:     "veh",
		M0:       m0 / units.KgPerMg,
		N:        a.stages,
		Elements: elements,
	}, nil
}

// EvaluateCost runs the cost model for one scenario over the given element
// mass breakdown. Factors the scenario does not carry keep their nominal
// defaults: correction factors 1, refurbishment factors 0, one use per
// element. The scenario must carry a positive launch_rate.
func (a *Architecture) EvaluateCost(sc uncertainty.Scenario, masses map[string]float64) (cost.Breakdown, error) {
	launchRate := sc.Value("launch_rate", 0)
	if launchRate <= 0 {
		return cost.Breakdown{}, fmt.Errorf("scenario needs a positive launch_rate, got %g", launchRate)
	}

	veh, err := a.vehicle(masses)
	if err != nil {
		return cost.Breakdown{}, err
	}

	params := make(cost.ParamsMap, len(a.elements))
	for _, el := range a.elements {
		params[el.tag] = cost.ParamsFromScenario(sc, el.tag, a.f8, el.count)
	}
	vehF := cost.VehicleCostFactors{
		F0Dev:  sc.Value("f0_dev_veh", 1),
		F0Prod: sc.Value("f0_prod_veh", 1),
		F6:     sc.Value("f6_veh", 1),
		F7:     sc.Value("f7_veh", 1),
		F8:     a.f8,
		F9:     sc.Value("f9_veh", 1),
	}

	reuses := map[string]float64{
		"s1": sc.Value("num_reuses_s1", 1),
		"e1": sc.Value("num_reuses_e1", 1),
	}
	f5 := map[string]float64{
		"s1": sc.Value("f5_s1", 0),
		"e1": sc.Value("f5_e1", 0),
	}
	if a.hasAB {
		reuses["ab"] = sc.Value("num_reuses_ab", 1)
		f5["ab"] = sc.Value("f5_ab", 0)
	}

	prodPF := veh.ProdCostPerFlight(reuses, params, vehF, a.prodRun)
	stage1 := veh.PortionProdCostPerFlight(reuses, params, a.prodRun, a.stage1Tags())
	stage2 := veh.PortionProdCostPerFlight(reuses, params, a.prodRun, []string{"s2", "e2"})
	checkout := prodPF - stage1 - stage2

	opsF := cost.OperationsCostFactors{
		F5:  f5,
		F8:  a.f8,
		F11: sc.Value("f11_ops", 1),
		FV:  a.fv,
		FC:  assemblyFC,
		P:   sc.Value("p_ops", 1),
	}

	groundOps := veh.PreflightGroundOpsCost(launchRate, opsF, a.launchRun)
	missionOps := veh.FlightMissionOpsCost(a.sumQN, launchRate, opsF, a.launchRun, 0, 0)

	propMasses := make(map[string]float64, len(a.propellants))
	for _, name := range a.propellants {
		m, ok := masses[name]
		if !ok {
			return cost.Breakdown{}, fmt.Errorf("mass breakdown missing propellant %q", name)
		}
		propMasses[name] = m
	}
	propsCost, err := cost.PropellantsCost(propMasses)
	if err != nil {
		return cost.Breakdown{}, err
	}

	indirectOps, err := cost.IndirectOpsCost(launchRate, a.provider)
	if err != nil {
		return cost.Breakdown{}, err
	}
	refurb := veh.RefurbishmentCost(opsF, params, reuses)

	directOps := groundOps + missionOps + propsCost +
		sc.Value("fees", 0) + sc.Value("insurance", 0) + sc.Value("recovery_cost", 0)
	opsPF := directOps + indirectOps + refurb
	cpf := prodPF + opsPF

	dev := veh.DevelopmentCost(vehF, params)
	devPF := dev * sc.Value("frac_dev_paid", 0) / sc.Value("num_program_flights", 1)
	price := cpf*sc.Value("profit_multiplier", 1) + devPF

	return cost.Breakdown{
		ProdCostPerFlight:   prodPF,
		OpsCostPerFlight:    opsPF,
		CostPerFlight:       cpf,
		DevCost:             dev,
		PricePerFlight:      price,
		Stage1ProdPerFlight: stage1,
		Stage2ProdPerFlight: stage2,
		CheckoutPerFlight:   checkout,
		PropsCostPerFlight:  propsCost,
		RefurbCostPerFlight: refurb,
	}, nil
}
