// Package strategy models first stage reuse strategies. Each strategy
// couples a recovery scheme's performance penalty to the cost structure of
// the vehicle that flies it, and evaluates Monte Carlo scenarios into
// payload fraction and per-flight cost responses.
package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lvreuse/boostback/internal/mc"
	"github.com/lvreuse/boostback/internal/perf"
	"github.com/lvreuse/boostback/internal/uncertainty"
)

// Result holds the responses of one scenario evaluation. The payload
// fraction and unavailable mass ratio are dimensionless; every cost is in
// WYr.
type Result struct {
	PiStar              float64 // delivered payload mass fraction
	E1                  float64 // stage 1 unavailable mass ratio
	ProdCostPerFlight   float64
	OpsCostPerFlight    float64
	CostPerFlight       float64
	DevCost             float64
	PricePerFlight      float64
	Stage1ProdPerFlight float64
	Stage2ProdPerFlight float64
	CheckoutPerFlight   float64
	PropsCostPerFlight  float64
	RefurbCostPerFlight float64
}

// ResponseNames lists the response columns of Values, in order.
func ResponseNames() []string {
	return []string{
		"pi_star",
		"e_1",
		"prod_cost_per_flight",
		"ops_cost_per_flight",
		"cost_per_flight",
		"dev_cost",
		"price_per_flight",
		"stage1_prod_cost_per_flight",
		"stage2_prod_cost_per_flight",
		"veh_int_checkout_per_flight",
		"props_cost_per_flight",
		"refurb_cost_per_flight",
	}
}

// Values returns the responses in ResponseNames order.
func (r Result) Values() []float64 {
	return []float64{
		r.PiStar,
		r.E1,
		r.ProdCostPerFlight,
		r.OpsCostPerFlight,
		r.CostPerFlight,
		r.DevCost,
		r.PricePerFlight,
		r.Stage1ProdPerFlight,
		r.Stage2ProdPerFlight,
		r.CheckoutPerFlight,
		r.PropsCostPerFlight,
		r.RefurbCostPerFlight,
	}
}

// perfFunc evaluates the recovery scheme's performance for one scenario:
// the delivered payload fraction and the stage 1 unavailable mass ratio.
type perfFunc func(sc uncertainty.Scenario) (piStar, e1 float64, err error)

// Strategy couples one first stage reuse scheme's performance model to the
// cost architecture of the vehicle flying it.
type Strategy struct {
	Name             string
	LandingMethod    string // "expendable", "propulsive", "winged" or "parachute"
	RecoveryProp     string // "N/A", "none", "rocket" or "air-breathing"
	RecoveryLocation string // "N/A", "launch site" or "downrange"
	PortionRecovered string // "none", "full" or "partial"

	mission Mission
	tech1   Technology
	tech2   Technology
	y       float64 // stage 2 to stage 1 wet mass ratio
	numAB   int     // air-breathing recovery engines on stage 1

	arch    *Architecture
	massVar massVariant
	perf    perfFunc

	perfUncerts []uncertainty.Uncertainty
	uncerts     *uncertainty.Set
}

// Mission returns the mission the strategy was built for.
func (st *Strategy) Mission() Mission { return st.mission }

// Uncertainties returns the full sampling set: technology, recovery
// performance and cost model parameters.
func (st *Strategy) Uncertainties() *uncertainty.Set { return st.uncerts }

// PerfUncertainties returns only the performance model's parameters, for
// analyses that skip the cost model.
func (st *Strategy) PerfUncertainties() []uncertainty.Uncertainty {
	return append([]uncertainty.Uncertainty(nil), st.perfUncerts...)
}

// Evaluate runs the full model for one scenario: recovery performance, the
// mass breakdown it implies, then the cost model over those masses.
func (st *Strategy) Evaluate(sc uncertainty.Scenario) (Result, error) {
	piStar, e1Resp, err := st.perf(sc)
	if err != nil {
		return Result{}, err
	}
	masses, err := st.massBreakdown(piStar, sc.Value("a", 0), sc["E_1"], sc["E_2"])
	if err != nil {
		return Result{}, err
	}
	bd, err := st.arch.EvaluateCost(sc, masses)
	if err != nil {
		return Result{}, err
	}
	return Result{
		PiStar:              piStar,
		E1:                  e1Resp,
		ProdCostPerFlight:   bd.ProdCostPerFlight,
		OpsCostPerFlight:    bd.OpsCostPerFlight,
		CostPerFlight:       bd.CostPerFlight,
		DevCost:             bd.DevCost,
		PricePerFlight:      bd.PricePerFlight,
		Stage1ProdPerFlight: bd.Stage1ProdPerFlight,
		Stage2ProdPerFlight: bd.Stage2ProdPerFlight,
		CheckoutPerFlight:   bd.CheckoutPerFlight,
		PropsCostPerFlight:  bd.PropsCostPerFlight,
		RefurbCostPerFlight: bd.RefurbCostPerFlight,
	}, nil
}

// EvaluatePerf runs only the performance model for one scenario.
func (st *Strategy) EvaluatePerf(sc uncertainty.Scenario) (piStar, e1 float64, err error) {
	return st.perf(sc)
}

// Model adapts the strategy for the Monte Carlo engine. Responses align
// with ResponseNames.
func (st *Strategy) Model() mc.Model {
	return func(sc uncertainty.Scenario) ([]float64, error) {
		res, err := st.Evaluate(sc)
		if err != nil {
			return nil, err
		}
		return res.Values(), nil
	}
}

func newStrategy(name, landing, recovProp, location, portion string, pair TechPair, mission Mission) *Strategy {
	return &Strategy{
		Name:             name,
		LandingMethod:    landing,
		RecoveryProp:     recovProp,
		RecoveryLocation: location,
		PortionRecovered: portion,
		mission:          mission,
		tech1:            pair.Booster,
		tech2:            pair.Upper,
		y:                0.20,
	}
}

// finish assembles the sampling set in a stable order: technology,
// recovery cost, recovery performance, cost model, reuse parameters.
func (st *Strategy) finish(perfDists, devStage1 []uncertainty.Uncertainty, reusable, airbreathing bool) {
	set := uncertainty.NewSet()
	set.Add(st.tech1.Uncertainties()...)
	set.Add(st.tech2.Uncertainties()...)
	switch st.RecoveryLocation {
	case "launch site":
		set.Add(recoveryCostLaunchSite)
	case "downrange":
		set.Add(recoveryCostDownrange)
	}
	set.Add(perfDists...)
	set.Add(st.arch.costUncertainties(devStage1)...)
	if reusable {
		set.Add(reuseCostUncerts()...)
	}
	if airbreathing {
		set.Add(reuseCostABUncerts()...)
	}
	st.uncerts = set

	st.perfUncerts = append(st.perfUncerts, st.tech1.Uncertainties()...)
	st.perfUncerts = append(st.perfUncerts, st.tech2.Uncertainties()...)
	st.perfUncerts = append(st.perfUncerts, perfDists...)
}

// stageParams reads the sampled stage performance parameters.
func stageParams(sc uncertainty.Scenario) (c1, c2, e1, e2 float64) {
	return sc["c_1"], sc["c_2"], sc["E_1"], sc["E_2"]
}

// NewExpendable is the baseline: nothing is recovered, and every flight
// expends a complete vehicle.
func NewExpendable(pair TechPair, mission Mission) *Strategy {
	st := newStrategy("expendable", "expendable", "N/A", "N/A", "none", pair, mission)
	st.arch = newArchitecture(st.tech1, st.tech2, "ballistic", "none", false, 0, 2*0.4)
	st.massVar = massBase
	st.perf = func(sc uncertainty.Scenario) (float64, float64, error) {
		c1, c2, e1, e2 := stageParams(sc)
		piStar, err := perf.PayloadFixedStages(c1, c2, e1, e2, st.y, st.mission.DV)
		return piStar, e1, err
	}
	st.finish(nil, devStage1Uncerts(0.9, 1.0, 1.1, 0.9, 1.0, 1.1), false, false)
	return st
}

// NewPropulsiveLaunchSite models a stage that boosts back and lands
// propulsively at the launch site.
func NewPropulsiveLaunchSite(pair TechPair, mission Mission) *Strategy {
	st := newStrategy("propulsive_launch_site", "propulsive", "rocket", "launch site", "full", pair, mission)
	st.arch = newArchitecture(st.tech1, st.tech2, "ballistic", "full", false, 0, 1.0+0.4)
	st.massVar = massBase
	st.perf = func(sc uncertainty.Scenario) (float64, float64, error) {
		c1, c2, e1, e2 := stageParams(sc)
		res, err := perf.PropulsiveLSPerf(c1, c2, e1, e2, st.y, st.mission.DV,
			sc["a"], sc["dv_entry"], sc["landing_m_A"], sc["landing_accel"], sc["f_ss"])
		return res.PiStar, res.E1, err
	}
	st.finish(
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("a", 0.09, 0.14, 0.19),
			fssUncert,
			dvEntryUncert,
			landingMALargeUncert,
			landingAccelUncert,
		},
		devStage1Uncerts(1.1, 1.15, 1.2, 1.1, 1.15, 1.2),
		true, false)
	return st
}

// NewPropulsiveDownrange models a stage that lands propulsively downrange,
// without the boostback burn.
func NewPropulsiveDownrange(pair TechPair, mission Mission) *Strategy {
	st := newStrategy("propulsive_downrange", "propulsive", "rocket", "downrange", "full", pair, mission)
	st.arch = newArchitecture(st.tech1, st.tech2, "ballistic", "full", false, 0, 1.0+0.4)
	st.massVar = massBase
	st.perf = func(sc uncertainty.Scenario) (float64, float64, error) {
		c1, c2, e1, e2 := stageParams(sc)
		dvLand, err := perf.LandingDV(sc["landing_m_A"], sc["landing_accel"])
		if err != nil {
			return 0, 0, err
		}
		// Entry and landing burns only, plus a 10% propellant margin.
		p := (sc["dv_entry"] + dvLand) / c1 * 1.10
		e1p, err := perf.UnavailMass(sc["a"], p, 1, e1)
		if err != nil {
			return 0, 0, err
		}
		piStar, err := perf.PayloadFixedStages(c1, c2, e1p, e2, st.y, st.mission.DV)
		return piStar, e1p, err
	}
	st.finish(
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("a", 0.09, 0.14, 0.19),
			dvEntryUncert,
			landingMALargeUncert,
			landingAccelUncert,
		},
		devStage1Uncerts(1.1, 1.15, 1.2, 1.1, 1.15, 1.2),
		true, false)
	return st
}

// NewWingedPoweredLaunchSite models a winged stage that cruises back to the
// launch site under air-breathing power.
func NewWingedPoweredLaunchSite(pair TechPair, mission Mission) *Strategy {
	st := newStrategy("winged_powered_launch_site", "winged", "air-breathing", "launch site", "full", pair, mission)
	st.numAB = 4
	st.arch = newArchitecture(st.tech1, st.tech2, "winged", "full", true, st.numAB, 1.0+0.4)
	st.massVar = massWingedFull
	st.perf = func(sc uncertainty.Scenario) (float64, float64, error) {
		c1, c2, e1, e2 := stageParams(sc)
		res, err := perf.WingedPoweredLSPerf(c1, c2, e1, e2, st.y, st.mission.DV,
			sc["a"], sc["I_sp_ab"], sc["v_cruise"], sc["lift_drag"], sc["f_ss"], 1)
		return res.PiStar, res.E1, err
	}
	st.finish(
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("a", 0.490, 0.574, 0.650),
			fssUncert,
			ispABUncert,
			vCruiseUncert,
			liftDragUncert,
		},
		devStage1Uncerts(1.3, 1.35, 1.4, 1.1, 1.15, 1.2),
		true, true)
	return st
}

// NewWingedPoweredLaunchSitePartial flies only a winged engine pod back to
// the launch site; the tank section is expended.
func NewWingedPoweredLaunchSitePartial(pair TechPair, mission Mission) *Strategy {
	st := newStrategy("winged_powered_launch_site_partial", "winged", "air-breathing", "launch site", "partial", pair, mission)
	st.numAB = 2
	st.arch = newArchitecture(st.tech1, st.tech2, "winged", "partial", true, st.numAB, 1.0+0.4+0.4)
	st.massVar = massWingedPartial
	st.perf = func(sc uncertainty.Scenario) (float64, float64, error) {
		c1, c2, e1, e2 := stageParams(sc)
		zm, err := st.enginePodZM(e1)
		if err != nil {
			return 0, 0, err
		}
		res, err := perf.WingedPoweredLSPerf(c1, c2, e1, e2, st.y, st.mission.DV,
			sc["a"], sc["I_sp_ab"], sc["v_cruise"], sc["lift_drag"], sc["f_ss"],
			sc.Value("z_m", zm))
		return res.PiStar, res.E1, err
	}
	st.finish(
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("a", 0.490, 0.574, 0.650),
			fssUncert,
			ispABUncert,
			vCruiseUncert,
			liftDragUncert,
		},
		devStage1Uncerts(1.3, 1.35, 1.4, 1.1, 1.15, 1.2),
		true, true)
	return st
}

// NewWingedGlider models a winged stage that glides to a downrange landing
// with no recovery propulsion.
func NewWingedGlider(pair TechPair, mission Mission) *Strategy {
	st := newStrategy("winged_glider", "winged", "none", "downrange", "full", pair, mission)
	st.arch = newArchitecture(st.tech1, st.tech2, "winged", "full", false, 0, 1.0+0.4)
	st.massVar = massBase
	st.perf = st.unpoweredPerf(false)
	st.finish(
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("a", 0.380, 0.426, 0.540),
		},
		devStage1Uncerts(1.1, 1.15, 1.2, 1.1, 1.15, 1.2),
		true, false)
	return st
}

// NewParachute models a stage recovered whole by parachute downrange.
func NewParachute(pair TechPair, mission Mission) *Strategy {
	st := newStrategy("parachute", "parachute", "none", "downrange", "full", pair, mission)
	st.arch = newArchitecture(st.tech1, st.tech2, "ballistic", "full", false, 0, 1.0+0.4)
	st.massVar = massBase
	st.perf = st.unpoweredPerf(false)
	st.finish(
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("a", 0.15, 0.17, 0.19),
		},
		devStage1Uncerts(0.9, 1.0, 1.1, 1.1, 1.15, 1.2),
		true, false)
	return st
}

// NewParachutePartial recovers only an engine pod by parachute; the tank
// section is expended.
func NewParachutePartial(pair TechPair, mission Mission) *Strategy {
	st := newStrategy("parachute_partial", "parachute", "none", "downrange", "partial", pair, mission)
	st.arch = newArchitecture(st.tech1, st.tech2, "ballistic", "partial", false, 0, 1.0+0.4+0.4)
	st.massVar = massPodPartial
	st.perf = st.unpoweredPerf(true)
	st.finish(
		[]uncertainty.Uncertainty{
			uncertainty.NewTriangular("a", 0.15, 0.17, 0.19),
		},
		devStage1Uncerts(0.9, 1.0, 1.1, 1.1, 1.15, 1.2),
		true, false)
	return st
}

// unpoweredPerf builds the performance evaluation for recovery without
// propulsion: only the added hardware penalizes the payload. With
// podRecovery, only a computed engine pod fraction of the dry mass is
// recovered (a sampled z_m overrides it); otherwise the whole stage is.
func (st *Strategy) unpoweredPerf(podRecovery bool) perfFunc {
	return func(sc uncertainty.Scenario) (float64, float64, error) {
		c1, c2, e1, e2 := stageParams(sc)
		zm := 1.0
		if podRecovery {
			pod, err := st.enginePodZM(e1)
			if err != nil {
				return 0, 0, err
			}
			zm = sc.Value("z_m", pod)
		}
		e1p, err := perf.UnavailMass(sc["a"], 0, zm, e1)
		if err != nil {
			return 0, 0, err
		}
		piStar, err := perf.PayloadFixedStages(c1, c2, e1p, e2, st.y, st.mission.DV)
		return piStar, e1p, err
	}
}

// Constructor builds a strategy for a technology pairing and mission.
type Constructor func(pair TechPair, mission Mission) *Strategy

var constructors = map[string]Constructor{
	"expendable":                         NewExpendable,
	"propulsive_launch_site":             NewPropulsiveLaunchSite,
	"propulsive_downrange":               NewPropulsiveDownrange,
	"winged_powered_launch_site":         NewWingedPoweredLaunchSite,
	"winged_powered_launch_site_partial": NewWingedPoweredLaunchSitePartial,
	"winged_glider":                      NewWingedGlider,
	"parachute":                          NewParachute,
	"parachute_partial":                  NewParachutePartial,
}

// CheckName reports an error for a name no strategy registers under.
func CheckName(name string) error {
	if _, ok := constructors[name]; !ok {
		return fmt.Errorf("unknown strategy %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return nil
}

// New builds the named strategy.
func New(name string, pair TechPair, mission Mission) (*Strategy, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	return constructors[name](pair, mission), nil
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All builds every registered strategy for the pairing and mission, in
// Names order.
func All(pair TechPair, mission Mission) []*Strategy {
	out := make([]*Strategy, 0, len(constructors))
	for _, name := range Names() {
		out = append(out, constructors[name](pair, mission))
	}
	return out
}
