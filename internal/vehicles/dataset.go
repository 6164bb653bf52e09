// Package vehicles carries the reference launch vehicle data: published mass
// properties of flown vehicles, and cost-per-flight datasets that anchor the
// cost model against published launch prices.
package vehicles

import (
	"fmt"

	"github.com/lvreuse/boostback/internal/cost"
	"github.com/lvreuse/boostback/internal/mc"
	"github.com/lvreuse/boostback/internal/uncertainty"
)

// Element is one costed element of a reference vehicle: its dry mass, cost
// class, units per vehicle, and the productivity correction of its builder.
type Element struct {
	Tag   string
	Class *cost.Class
	Mass  float64 // kg
	Count int
	F8    float64
}

// Dataset is the cost-per-flight model of one flown launch vehicle,
// assembled from published element masses and estimated cost factors. All
// elements expend, so no per-flight amortization or refurbishment applies.
type Dataset struct {
	Name  string // study identifier
	Label string // published designation

	M0     float64 // gross liftoff mass, Mg
	Stages float64 // stage count N, boosters included

	Elements []Element

	VehicleF8 float64
	OpsF8     float64
	FV, FC    float64
	SumQN     float64
	Provider  string

	Stage1Tags []string
	Stage2Tags []string

	ProdRun   cost.UnitRange
	LaunchRun cost.UnitRange

	// PropsCost is the propellant bill per flight in WYr at the published
	// loads. Propellant masses are data, not sampled.
	PropsCost float64

	// Insurance per flight in WYr, applied when the scenario does not
	// sample one.
	Insurance float64

	// ReferencePrice is the published launch price in WYr for comparison
	// against the model, zero when no price is public.
	ReferencePrice float64

	set   *uncertainty.Set
	fixed *fixedFactors
}

// fixedFactors cost a dataset at published point estimates instead of
// scenario factors.
type fixedFactors struct {
	params cost.ParamsMap
	vehF   cost.VehicleCostFactors
	opsF   cost.OperationsCostFactors
}

// ResponseNames lists the cost model outputs in the order Model returns
// them.
func ResponseNames() []string {
	return []string{
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

// Uncertainties returns the sampled parameters of the dataset's cost model.
// Deterministic datasets return an empty set.
func (d *Dataset) Uncertainties() *uncertainty.Set {
	if d.set == nil {
		return uncertainty.NewSet()
	}
	return d.set
}

// ModeScenario returns every sampled parameter at its mode.
func (d *Dataset) ModeScenario() uncertainty.Scenario {
	return d.Uncertainties().Modes()
}

func (d *Dataset) vehicle() *cost.LaunchVehicle {
	elements := make([]*cost.Element, len(d.Elements))
	for i, el := range d.Elements {
		elements[i] = &cost.Element{Tag: el.Tag, Class: el.Class, Mass: el.Mass}
	}
	return &cost.LaunchVehicle{Name: d.Name, M0: d.M0, N: d.Stages, Elements: elements}
}

func (d *Dataset) elementParams(sc uncertainty.Scenario) cost.ParamsMap {
	if d.fixed != nil {
		return d.fixed.params
	}
	params := make(cost.ParamsMap, len(d.Elements))
	for _, el := range d.Elements {
		params[el.Tag] = cost.ParamsFromScenario(sc, el.Tag, el.F8, el.Count)
	}
	return params
}

// EvaluateCost runs the cost model for one scenario. Factors the scenario
// does not carry keep their nominal defaults. The scenario must carry a
// positive launch_rate.
func (d *Dataset) EvaluateCost(sc uncertainty.Scenario) (cost.Breakdown, error) {
	launchRate := sc.Value("launch_rate", 0)
	if launchRate <= 0 {
		return cost.Breakdown{}, fmt.Errorf("scenario needs a positive launch_rate, got %g", launchRate)
	}

	veh := d.vehicle()
	params := d.elementParams(sc)

	vehF := cost.VehicleCostFactors{
		F0Dev:  sc.Value("f0_dev_veh", 1),
		F0Prod: sc.Value("f0_prod_veh", 1),
		F6:     sc.Value("f6_veh", 1),
		F7:     sc.Value("f7_veh", 1),
		F8:     d.VehicleF8,
		F9:     sc.Value("f9_veh", 1),
	}
	opsF := cost.OperationsCostFactors{
		F8:  d.OpsF8,
		F11: sc.Value("f11_ops", 1),
		FV:  d.FV,
		FC:  d.FC,
		P:   sc.Value("p_ops", 1),
	}
	if d.fixed != nil {
		vehF, opsF = d.fixed.vehF, d.fixed.opsF
	}

	prodPF := veh.ProdCostPerFlight(nil, params, vehF, d.ProdRun)
	stage1 := veh.PortionProdCostPerFlight(nil, params, d.ProdRun, d.Stage1Tags)
	stage2 := veh.PortionProdCostPerFlight(nil, params, d.ProdRun, d.Stage2Tags)
	checkout := prodPF - stage1 - stage2

	groundOps := veh.PreflightGroundOpsCost(launchRate, opsF, d.LaunchRun)
	missionOps := veh.FlightMissionOpsCost(d.SumQN, launchRate, opsF, d.LaunchRun, 0, 0)

	indirectOps, err := cost.IndirectOpsCost(launchRate, d.Provider)
	if err != nil {
		return cost.Breakdown{}, err
	}
	refurb := veh.RefurbishmentCost(opsF, params, nil)

	directOps := groundOps + missionOps + d.PropsCost +
		sc.Value("fees", 0) + sc.Value("insurance", d.Insurance)
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
		PropsCostPerFlight:  d.PropsCost,
		RefurbCostPerFlight: refurb,
	}, nil
}

// Model adapts the dataset to the Monte Carlo engine, emitting the
// responses named by ResponseNames.
func (d *Dataset) Model() mc.Model {
	return func(sc uncertainty.Scenario) ([]float64, error) {
		bd, err := d.EvaluateCost(sc)
		if err != nil {
			return nil, err
		}
		return []float64{
			bd.ProdCostPerFlight,
			bd.OpsCostPerFlight,
			bd.CostPerFlight,
			bd.DevCost,
			bd.PricePerFlight,
			bd.Stage1ProdPerFlight,
			bd.Stage2ProdPerFlight,
			bd.CheckoutPerFlight,
			bd.PropsCostPerFlight,
			bd.RefurbCostPerFlight,
		}, nil
	}
}
