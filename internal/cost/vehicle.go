package cost

import (
	"fmt"
	"log/slog"
	"math"
)

// ElementParams carries the per-sample cost inputs for one element tag: the
// (possibly sampled) CER coefficients, the element cost factors, and how many
// identical units each vehicle carries.
type ElementParams struct {
	CER     CERValues
	Factors ElementCostFactors
	Count   int
}

// ParamsMap maps element tags to their cost inputs.
type ParamsMap map[string]ElementParams

func (m ParamsMap) get(tag string) ElementParams {
	p, ok := m[tag]
	if !ok {
		panic(fmt.Sprintf("no cost parameters for element %q", tag))
	}
	return p
}

// LaunchVehicle is the costed description of a whole launch vehicle. M0 is
// the gross liftoff mass in Mg. N counts stages and major vehicle systems;
// large segmented boosters count as one, small attached boosters as half.
type LaunchVehicle struct {
	Name     string
	M0       float64
	N        float64
	Elements []*Element
}

func (v *LaunchVehicle) element(tag string) *Element {
	for _, e := range v.Elements {
		if e.Tag == tag {
			return e
		}
	}
	panic(fmt.Sprintf("vehicle %q has no element %q", v.Name, tag))
}

// DevelopmentCost returns the vehicle development cost in WYr: the sum of
// element development costs with the vehicle-level factors applied.
func (v *LaunchVehicle) DevelopmentCost(f VehicleCostFactors, params ParamsMap) float64 {
	sum := 0.0
	for _, e := range v.Elements {
		p := params.get(e.Tag)
		sum += e.DevelopmentCost(p.CER, p.Factors)
	}
	return f.F0Dev * sum * f.F6 * f.F7
}

// AverageProductionCost returns the average cost in WYr of producing one
// complete vehicle over the given run of vehicle serial numbers.
func (v *LaunchVehicle) AverageProductionCost(f VehicleCostFactors, prodRun UnitRange, params ParamsMap) float64 {
	sum := 0.0
	for _, e := range v.Elements {
		p := params.get(e.Tag)
		units := prodRun.ForElement(p.Count)
		sum += float64(p.Count) * e.AverageProductionCost(p.CER, p.Factors, units)
	}
	return math.Pow(f.F0Prod, v.N) * sum * f.F9
}

// ProdCostPerFlight returns the average production cost charged to each
// flight in WYr. Elements with reuses > 1 are produced less often: a stage
// flown R times contributes 1/R of its unit cost per flight, and its serial
// numbers advance R times slower through the learning curve.
func (v *LaunchVehicle) ProdCostPerFlight(reuses map[string]float64, params ParamsMap, f VehicleCostFactors, prodRun UnitRange) float64 {
	sum := 0.0
	for _, e := range v.Elements {
		sum += v.elementProdPerFlight(e, reuses, params, prodRun)
	}
	return math.Pow(f.F0Prod, v.N) * sum * f.F9
}

// PortionProdCostPerFlight returns the per-flight production cost of the
// named element tags only, without the vehicle-level markup. Subtracting the
// stage portions from ProdCostPerFlight leaves the vehicle integration and
// checkout share.
func (v *LaunchVehicle) PortionProdCostPerFlight(reuses map[string]float64, params ParamsMap, prodRun UnitRange, tags []string) float64 {
	sum := 0.0
	for _, tag := range tags {
		sum += v.elementProdPerFlight(v.element(tag), reuses, params, prodRun)
	}
	return sum
}

func (v *LaunchVehicle) elementProdPerFlight(e *Element, reuses map[string]float64, params ParamsMap, prodRun UnitRange) float64 {
	p := params.get(e.Tag)
	if r, ok := reuses[e.Tag]; ok && r > 1 {
		units := prodRun.Amortized(p.Count, r)
		return float64(p.Count) * e.AverageProductionCost(p.CER, p.Factors, units) / r
	}
	units := prodRun.ForElement(p.Count)
	return float64(p.Count) * e.AverageProductionCost(p.CER, p.Factors, units)
}

// PreflightGroundOpsCost returns the per-flight cost in WYr of vehicle
// assembly, integration and pre-launch ground operations, averaged over the
// given flight numbers. launchRate is in launches per year.
func (v *LaunchVehicle) PreflightGroundOpsCost(launchRate float64, f OperationsCostFactors, launches UnitRange) float64 {
	if launchRate < 3 {
		slog.Warn("Pre-launch ground operations cost model is only valid for launch rates of 3 or more per year.",
			"launch_rate", launchRate)
	}
	f4 := CostReductionFactor(f.P, launches)
	return 8 * math.Pow(v.M0, 0.67) * math.Pow(launchRate, -0.9) * math.Pow(v.N, 0.7) *
		f.FV * f.FC * f4 * f.F8 * f.F11
}

// FlightMissionOpsCost returns the per-flight launch, flight and mission
// operations cost in WYr. sumQN is the sum of the stage type factors Q:
// 0.15 per small solid stage, 0.4 per expendable liquid stage or large
// booster, 1.0 per recoverable or flyback system, 2.0 per reusable orbital
// system, 3.0 per crewed orbital vehicle. The crew term is only added for
// numCrew > 0; missionDuration is in days.
func (v *LaunchVehicle) FlightMissionOpsCost(sumQN, launchRate float64, f OperationsCostFactors, launches UnitRange, numCrew int, missionDuration float64) float64 {
	f4 := CostReductionFactor(f.P, launches)
	c := 20 * sumQN * math.Pow(launchRate, -0.65) * f4 * f.F8
	if numCrew > 0 {
		c += 75 * math.Sqrt(missionDuration) * math.Sqrt(float64(numCrew)) *
			math.Pow(launchRate, -0.8) * f4 * f.F8 * f.F11
	}
	return c
}

// RecoveryOpsCost returns the per-flight cost in WYr of recovering hardware
// of mass recoveryMass (in Mg) downrange: ships or aircraft on station,
// capture and transport back.
func (v *LaunchVehicle) RecoveryOpsCost(recoveryMass, launchRate float64, f OperationsCostFactors) float64 {
	return 1.5 / launchRate * (7*math.Pow(launchRate, 0.7) + math.Pow(recoveryMass, 0.83)) *
		f.F8 * f.F11
}

// RefurbishmentCost returns the per-flight refurbishment cost in WYr. Each
// reused element contributes its refurbishment factor f5 times its
// first-unit production cost; elements built new for every flight contribute
// nothing.
func (v *LaunchVehicle) RefurbishmentCost(f OperationsCostFactors, params ParamsMap, reuses map[string]float64) float64 {
	sum := 0.0
	for tag, f5 := range f.F5 {
		if r, ok := reuses[tag]; !ok || r <= 1 {
			continue
		}
		e := v.element(tag)
		p := params.get(tag)
		tfu := e.AverageProductionCost(p.CER, p.Factors, UnitRange{First: 1, Last: 1})
		sum += float64(p.Count) * f5 * tfu
	}
	return sum
}
