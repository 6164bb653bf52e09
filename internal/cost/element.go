package cost

import "math"

// Element is one costed part of a launch vehicle: a stage, an engine, a
// disposable tank section. Tag identifies it within a vehicle ("s1", "e1",
// "s2", "e2", "d1", "ab"); Mass is the unit dry mass in kilograms.
type Element struct {
	Tag   string
	Class *Class
	Mass  float64
}

// DevelopmentCost returns the element development cost in WYr. The CER
// coefficients are passed in rather than taken from the class so that
// sampled coefficient values flow through unchanged.
func (e *Element) DevelopmentCost(cer CERValues, f ElementCostFactors) float64 {
	base := cer.DevA * math.Pow(e.Mass, cer.DevX)
	switch e.Class.dev {
	case devComplex:
		return f.F1 * f.F2 * f.F3 * f.F8 * f.F10 * f.F11 * base
	case devFlyback:
		return f.F1 * f.F3 * f.F8 * f.F10 * f.F11 * base
	default:
		return f.F1 * f.F2 * f.F3 * f.F8 * base
	}
}

// AverageProductionCost returns the average unit production cost in WYr over
// the given run of element serial numbers.
func (e *Element) AverageProductionCost(cer CERValues, f ElementCostFactors, units UnitRange) float64 {
	f4 := CostReductionFactor(f.P, units)
	base := cer.ProdA * math.Pow(e.Mass, cer.ProdX) * f4 * f.F8
	if e.Class.prod == prodNoF10 {
		return base * f.F11
	}
	return base * f.F10 * f.F11
}
