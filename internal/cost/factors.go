package cost

// ElementCostFactors are the TRANSCOST correction factors applied to a
// single vehicle element.
//
//	F1  development standard (new concept vs. state of the art)
//	F2  technical quality
//	F3  team experience
//	F8  country productivity
//	F10 past-experience and cost-engineering reduction
//	F11 commercial (no government oversight) reduction
//	P   learning parameter for serial production
type ElementCostFactors struct {
	F1, F2, F3, F8, F10, F11, P float64
}

// VehicleCostFactors are the correction factors applied at the whole-vehicle
// level. F0Dev is the systems-engineering/integration factor for development,
// F0Prod the management factor per stage for production (applied as
// F0Prod^N), F6 the cost growth factor for schedule deviation, F7 the cost
// growth for parallel contractors, and F9 the subcontractor surcharge.
type VehicleCostFactors struct {
	F0Dev, F0Prod, F6, F7, F8, F9, P float64
}

// OperationsCostFactors are the correction factors for ground, flight and
// refurbishment operations. F5 maps an element tag to its refurbishment cost
// factor (fraction of first-unit production cost per flight). FV is the
// launch vehicle type factor and FC the assembly-and-integration mode factor.
type OperationsCostFactors struct {
	F5      map[string]float64
	F8, F11 float64
	FV, FC  float64
	P       float64
}
