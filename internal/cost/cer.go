package cost

// CERValues holds the coefficients of a pair of cost-estimating
// relationships, cost = a * m^x, for development and first-unit production.
// Costs are in work-years (WYr) and masses in kilograms.
type CERValues struct {
	DevA, DevX   float64
	ProdA, ProdX float64
}

// Interval is a confidence interval on a CER coefficient, used to build
// sampling distributions around the nominal value.
type Interval struct {
	Lo, Hi float64
}
