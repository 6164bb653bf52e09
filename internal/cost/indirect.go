package cost

import (
	"fmt"
	"math"
)

// Indirect operations cost per flight [WYr] by launch provider type, for
// launch rates 1 through 12 per year. Type A providers buy launch services
// from an integrating contractor, type B share work between provider and
// manufacturer, type C providers build their own vehicle and subcontract
// little.
var indirectOpsTable = map[string][12]float64{
	"A": {65, 49, 42, 38, 35, 33, 31, 30, 29, 27, 26, 25},
	"B": {45, 34, 29, 27, 24, 23, 22, 21, 20, 19, 18, 17},
	"C": {32, 24, 22, 19, 18, 17, 16, 15, 14, 13, 12, 11},
}

// IndirectOpsCost returns the indirect operations cost per flight in WYr:
// launch site amortization, administration, and technical support. The table
// is tabulated at integer launch rates; intermediate rates interpolate
// linearly and rates outside 1..12 clamp to the table edges.
func IndirectOpsCost(launchRate float64, providerType string) (float64, error) {
	line, ok := indirectOpsTable[providerType]
	if !ok {
		return 0, fmt.Errorf("unknown launch provider type %q", providerType)
	}
	if launchRate <= 1 {
		return line[0], nil
	}
	if launchRate >= 12 {
		return line[11], nil
	}
	lo := int(math.Floor(launchRate))
	frac := launchRate - float64(lo)
	return line[lo-1] + frac*(line[lo]-line[lo-1]), nil
}
