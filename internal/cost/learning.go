package cost

import (
	"fmt"
	"math"
)

// UnitRange is an inclusive range of consecutive production or flight unit
// serial numbers.
type UnitRange struct {
	First, Last int
}

// NewUnitRange panics when first < 1 or last < first; unit ranges come from
// static production-run tables, so a bad range is a programming error.
func NewUnitRange(first, last int) UnitRange {
	if first < 1 || last < first {
		panic(fmt.Sprintf("invalid unit range [%d, %d]", first, last))
	}
	return UnitRange{First: first, Last: last}
}

// Len returns the number of units in the range.
func (r UnitRange) Len() int { return r.Last - r.First + 1 }

// ForElement maps a vehicle production range onto the serial numbers of an
// element that appears n times per vehicle. Vehicle 20 with 9 engines per
// vehicle consumes engine serials 172 through 180.
func (r UnitRange) ForElement(n int) UnitRange {
	return UnitRange{First: r.First*n - n + 1, Last: r.Last * n}
}

// Amortized maps a vehicle production range onto the element serial numbers
// actually built when each unit flies reuses times before retirement. The
// reuse count may be fractional when it is a sampled value.
func (r UnitRange) Amortized(n int, reuses float64) UnitRange {
	first := int(math.Ceil(float64(r.First) / reuses))
	last := int(math.Ceil(float64(r.Last) / reuses))
	return UnitRange{First: first*n - n + 1, Last: last * n}
}

// CostReductionFactor returns the average learning factor f4 over a
// production run, for learning parameter p <= 1. Unit n costs
// n^(log2 p) times the first unit.
func CostReductionFactor(p float64, units UnitRange) float64 {
	b := math.Log(p) / math.Ln2
	sum := 0.0
	for n := units.First; n <= units.Last; n++ {
		sum += math.Pow(float64(n), b)
	}
	return sum / float64(units.Len())
}
