package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lvreuse/boostback/internal/mc"
	"github.com/lvreuse/boostback/internal/units"
)

// Unit scales a response column into the unit a table reports it in.
type Unit struct {
	Name  string
	Scale float64
}

// Dimensionless labels ratio responses such as payload fractions.
var Dimensionless = Unit{Name: "-", Scale: 1}

// CostUnits are the two units cost rows are reported in: TRANSCOST
// work-years and millions of 2018 US dollars.
var CostUnits = []Unit{
	{Name: "WYr", Scale: 1},
	{Name: "M$2018", Scale: units.WYrToMillionUSD2018},
}

// DefaultQuantiles returns the probabilities the comparison tables report.
func DefaultQuantiles() []float64 {
	return []float64{0.01, 0.05, 0.10, 0.25, 0.50, 0.75, 0.90, 0.95, 0.99}
}

// QuantileLabel names a probability column: 0.05 becomes "p05", 0.5 "p50".
func QuantileLabel(p float64) string {
	pct := p * 100
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("p%02d", int(pct))
	}
	return "p" + strconv.FormatFloat(pct, 'g', -1, 64)
}

// QuantileHeader builds a quantile table header: the key columns followed
// by one label per probability.
func QuantileHeader(ps []float64, keys ...string) []string {
	out := append([]string(nil), keys...)
	for _, p := range ps {
		out = append(out, QuantileLabel(p))
	}
	return out
}

// QuantileCells renders one summarized response as a CSV row: the key cells
// followed by its quantiles scaled into the unit.
func QuantileCells(row mc.QuantileRow, unit Unit, keys ...string) []string {
	out := append([]string(nil), keys...)
	for _, q := range row.Quantiles {
		out = append(out, Cell(q*unit.Scale))
	}
	return out
}
