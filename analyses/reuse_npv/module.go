// Package reuse_npv computes how much a program can afford to spend on
// reuse development: the present value of per-flight savings over the
// program horizon, in multiples of the expendable cost per flight.
package reuse_npv

import (
	"context"
	"fmt"
	"math"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options sets the launch rates to compare and the discounting terms.
type Options struct {
	Rates        []int   `hcl:"rates,optional"`
	DiscountRate float64 `hcl:"discount_rate,optional"`
	HorizonYears float64 `hcl:"horizon_years,optional"`
	Points       int     `hcl:"points,optional"`
}

// presentValue discounts the savings stream of a vehicle whose reusable
// cost per flight is ratio times the expendable baseline. Flights pay at
// the start of each period, launches per year convert the annual discount
// rate to a per-flight one.
func presentValue(ratio, discount float64, rate int, horizon float64) float64 {
	r := discount / float64(rate)
	nper := float64(rate) * horizon
	return (1 - ratio) * (1 + r) / r * (1 - math.Pow(1+r, -nper))
}

func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	rates := o.Rates
	if len(rates) == 0 {
		rates = []int{1, 5, 10, 20, 40}
	}
	for _, rate := range rates {
		if rate <= 0 {
			return nil, fmt.Errorf("launch rates must be positive, got %d", rate)
		}
	}
	discount := o.DiscountRate
	if discount == 0 {
		discount = 0.20
	}
	if discount < 0 {
		return nil, fmt.Errorf("discount_rate must be positive, got %g", discount)
	}
	horizon := o.HorizonYears
	if horizon == 0 {
		horizon = 20
	}
	if horizon < 0 {
		return nil, fmt.Errorf("horizon_years must be positive, got %g", horizon)
	}
	points := o.Points
	if points == 0 {
		points = 50
	}
	if points < 2 {
		return nil, fmt.Errorf("points must be at least 2, got %d", points)
	}

	header := []string{"cpf_ratio"}
	for _, rate := range rates {
		header = append(header, fmt.Sprintf("pv_rate_%d", rate))
	}
	rows := make([][]string, 0, points)
	for i := 0; i < points; i++ {
		ratio := float64(i) / float64(points-1)
		cells := []float64{ratio}
		for _, rate := range rates {
			cells = append(cells, presentValue(ratio, discount, rate, horizon))
		}
		rows = append(rows, report.Cells(cells...))
	}

	if err := env.Report.WriteCSV(env.Artifact(""), header, rows); err != nil {
		return nil, err
	}
	headline := map[string]float64{}
	for _, rate := range rates {
		headline[fmt.Sprintf("pv_at_half_rate_%d", rate)] = presentValue(0.5, discount, rate, horizon)
	}
	return &analysis.Outcome{Headline: headline}, nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "reuse_npv",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
