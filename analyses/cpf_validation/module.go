// Package cpf_validation anchors the cost model against flown vehicles:
// it sweeps each reference dataset over launch rate at mode factors and
// puts the modeled cost and price per flight next to the published price.
package cpf_validation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/vehicles"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options selects the reference vehicles and the launch rate range.
type Options struct {
	Vehicles []string `hcl:"vehicles,optional"`
	RateMin  int      `hcl:"rate_min,optional"`
	RateMax  int      `hcl:"rate_max,optional"`
}

// Validate checks the vehicle references at decode time.
func (o *Options) Validate() error {
	for _, name := range o.Vehicles {
		if _, err := vehicles.ByName(name); err != nil {
			return err
		}
	}
	return nil
}

func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	names := o.Vehicles
	if len(names) == 0 {
		names = vehicles.Names()
	}
	rateMin, rateMax := o.RateMin, o.RateMax
	if rateMin == 0 {
		rateMin = 3
	}
	if rateMax == 0 {
		rateMax = 12
	}
	if rateMin < 1 || rateMax < rateMin {
		return nil, fmt.Errorf("launch rate range %d..%d is not usable", rateMin, rateMax)
	}

	header := []string{"vehicle", "launch_rate", "cost_per_flight", "price_per_flight"}
	var rows [][]string
	headline := map[string]float64{}

	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		d, err := vehicles.ByName(name)
		if err != nil {
			return nil, err
		}
		for rate := rateMin; rate <= rateMax; rate++ {
			sc := d.ModeScenario()
			sc["launch_rate"] = float64(rate)
			bd, err := d.EvaluateCost(sc)
			if err != nil {
				return nil, fmt.Errorf("%s at launch_rate=%d: %w", name, rate, err)
			}
			rows = append(rows, []string{
				name, strconv.Itoa(rate),
				report.Cell(bd.CostPerFlight), report.Cell(bd.PricePerFlight),
			})
		}

		if d.ReferencePrice > 0 {
			// Compare at the dataset's own launch rate mode when it samples
			// one, at the sweep midpoint otherwise.
			sc := d.ModeScenario()
			if sc.Value("launch_rate", 0) <= 0 {
				sc["launch_rate"] = float64(rateMin+rateMax) / 2
			}
			bd, err := d.EvaluateCost(sc)
			if err != nil {
				return nil, fmt.Errorf("%s at mode: %w", name, err)
			}
			headline[name+"_model_cpf"] = bd.CostPerFlight
			headline[name+"_published_price"] = d.ReferencePrice
		}
	}

	if err := env.Report.WriteCSV(env.Artifact(""), header, rows); err != nil {
		return nil, err
	}
	return &analysis.Outcome{Headline: headline}, nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "cpf_validation",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
