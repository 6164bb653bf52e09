// Package sensitivity ranks the inputs of each strategy by Sobol variance
// decomposition, for payload fraction or for cost per flight.
package sensitivity

import (
	"context"
	"fmt"
	"math"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/mc"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
	"github.com/lvreuse/boostback/internal/uncertainty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options selects the strategies to decompose and the response to rank by.
type Options struct {
	Strategies []string `hcl:"strategies,optional"`
	Response   string   `hcl:"response,optional"`
}

// Validate checks the strategy and response references at decode time.
func (o *Options) Validate() error {
	for _, name := range o.Strategies {
		if err := strategy.CheckName(name); err != nil {
			return err
		}
	}
	if o.Response != "" && o.Response != "pi_star" && o.Response != "cost_per_flight" {
		return fmt.Errorf("unknown response %q (known: cost_per_flight, pi_star)", o.Response)
	}
	return nil
}

func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	names := o.Strategies
	if len(names) == 0 {
		names = []string{"expendable", "propulsive_launch_site", "winged_powered_launch_site"}
	}
	response := o.Response
	if response == "" {
		response = "pi_star"
	}
	if response != "pi_star" && response != "cost_per_flight" {
		return nil, fmt.Errorf("unknown response %q (known: cost_per_flight, pi_star)", response)
	}

	strategies, err := env.Strategies(names)
	if err != nil {
		return nil, err
	}

	header := []string{"strategy", "uncertainty", "first_order", "total"}
	var rows [][]string
	rng := env.NewRNG()
	failures := 0
	headline := map[string]float64{}

	for _, st := range strategies {
		var set *uncertainty.Set
		var model mc.ScalarModel
		if response == "pi_star" {
			set = uncertainty.NewSet(st.PerfUncertainties()...)
			model = func(sc uncertainty.Scenario) (float64, error) {
				piStar, _, err := st.EvaluatePerf(sc)
				return piStar, err
			}
		} else {
			set = st.Uncertainties()
			model = func(sc uncertainty.Scenario) (float64, error) {
				res, err := st.Evaluate(sc)
				if err != nil {
					return 0, err
				}
				return res.CostPerFlight, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := mc.Sobol(model, set, env.Samples, rng)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", st.Name, err)
		}
		failures += env.Samples - res.Samples

		maxTotal := math.Inf(-1)
		for i, name := range res.Names {
			rows = append(rows, []string{st.Name, name, report.Cell(res.FirstOrder[i]), report.Cell(res.Total[i])})
			maxTotal = math.Max(maxTotal, res.Total[i])
		}
		headline[st.Name+"_max_total"] = maxTotal
	}

	if err := env.Report.WriteCSV(env.Artifact(response), header, rows); err != nil {
		return nil, err
	}
	return &analysis.Outcome{SampleFailures: failures, Headline: headline}, nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "sensitivity",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
