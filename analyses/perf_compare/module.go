// Package perf_compare compares the payload performance of the reuse
// strategies with the cost model left out: distributions of the payload
// fraction pi* and the stage 1 unavailable mass ratio, anchored against the
// published Falcon 9 capacities where those apply.
package perf_compare

import (
	"context"
	"fmt"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
	"github.com/lvreuse/boostback/internal/uncertainty"
	"github.com/lvreuse/boostback/internal/vehicles"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options selects the strategies to compare; all of them when empty.
type Options struct {
	Strategies []string `hcl:"strategies,optional"`
}

// Validate checks the strategy references at decode time.
func (o *Options) Validate() error {
	for _, name := range o.Strategies {
		if err := strategy.CheckName(name); err != nil {
			return err
		}
	}
	return nil
}

// The model's technology distributions describe the Falcon 9 class, so the
// published Falcon 9 payload fractions anchor these strategies.
var falcon9Anchors = map[string]string{
	"expendable":             "",
	"propulsive_launch_site": "LS",
	"propulsive_downrange":   "DR",
}

func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	strats, err := env.Strategies(o.Strategies)
	if err != nil {
		return nil, err
	}

	ps := report.DefaultQuantiles()
	header := report.QuantileHeader(ps, "strategy", "response")
	var rows [][]string
	headline := map[string]float64{}
	rng := env.NewRNG()
	failures := 0

	for _, st := range strats {
		set := uncertainty.NewSet(st.PerfUncertainties()...)
		model := func(sc uncertainty.Scenario) ([]float64, error) {
			piStar, e1, err := st.EvaluatePerf(sc)
			if err != nil {
				return nil, err
			}
			return []float64{piStar, e1}, nil
		}
		scenarios := set.LatinHypercube(env.Samples, rng)
		table, err := env.Engine.Run(ctx, model, []string{"pi_star", "e_1"}, scenarios)
		if err != nil {
			return nil, err
		}
		failures += table.FailureCount()
		if table.FailureCount() == table.Len() {
			return nil, fmt.Errorf("strategy %s: all %d samples failed: %w",
				st.Name, table.Len(), table.FirstError())
		}

		for _, resp := range []string{"pi_star", "e_1"} {
			qrow, err := table.QuantileRow(resp, ps)
			if err != nil {
				return nil, err
			}
			rows = append(rows, report.QuantileCells(qrow, report.Dimensionless, st.Name, resp))
		}

		p50, err := table.Quantile("pi_star", 0.50)
		if err != nil {
			return nil, err
		}
		headline[st.Name+"_pi_star_p50"] = p50
	}

	if env.Tech.Name == "kerosene_gg" {
		f9 := vehicles.Falcon9Block3Actual()
		for strat, recovery := range falcon9Anchors {
			piStar, err := f9.PayloadActual(env.Mission.Name, recovery)
			if err != nil {
				// No capacity published for this mission and recovery.
				continue
			}
			headline["falcon9_pi_star_"+strat] = piStar
		}
	}

	if err := env.Report.WriteCSV(env.Artifact(""), header, rows); err != nil {
		return nil, err
	}
	return &analysis.Outcome{SampleFailures: failures, Headline: headline}, nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "perf_compare",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
