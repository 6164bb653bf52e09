// Package strategy_compare ranks the first stage reuse strategies for one
// mission and technology pairing: a Latin hypercube sample of every
// strategy's combined performance and cost model, summarized into quantile
// tables in work-years and 2018 dollars.
package strategy_compare

import (
	"context"
	"fmt"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
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

// Run samples every selected strategy and writes one quantile table row per
// response and unit.
func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	strats, err := env.Strategies(o.Strategies)
	if err != nil {
		return nil, err
	}

	ps := report.DefaultQuantiles()
	header := report.QuantileHeader(ps, "strategy", "response", "unit")
	var rows [][]string
	headline := make(map[string]float64, len(strats))
	rng := env.NewRNG()
	failures := 0

	for _, st := range strats {
		scenarios := st.Uncertainties().LatinHypercube(env.Samples, rng)
		table, err := env.Engine.Run(ctx, st.Model(), strategy.ResponseNames(), scenarios)
		if err != nil {
			return nil, err
		}
		failures += table.FailureCount()
		if table.FailureCount() == table.Len() {
			return nil, fmt.Errorf("strategy %s: all %d samples failed: %w",
				st.Name, table.Len(), table.FirstError())
		}

		for _, resp := range strategy.ResponseNames() {
			qrow, err := table.QuantileRow(resp, ps)
			if err != nil {
				return nil, err
			}
			for _, unit := range unitsFor(resp) {
				rows = append(rows, report.QuantileCells(qrow, unit, st.Name, resp, unit.Name))
			}
		}

		cpf, err := table.Quantile("cost_per_flight", 0.50)
		if err != nil {
			return nil, err
		}
		headline[st.Name+"_cpf_p50"] = cpf
	}

	if err := env.Report.WriteCSV(env.Artifact(""), header, rows); err != nil {
		return nil, err
	}
	return &analysis.Outcome{SampleFailures: failures, Headline: headline}, nil
}

// unitsFor returns the summary units for a response: costs in work-years
// and 2018 dollars, mass fractions dimensionless.
func unitsFor(response string) []report.Unit {
	switch response {
	case "pi_star", "e_1":
		return []report.Unit{report.Dimensionless}
	}
	return report.CostUnits
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "strategy_compare",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
