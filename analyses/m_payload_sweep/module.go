// Package m_payload_sweep prices each strategy per kilogram of payload as
// the vehicle scales from a 100 kg smallsat launcher to a 100 Mg heavy
// lifter on the same trajectory.
package m_payload_sweep

import (
	"context"
	"fmt"
	"math"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options selects the strategies to sweep; all of them when empty.
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

// Payload masses in kg, one per decade.
var payloads = []float64{100, 1e3, 10e3, 100e3}

func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	names := o.Strategies
	if len(names) == 0 {
		names = strategy.Names()
	}

	header := []string{"strategy", "payload_kg", "cost_per_kg_p10", "cost_per_kg_p50", "cost_per_kg_p90"}
	var rows [][]string
	rng := env.NewRNG()
	failures := 0
	minCPK := math.Inf(1)
	minPayload := 0.0

	for _, name := range names {
		for _, payload := range payloads {
			mission := strategy.Mission{Name: env.Mission.Name, DV: env.Mission.DV, Payload: payload}
			st, err := strategy.New(name, env.Tech, mission)
			if err != nil {
				return nil, err
			}
			scenarios := st.Uncertainties().LatinHypercube(env.Samples, rng)
			table, err := env.Engine.Run(ctx, st.Model(), strategy.ResponseNames(), scenarios)
			if err != nil {
				return nil, err
			}
			failures += table.FailureCount()
			qs, err := table.Quantiles("cost_per_flight", 0.10, 0.50, 0.90)
			if err != nil {
				return nil, fmt.Errorf("%s at %g kg: %w", name, payload, err)
			}
			for i := range qs {
				qs[i] /= payload
			}
			rows = append(rows, append([]string{name, report.Cell(payload)}, report.Cells(qs...)...))
			if qs[1] < minCPK {
				minCPK, minPayload = qs[1], payload
			}
		}
	}

	if err := env.Report.WriteCSV(env.Artifact(""), header, rows); err != nil {
		return nil, err
	}
	return &analysis.Outcome{
		SampleFailures: failures,
		Headline: map[string]float64{
			"min_cost_per_kg_p50":     minCPK,
			"min_cost_per_kg_payload": minPayload,
		},
	}, nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "m_payload_sweep",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
