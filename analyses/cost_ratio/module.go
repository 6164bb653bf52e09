// Package cost_ratio distributes the ratio of a reuse strategy's cost per
// flight to the expendable baseline's, with both models evaluated on the
// same scenarios so shared cost factors cancel out of the ratio.
package cost_ratio

import (
	"context"
	"fmt"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
	"github.com/lvreuse/boostback/internal/uncertainty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options selects the reuse strategy and the missions to compare across.
// With no missions, the study's mission is used alone. Mission names
// resolve at run time, when the study's own mission blocks are in scope.
type Options struct {
	Strategy string   `hcl:"strategy,optional"`
	Missions []string `hcl:"missions,optional"`
}

// Validate checks the strategy reference at decode time.
func (o *Options) Validate() error {
	if o.Strategy == "" {
		return nil
	}
	return strategy.CheckName(o.Strategy)
}

var responses = []string{"cost_ratio", "cpf_reuse", "cpf_expendable"}

func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	name := o.Strategy
	if name == "" {
		name = "propulsive_downrange"
	}
	missions := o.Missions
	if len(missions) == 0 {
		missions = []string{env.Mission.Name}
	}

	header := []string{"mission", "ratio_p05", "ratio_p50", "ratio_p95"}
	rows := make([][]string, 0, len(missions))
	headline := make(map[string]float64, 2*len(missions))
	rng := env.NewRNG()
	failures := 0

	for _, missionName := range missions {
		mission, err := env.ResolveMission(missionName)
		if err != nil {
			return nil, err
		}
		reuse, err := strategy.New(name, env.Tech, mission)
		if err != nil {
			return nil, err
		}
		expd := strategy.NewExpendable(env.Tech, mission)

		// The reuse strategy's set covers every name the expendable model
		// reads, so one draw serves both and the ratio pairs per sample.
		model := func(sc uncertainty.Scenario) ([]float64, error) {
			r, err := reuse.Evaluate(sc)
			if err != nil {
				return nil, err
			}
			e, err := expd.Evaluate(sc)
			if err != nil {
				return nil, err
			}
			return []float64{r.CostPerFlight / e.CostPerFlight, r.CostPerFlight, e.CostPerFlight}, nil
		}

		scenarios := reuse.Uncertainties().LatinHypercube(env.Samples, rng)
		table, err := env.Engine.Run(ctx, model, responses, scenarios)
		if err != nil {
			return nil, err
		}
		failures += table.FailureCount()
		qs, err := table.Quantiles("cost_ratio", 0.05, 0.50, 0.95)
		if err != nil {
			return nil, fmt.Errorf("mission %s: %w", mission.Name, err)
		}

		rows = append(rows, append([]string{mission.Name}, report.Cells(qs...)...))
		headline[mission.Name+"_ratio_p05"] = qs[0]
		headline[mission.Name+"_ratio_p95"] = qs[2]
	}

	if err := env.Report.WriteCSV(env.Artifact(""), header, rows); err != nil {
		return nil, err
	}
	return &analysis.Outcome{SampleFailures: failures, Headline: headline}, nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "cost_ratio",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
