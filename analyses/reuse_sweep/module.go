// Package reuse_sweep examines how the cost per flight of a reuse strategy
// varies with the first stage's service life, with and without the launch
// rate growing alongside it, against an expendable baseline band.
package reuse_sweep

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/rand"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
)

// A fleet saturates its pads and range slots near one launch a week.
const maxLaunchRate = 50.0

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options names the swept strategy and caps the stage life.
type Options struct {
	Strategy  string `hcl:"strategy"`
	MaxReuses int    `hcl:"max_reuses,optional"`
}

// Validate checks the strategy reference at decode time.
func (o *Options) Validate() error {
	return strategy.CheckName(o.Strategy)
}

func usePoints(maxReuses int) []int {
	points := []int{1, 2, 3, 5, 7, 10, 20, 40, 60, 80, 100}
	var out []int
	for _, p := range points {
		if p <= maxReuses {
			out = append(out, p)
		}
	}
	return out
}

func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	maxReuses := o.MaxReuses
	if maxReuses <= 0 {
		maxReuses = 100
	}
	st, err := strategy.New(o.Strategy, env.Tech, env.Mission)
	if err != nil {
		return nil, err
	}
	if st.PortionRecovered == "none" {
		return nil, fmt.Errorf("strategy %s expends its first stage, nothing to sweep", st.Name)
	}

	header := []string{"variant", "uses", "cpf_p10", "cpf_p50", "cpf_p90"}
	var rows [][]string
	rng := env.NewRNG()
	failures := 0
	minCPF := math.Inf(1)
	minUses := 0

	variants := []struct {
		name    string
		coupled bool
	}{
		{name: "fixed_rate", coupled: false},
		{name: "rate_coupled", coupled: true},
	}
	for _, variant := range variants {
		for _, uses := range usePoints(maxReuses) {
			scenarios := st.Uncertainties().LatinHypercube(env.Samples, rng)
			for _, sc := range scenarios {
				sc["num_reuses_s1"] = float64(uses)
				sc["num_reuses_e1"] = float64(uses)
				if variant.coupled {
					sc["launch_rate"] = math.Min(sc["launch_rate"]*float64(uses), maxLaunchRate)
				}
			}
			table, err := env.Engine.Run(ctx, st.Model(), strategy.ResponseNames(), scenarios)
			if err != nil {
				return nil, err
			}
			failures += table.FailureCount()
			qs, err := table.Quantiles("cost_per_flight", 0.10, 0.50, 0.90)
			if err != nil {
				return nil, fmt.Errorf("%s at %d uses: %w", variant.name, uses, err)
			}
			rows = append(rows, append([]string{variant.name, strconv.Itoa(uses)}, report.Cells(qs...)...))
			if !variant.coupled && qs[1] < minCPF {
				minCPF, minUses = qs[1], uses
			}
		}
	}

	expdQS, expdFailures, err := expendableBand(ctx, env, rng)
	if err != nil {
		return nil, err
	}
	failures += expdFailures
	rows = append(rows, append([]string{"expendable", "1"}, report.Cells(expdQS...)...))

	if err := env.Report.WriteCSV(env.Artifact(""), header, rows); err != nil {
		return nil, err
	}
	return &analysis.Outcome{
		SampleFailures: failures,
		Headline: map[string]float64{
			"min_cpf_p50":        minCPF,
			"min_cpf_uses":       float64(minUses),
			"expendable_cpf_p50": expdQS[1],
		},
	}, nil
}

// expendableBand samples the expendable baseline for the comparison band.
func expendableBand(ctx context.Context, env *analysis.Env, rng *rand.Rand) ([]float64, int, error) {
	expd := strategy.NewExpendable(env.Tech, env.Mission)
	scenarios := expd.Uncertainties().LatinHypercube(env.Samples, rng)
	table, err := env.Engine.Run(ctx, expd.Model(), strategy.ResponseNames(), scenarios)
	if err != nil {
		return nil, 0, err
	}
	qs, err := table.Quantiles("cost_per_flight", 0.10, 0.50, 0.90)
	if err != nil {
		return nil, 0, fmt.Errorf("expendable baseline: %w", err)
	}
	return qs, table.FailureCount(), nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "reuse_sweep",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
