// Package cost_breakdown decomposes a strategy's cost per flight into its
// stacked components at mode values, swept over the first stage's service
// life or the annual launch rate.
package cost_breakdown

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options selects the strategy and the swept variable.
type Options struct {
	Strategy string `hcl:"strategy,optional"`
	Sweep    string `hcl:"sweep,optional"`
}

// Validate checks the strategy and sweep references at decode time.
func (o *Options) Validate() error {
	if o.Strategy != "" {
		if err := strategy.CheckName(o.Strategy); err != nil {
			return err
		}
	}
	if o.Sweep != "" && o.Sweep != "reuses" && o.Sweep != "launch_rate" {
		return fmt.Errorf("unknown sweep %q (known: launch_rate, reuses)", o.Sweep)
	}
	return nil
}

func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	name := o.Strategy
	if name == "" {
		name = "propulsive_downrange"
	}
	sweep := o.Sweep
	if sweep == "" {
		sweep = "reuses"
	}

	st, err := strategy.New(name, env.Tech, env.Mission)
	if err != nil {
		return nil, err
	}

	var xName string
	var points []int
	switch sweep {
	case "reuses":
		xName = "uses"
		for p := 1; p <= 100; p++ {
			points = append(points, p)
		}
	case "launch_rate":
		xName = "launch_rate"
		for p := 1; p <= 30; p++ {
			points = append(points, p)
		}
	default:
		return nil, fmt.Errorf("unknown sweep %q (known: launch_rate, reuses)", sweep)
	}

	header := []string{
		xName,
		"stage1_prod", "stage2_prod", "veh_int_checkout",
		"ops_less_props_refurb", "props", "refurb",
		"cost_per_flight",
	}
	rows := make([][]string, 0, len(points))
	minCPF := math.Inf(1)
	minAt := 0

	for _, p := range points {
		sc := st.Uncertainties().Modes()
		if sweep == "reuses" {
			sc["num_reuses_s1"] = float64(p)
			sc["num_reuses_e1"] = float64(p)
		} else {
			sc["launch_rate"] = float64(p)
		}
		res, err := st.Evaluate(sc)
		if err != nil {
			return nil, fmt.Errorf("%s at %s=%d: %w", st.Name, xName, p, err)
		}
		opsRemainder := res.OpsCostPerFlight - res.PropsCostPerFlight - res.RefurbCostPerFlight
		rows = append(rows, append([]string{strconv.Itoa(p)}, report.Cells(
			res.Stage1ProdPerFlight,
			res.Stage2ProdPerFlight,
			res.CheckoutPerFlight,
			opsRemainder,
			res.PropsCostPerFlight,
			res.RefurbCostPerFlight,
			res.CostPerFlight,
		)...))
		if res.CostPerFlight < minCPF {
			minCPF, minAt = res.CostPerFlight, p
		}
	}

	if err := env.Report.WriteCSV(env.Artifact(sweep), header, rows); err != nil {
		return nil, err
	}
	return &analysis.Outcome{
		Headline: map[string]float64{
			"min_cpf":    minCPF,
			"min_cpf_at": float64(minAt),
		},
	}, nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "cost_breakdown",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
