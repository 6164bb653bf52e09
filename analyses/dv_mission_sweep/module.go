// Package dv_mission_sweep traces payload fraction and staging velocity
// against mission delta-v for a fixed point-design vehicle, expendable and
// with launch-site recovery, showing where each recovery mode runs out of
// performance.
package dv_mission_sweep

import (
	"context"
	"errors"
	"fmt"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/perf"
	"github.com/lvreuse/boostback/internal/registry"
	"github.com/lvreuse/boostback/internal/report"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options bounds the delta-v grid.
type Options struct {
	DVMin  float64 `hcl:"dv_min,optional"`
	DVMax  float64 `hcl:"dv_max,optional"`
	Points int     `hcl:"points,optional"`
}

// Point design: kerosene-class exhaust velocities, current inert fractions,
// and a stage 2 / stage 1 mass ratio of 0.25.
const (
	c1 = 3000.0
	c2 = 3500.0
	e1 = 0.06
	e2 = 0.04
	y  = 0.25

	aPropulsive = 0.14
	aWinged     = 0.57

	dvEntry      = 800.0
	landingMA    = 2000.0
	landingAccel = 30.0
	fss          = 0.02
	ispAB        = 3600.0
	vCruise      = 150.0
	liftDrag     = 4.0
)

func Run(ctx context.Context, env *analysis.Env, opts any) (*analysis.Outcome, error) {
	o := opts.(*Options)
	dvMin, dvMax, points := o.DVMin, o.DVMax, o.Points
	if dvMin == 0 {
		dvMin = 9e3
	}
	if dvMax == 0 {
		dvMax = 14e3
	}
	if points == 0 {
		points = 50
	}
	if points < 2 {
		return nil, fmt.Errorf("points must be at least 2, got %d", points)
	}
	if dvMax <= dvMin {
		return nil, fmt.Errorf("dv_max must exceed dv_min (got %g..%g)", dvMin, dvMax)
	}

	header := []string{
		"dv",
		"pi_star_expendable", "v_ss_expendable",
		"pi_star_propulsive_ls", "v_ss_propulsive_ls",
		"pi_star_winged_powered_ls", "v_ss_winged_powered_ls",
	}
	rows := make([][]string, 0, points)
	maxDV := map[string]float64{}

	for i := 0; i < points; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		dv := dvMin + (dvMax-dvMin)*float64(i)/float64(points-1)
		cells := []float64{dv, 0, 0, 0, 0, 0, 0}

		piStar, pi1, _, err := perf.PayloadFixedStagesAll(c1, c2, e1, e2, y, dv)
		switch {
		case err == nil:
			cells[1] = piStar
			cells[2] = perf.StageSepVelocity(c1, e1, pi1)
			maxDV["expendable"] = dv
		case !errors.Is(err, perf.ErrUnreachable):
			return nil, fmt.Errorf("expendable at dv=%g: %w", dv, err)
		}

		res, err := perf.PropulsiveLSPerf(c1, c2, e1, e2, y, dv, aPropulsive, dvEntry, landingMA, landingAccel, fss)
		switch {
		case err == nil:
			cells[3] = res.PiStar
			cells[4] = res.VSS
			maxDV["propulsive_ls"] = dv
		case !errors.Is(err, perf.ErrUnreachable):
			return nil, fmt.Errorf("propulsive launch-site at dv=%g: %w", dv, err)
		}

		res, err = perf.WingedPoweredLSPerf(c1, c2, e1, e2, y, dv, aWinged, ispAB, vCruise, liftDrag, fss, 1)
		switch {
		case err == nil:
			cells[5] = res.PiStar
			cells[6] = res.VSS
			maxDV["winged_powered_ls"] = dv
		case !errors.Is(err, perf.ErrUnreachable):
			return nil, fmt.Errorf("winged powered launch-site at dv=%g: %w", dv, err)
		}

		rows = append(rows, report.Cells(cells...))
	}

	if err := env.Report.WriteCSV(env.Artifact(""), header, rows); err != nil {
		return nil, err
	}
	headline := map[string]float64{}
	for mode, dv := range maxDV {
		headline["max_dv_"+mode] = dv
	}
	return &analysis.Outcome{Headline: headline}, nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "dv_mission_sweep",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
