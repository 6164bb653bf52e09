// Package stage_mass_ratio_sweep traces payload fraction and staging
// velocity against the stage 2 / stage 1 mass ratio for the study mission,
// expendable and with launch-site recovery. Smaller upper stages push
// staging faster, which is exactly where flyback gets expensive.
package stage_mass_ratio_sweep

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

// Options bounds the mass ratio grid.
type Options struct {
	YMin   float64 `hcl:"y_min,optional"`
	YMax   float64 `hcl:"y_max,optional"`
	Points int     `hcl:"points,optional"`
}

// Point design, matching the delta-v sweep.
const (
	c1 = 3000.0
	c2 = 3500.0
	e1 = 0.06
	e2 = 0.04

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
	yMin, yMax, points := o.YMin, o.YMax, o.Points
	if yMin == 0 {
		yMin = 0.10
	}
	if yMax == 0 {
		yMax = 1.0
	}
	if points == 0 {
		points = 50
	}
	if points < 2 {
		return nil, fmt.Errorf("points must be at least 2, got %d", points)
	}
	if yMax <= yMin {
		return nil, fmt.Errorf("y_max must exceed y_min (got %g..%g)", yMin, yMax)
	}
	dv := env.Mission.DV

	header := []string{
		"y",
		"pi_star_expendable", "v_ss_expendable",
		"pi_star_propulsive_ls", "v_ss_propulsive_ls",
		"pi_star_winged_powered_ls", "v_ss_winged_powered_ls",
	}
	rows := make([][]string, 0, points)
	best := map[string][2]float64{}

	for i := 0; i < points; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		y := yMin + (yMax-yMin)*float64(i)/float64(points-1)
		cells := []float64{y, 0, 0, 0, 0, 0, 0}

		piStar, pi1, _, err := perf.PayloadFixedStagesAll(c1, c2, e1, e2, y, dv)
		switch {
		case err == nil:
			cells[1] = piStar
			cells[2] = perf.StageSepVelocity(c1, e1, pi1)
			if b := best["expendable"]; piStar > b[0] {
				best["expendable"] = [2]float64{piStar, y}
			}
		case !errors.Is(err, perf.ErrUnreachable):
			return nil, fmt.Errorf("expendable at y=%g: %w", y, err)
		}

		res, err := perf.PropulsiveLSPerf(c1, c2, e1, e2, y, dv, aPropulsive, dvEntry, landingMA, landingAccel, fss)
		switch {
		case err == nil:
			cells[3] = res.PiStar
			cells[4] = res.VSS
			if b := best["propulsive_ls"]; res.PiStar > b[0] {
				best["propulsive_ls"] = [2]float64{res.PiStar, y}
			}
		case !errors.Is(err, perf.ErrUnreachable):
			return nil, fmt.Errorf("propulsive launch-site at y=%g: %w", y, err)
		}

		res, err = perf.WingedPoweredLSPerf(c1, c2, e1, e2, y, dv, aWinged, ispAB, vCruise, liftDrag, fss, 1)
		switch {
		case err == nil:
			cells[5] = res.PiStar
			cells[6] = res.VSS
			if b := best["winged_powered_ls"]; res.PiStar > b[0] {
				best["winged_powered_ls"] = [2]float64{res.PiStar, y}
			}
		case !errors.Is(err, perf.ErrUnreachable):
			return nil, fmt.Errorf("winged powered launch-site at y=%g: %w", y, err)
		}

		rows = append(rows, report.Cells(cells...))
	}

	if err := env.Report.WriteCSV(env.Artifact(""), header, rows); err != nil {
		return nil, err
	}
	headline := map[string]float64{}
	for mode, b := range best {
		headline["best_y_"+mode] = b[1]
	}
	return &analysis.Outcome{Headline: headline}, nil
}

// Register registers the analysis kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAnalysis(&analysis.Runner{
		Kind:       "stage_mass_ratio_sweep",
		NewOptions: func() any { return new(Options) },
		Run:        Run,
	})
}
