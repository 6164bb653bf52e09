package perf

import (
	"fmt"

	"github.com/lvreuse/boostback/internal/numeric"
)

// Result is the solved performance state of a vehicle with a recoverable
// first stage.
type Result struct {
	PiStar float64 // overall payload mass fraction
	Pi1    float64 // stage 1 payload fraction
	E1     float64 // effective unavailable mass ratio
	VSS    float64 // stage separation velocity [m/s]
}

// RecoveryPropellant maps a stage separation velocity to the recovery
// propulsion exponent P (recovery delta-v over c1).
type RecoveryPropellant func(vss float64) (float64, error)

// CoupledPerf solves the self-consistent (e1, pi1) pair for a recovered
// first stage: the payload solve at a trial e1 fixes the separation
// velocity, the recovery maneuver at that velocity demands propellant, and
// that demand must reproduce the trial e1.
//
// The residual (demanded e1 minus trial e1) starts positive at the
// technology baseline E1 and the feasible e1 range is a prefix, so the scan
// brackets the unique crossing before handing it to the root finder.
func CoupledPerf(a, c1, c2, E1, E2, y, dvMission float64, recovery RecoveryPropellant, zm float64) (Result, error) {
	eval := func(e1 float64) (Result, float64, error) {
		_, pi1, pi2, err := PayloadFixedStagesAll(c1, c2, e1, E2, y, dvMission)
		if err != nil {
			return Result{}, 0, err
		}
		vss := StageSepVelocity(c1, e1, pi1)
		P, err := recovery(vss)
		if err != nil {
			return Result{}, 0, err
		}
		demanded, err := UnavailMass(a, P, zm, E1)
		if err != nil {
			return Result{}, 0, err
		}
		return Result{PiStar: pi1 * pi2, Pi1: pi1, E1: e1, VSS: vss}, demanded - e1, nil
	}

	res, r, err := eval(E1)
	if err != nil {
		return Result{}, fmt.Errorf("perf: recovery solve at baseline e1=%.4f: %w", E1, err)
	}
	if r <= 0 {
		// The maneuver needs no more than the baseline stage already has.
		return res, nil
	}

	const steps = 64
	lo, hi := E1, E1
	bracketed := false
	for i := 1; i <= steps; i++ {
		e1 := E1 + (0.999-E1)*float64(i)/steps
		_, r, err := eval(e1)
		if err != nil {
			// Past the feasible payload range; the residual never crossed.
			break
		}
		hi = e1
		if r <= 0 {
			bracketed = true
			break
		}
		lo = e1
	}
	if !bracketed {
		return Result{}, fmt.Errorf("%w: recovery propellant demand exceeds vehicle capacity (a=%.3f, zm=%.2f)", ErrUnreachable, a, zm)
	}

	var evalErr error
	root, err := numeric.Brent(func(e1 float64) float64 {
		_, r, err := eval(e1)
		if err != nil {
			evalErr = err
			return 0
		}
		return r
	}, lo, hi)
	if err != nil {
		return Result{}, fmt.Errorf("perf: recovery solve: %w", err)
	}
	if evalErr != nil {
		return Result{}, fmt.Errorf("perf: recovery solve: %w", evalErr)
	}

	res, _, err = eval(root)
	if err != nil {
		return Result{}, fmt.Errorf("perf: recovery solve: %w", err)
	}
	return res, nil
}

// PropulsiveLSPerf solves performance for propulsive launch-site recovery:
// rocketback, entry burn, and landing burn all draw on first stage
// propellant, with a 10% margin on the recovery budget.
func PropulsiveLSPerf(c1, c2, E1, E2, y, dvMission, a, dvEntry, landingMA, landingAccel, fss float64) (Result, error) {
	dvLand, err := LandingDV(landingMA, landingAccel)
	if err != nil {
		return Result{}, err
	}
	recovery := func(vss float64) (float64, error) {
		dv := RocketbackDV(vss, fss) + dvEntry + dvLand
		return 1.10 * dv / c1, nil
	}
	return CoupledPerf(a, c1, c2, E1, E2, y, dvMission, recovery, 1)
}

// WingedPoweredLSPerf solves performance for a winged first stage cruising
// back to the launch site on air-breathing engines, with a 10% margin on
// the cruise propellant. zm is the recovered fraction of the baseline dry
// mass (1 for full recovery, the engine pod fraction for partial).
func WingedPoweredLSPerf(c1, c2, E1, E2, y, dvMission, a, ispAB, vCruise, liftDrag, fss, zm float64) (Result, error) {
	recovery := func(vss float64) (float64, error) {
		r := StageSepRange(fss, vss)
		return 1.10 * BreguetPropellant(r, vCruise, liftDrag, ispAB), nil
	}
	return CoupledPerf(a, c1, c2, E1, E2, y, dvMission, recovery, zm)
}
