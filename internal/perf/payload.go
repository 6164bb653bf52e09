// Package perf implements the two-stage launch vehicle performance models:
// payload capacity, first-stage recovery mass penalties, and the recovery
// maneuver delta-v budgets.
//
// Masses are kilograms, velocities m/s. Stage mass ratio y is the stage 2
// wet mass over the stage 1 wet mass.
package perf

import (
	"errors"
	"fmt"
	"math"

	"github.com/lvreuse/boostback/internal/numeric"
)

// ErrUnreachable reports a mission delta-v the vehicle cannot deliver at any
// positive payload mass.
var ErrUnreachable = errors.New("perf: mission delta-v unreachable")

// PayloadFixedStages returns the overall payload mass fraction pi* of a two
// stage vehicle with fixed stage mass ratio y flying a mission of dvMission.
//
// e1 is the first stage unavailable mass ratio (inert mass plus recovery
// propellant over wet mass), e2 the second stage inert mass fraction, c1 and
// c2 the effective exhaust velocities.
func PayloadFixedStages(c1, c2, e1, e2, y, dvMission float64) (float64, error) {
	piStar, _, _, err := payloadSolve(c1, c2, e1, e2, y, dvMission)
	return piStar, err
}

// PayloadFixedStagesAll also returns the stage payload fractions pi1 and
// pi2 (pi* = pi1 * pi2).
func PayloadFixedStagesAll(c1, c2, e1, e2, y, dvMission float64) (piStar, pi1, pi2 float64, err error) {
	return payloadSolve(c1, c2, e1, e2, y, dvMission)
}

func payloadSolve(c1, c2, e1, e2, y, dvMission float64) (piStar, pi1, pi2 float64, err error) {
	switch {
	case c1 <= 0 || c2 <= 0:
		return 0, 0, 0, fmt.Errorf("perf: exhaust velocities must be positive, got c1=%g c2=%g", c1, c2)
	case e1 <= 0 || e1 > 1:
		return 0, 0, 0, fmt.Errorf("perf: stage 1 unavailable mass ratio %g outside (0, 1]", e1)
	case e2 <= 0 || e2 >= 1:
		return 0, 0, 0, fmt.Errorf("perf: stage 2 inert mass fraction %g outside (0, 1)", e2)
	case y <= 0:
		return 0, 0, 0, fmt.Errorf("perf: stage mass ratio %g must be positive", y)
	case dvMission <= 0:
		return 0, 0, 0, fmt.Errorf("perf: mission delta-v %g must be positive", dvMission)
	}

	// pi2 falls to zero at pi1 = y/(1+y), where the vehicle delivers its
	// highest delta-v; at pi1 = 1 it delivers none. dv is monotone
	// decreasing in between, so a feasible mission brackets exactly one
	// root.
	pi1Min := y / (1 + y)
	residual := func(pi1 float64) float64 {
		pi2 := (y + 1) - y/pi1
		dv := -c1*math.Log(e1+(1-e1)*pi1) - c2*math.Log(e2+(1-e2)*pi2)
		return dv - dvMission
	}
	if residual(pi1Min) < 0 {
		dvMax := dvMission + residual(pi1Min)
		return 0, 0, 0, fmt.Errorf("%w: need %.0f m/s, stages top out at %.0f m/s", ErrUnreachable, dvMission, dvMax)
	}

	pi1, err = numeric.Brent(residual, pi1Min, 1)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("perf: payload solve: %w", err)
	}
	pi2 = (y + 1) - y/pi1
	piStar = pi1 * pi2
	if piStar <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: need %.0f m/s, payload fraction vanishes", ErrUnreachable, dvMission)
	}
	return piStar, pi1, pi2, nil
}
