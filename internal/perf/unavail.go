package perf

import (
	"fmt"
	"math"
)

// UnavailMass returns the effective unavailable mass ratio e1' of a first
// stage that reserves hardware and propellant for recovery.
//
// a is the added recovery hardware over the recovered dry mass, P is the
// recovery propulsion exponent (recovery delta-v over c1), zm the fraction
// of the baseline dry mass that is recovered, and E1 the baseline inert
// mass fraction. The result is clamped to 1: beyond that the whole stage is
// recovery overhead and no propellant remains for ascent.
func UnavailMass(a, P, zm, E1 float64) (float64, error) {
	if err := checkRecoveryParams(a, P, zm, E1); err != nil {
		return 0, err
	}
	chiR := a * zm / (1 - a)
	e1 := (1 + chiR + zm/(1-a)*math.Expm1(P)) / (1 + chiR + (1-E1)/E1)
	return math.Min(e1, 1), nil
}

// InertMasses returns the total and recovered inert masses of a first stage
// with wet mass m1 carrying recovery hardware.
func InertMasses(m1, a, zm, E1 float64) (inert, recovered float64, err error) {
	if err := checkRecoveryParams(a, 0, zm, E1); err != nil {
		return 0, 0, err
	}
	if m1 <= 0 {
		return 0, 0, fmt.Errorf("perf: stage wet mass %g must be positive", m1)
	}
	chiR := a * zm / (1 - a)
	denom := 1 + chiR + (1-E1)/E1
	inert = m1 * (1 + chiR) / denom
	recovered = m1 * (zm + chiR) / denom
	return inert, recovered, nil
}

func checkRecoveryParams(a, P, zm, E1 float64) error {
	switch {
	case a < 0 || a >= 1:
		return fmt.Errorf("perf: recovery hardware factor %g outside [0, 1)", a)
	case P < 0:
		return fmt.Errorf("perf: recovery propulsion exponent %g must be non-negative", P)
	case zm < 0 || zm > 1:
		return fmt.Errorf("perf: recovered dry mass fraction %g outside [0, 1]", zm)
	case E1 <= 0 || E1 >= 1:
		return fmt.Errorf("perf: inert mass fraction %g outside (0, 1)", E1)
	}
	return nil
}
