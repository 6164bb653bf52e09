package perf

import (
	"fmt"
	"math"

	"github.com/lvreuse/boostback/internal/numeric"
)

// Terminal-velocity model constants for a first stage falling base-first
// through the lower atmosphere.
const (
	landingGravity  = 9.81   // [m s^-2]
	soundSpeed      = 342.0  // [m/s] at landing burn altitudes
	scaleHeight     = 8500.0 // [m] exponential atmosphere
	seaLevelDensity = 1.20   // [kg m^-3]
)

// stageDragCoefficient models a cylinder in axial flow through the
// transonic regime.
func stageDragCoefficient(mach float64) float64 {
	if mach < 1 {
		return 0.8 * (1 + math.Pow(mach, 2)/4 + math.Pow(mach, 4)/10)
	}
	return 0.9 * (1.84 - 0.76/math.Pow(mach, 2) + 0.166/math.Pow(mach, 4) + 0.035/math.Pow(mach, 6))
}

// LandingDV returns the delta-v budget of a propulsive vertical landing.
//
// mA is the stage mass over its base area [kg m^-2] and accel the landing
// burn deceleration [m s^-2]. The burn start velocity solves a fixed point:
// the stage falls at terminal velocity evaluated at the altitude where the
// burn must begin to null that same velocity.
func LandingDV(mA, accel float64) (float64, error) {
	if mA <= 0 {
		return 0, fmt.Errorf("perf: stage loading %g kg/m^2 must be positive", mA)
	}
	if accel <= 0 {
		return 0, fmt.Errorf("perf: landing deceleration %g m/s^2 must be positive", accel)
	}

	residual := func(v float64) float64 {
		burnAltitude := v * v / (2 * accel)
		cd := stageDragCoefficient(v / soundSpeed)
		terminal := math.Sqrt(2*mA*landingGravity/(cd*seaLevelDensity)) *
			math.Exp(burnAltitude/(2*scaleHeight))
		return v - terminal
	}

	// The residual has a second, unphysical crossing at hypersonic speeds;
	// scanning upward from rest keeps the subsonic solution.
	lo, hi, err := numeric.BracketRoot(residual, 1, 2000, 400)
	if err != nil {
		return 0, fmt.Errorf("perf: landing burn velocity for m/A=%g, accel=%g: %w", mA, accel, err)
	}
	v, err := numeric.Brent(residual, lo, hi)
	if err != nil {
		return 0, fmt.Errorf("perf: landing burn velocity: %w", err)
	}

	// Gravity losses scale the ideal burn by (1 + g/accel).
	return v * (1 + landingGravity/accel), nil
}
