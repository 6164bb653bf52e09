package perf

import (
	"math"

	"github.com/lvreuse/boostback/internal/numeric"
)

// Launch-site return model constants.
const (
	flybackGravity   = 9.81               // [m s^-2]
	separationFPA    = 30 * math.Pi / 180 // flight path angle at stage separation
	separationAlt    = 50e3               // [m] altitude of the rocketback burn over the landing site
	rocketbackLosses = 200.0              // [m/s] gravity and steering losses
)

// StageSepVelocity returns the inertial stage separation velocity for a
// first stage burn, net of a fixed 1 km/s gravity and drag loss.
func StageSepVelocity(c1, e1, pi1 float64) float64 {
	return -c1*math.Log(e1+(1-e1)*pi1) - 1000
}

// StageSepRange returns the downrange distance at stage separation [m] from
// the range factor fss [s^2/m] and separation velocity [m/s].
func StageSepRange(fss, vss float64) float64 {
	return fss * vss * vss
}

// RocketbackDV returns the delta-v of the boostback burn that turns a
// separated first stage around and lofts it back to the launch site on a
// ballistic arc. The burn angle is chosen to minimize the turnaround cost.
func RocketbackDV(vss, fss float64) float64 {
	x := StageSepRange(fss, vss)
	burn := func(phi float64) float64 {
		// Ballistic velocity to cover range x, launched at angle phi from
		// separationAlt above the target.
		vrb := math.Sqrt(flybackGravity * x * x /
			(math.Cos(phi) * math.Cos(phi) * (separationAlt + x*math.Tan(phi))))
		// Vector change from the separation state to the rocketback state.
		return math.Sqrt(vrb*vrb + vss*vss - 2*vrb*vss*math.Cos(math.Pi-phi-separationFPA))
	}
	phi := numeric.MinimizeGolden(burn, 5*math.Pi/180, 85*math.Pi/180)
	return burn(phi) + rocketbackLosses
}

// BreguetPropellant returns the cruise propellant mass fraction for flying
// back a range r [m] at speed v [m/s] with lift-to-drag ratio ld on
// air-breathing engines of specific impulse ispAB [s].
func BreguetPropellant(r, v, ld, ispAB float64) float64 {
	return r / (v * ld * ispAB)
}
