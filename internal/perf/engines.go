package perf

import (
	"fmt"
	"strings"

	"github.com/lvreuse/boostback/internal/units"
)

// Engine sizing accelerations: boosters must add 2 m/s^2 over gravity at
// liftoff, upper stages restart at 10 m/s^2.
const (
	boosterLiftoffAccel = 2.0
	upperStageAccel     = 10.0
)

func boosterThrustToWeight(propellant string) (float64, error) {
	switch {
	case strings.Contains(propellant, "H2"):
		return 50, nil
	case strings.Contains(propellant, "kero"):
		return 80, nil
	}
	return 0, fmt.Errorf("perf: no booster engine thrust/weight data for propellant %q", propellant)
}

func upperThrustToWeight(propellant string) (float64, error) {
	switch {
	case strings.Contains(propellant, "H2"):
		return 33, nil
	case strings.Contains(propellant, "kero"):
		return 63, nil
	}
	return 0, fmt.Errorf("perf: no upper engine thrust/weight data for propellant %q", propellant)
}

// BoosterEngineMass returns the mass of one booster engine sized for a
// vehicle of gross liftoff mass m0 [kg]. The propellant string names the
// fuel/oxidizer combination, e.g. "kerosene/O2".
func BoosterEngineMass(m0 float64, nEngines int, propellant string) (float64, error) {
	tw, err := boosterThrustToWeight(propellant)
	if err != nil {
		return 0, err
	}
	thrust := m0 * (boosterLiftoffAccel + units.G0)
	return thrust / (tw * units.G0 * float64(nEngines)), nil
}

// UpperEngineMass returns the mass of one upper stage engine sized for an
// ignition mass m02 [kg] (stage 2 wet mass plus payload).
func UpperEngineMass(m02 float64, nEngines int, propellant string) (float64, error) {
	tw, err := upperThrustToWeight(propellant)
	if err != nil {
		return 0, err
	}
	thrust := m02 * upperStageAccel
	return thrust / (tw * units.G0 * float64(nEngines)), nil
}
