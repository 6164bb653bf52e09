package strategy

import (
	"fmt"
	"sort"
)

// Mission is a reference payload delivery the launch vehicle must fly.
type Mission struct {
	Name    string
	DV      float64 // mission delta-v, losses included [m/s]
	Payload float64 // payload mass [kg]
}

// LEO is a 400 km circular orbit at 28.7 deg inclination: 8.5 km/s ideal,
// less 0.3 km/s from Earth's rotation, plus 1.65 km/s of losses. GTO adds
// the apogee raise: 10.12 km/s plus the same losses.
var builtinMissions = map[string]Mission{
	"LEO_smallsat": {Name: "LEO_smallsat", DV: 9.85e3, Payload: 100},
	"LEO":          {Name: "LEO", DV: 9.85e3, Payload: 10e3},
	"GTO":          {Name: "GTO", DV: 11.77e3, Payload: 10e3},
}

// MissionByName returns a built-in mission.
func MissionByName(name string) (Mission, error) {
	m, ok := builtinMissions[name]
	if !ok {
		return Mission{}, fmt.Errorf("unknown mission %q", name)
	}
	return m, nil
}

// Missions returns the built-in missions sorted by name.
func Missions() []Mission {
	out := make([]Mission, 0, len(builtinMissions))
	for _, m := range builtinMissions {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// MissionNames returns the built-in mission names, sorted.
func MissionNames() []string {
	names := make([]string, 0, len(builtinMissions))
	for name := range builtinMissions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
