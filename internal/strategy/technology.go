package strategy

import (
	"fmt"
	"sort"

	"github.com/lvreuse/boostback/internal/cost"
	"github.com/lvreuse/boostback/internal/perf"
	"github.com/lvreuse/boostback/internal/uncertainty"
	"github.com/lvreuse/boostback/internal/units"
)

// Technology describes one stage's propulsion: the propellant combination,
// engine cycle and count, and the uncertain exhaust velocity and inert mass
// fraction the stage achieves with it.
type Technology struct {
	Fuel        string
	Oxidizer    string
	OFMassRatio float64 // oxidizer-to-fuel mass ratio
	Cycle       string
	NumEngines  int
	Stage       string // "booster" or "upper"

	ExhaustVelocity uncertainty.Triangular // c_1 or c_2 [m/s]
	InertFraction   uncertainty.Triangular // E_1 or E_2
}

// Propellant returns the fuel/oxidizer key used by the engine mass
// correlations and the propellant price table.
func (t Technology) Propellant() string { return t.Fuel + "/" + t.Oxidizer }

// Uncertainties returns the technology's sampled parameters.
func (t Technology) Uncertainties() []uncertainty.Uncertainty {
	return []uncertainty.Uncertainty{t.ExhaustVelocity, t.InertFraction}
}

// KeroGGBooster is a kerosene/oxygen gas-generator booster stage with nine
// engines, in the Falcon 9 / Merlin class.
var KeroGGBooster = Technology{
	Fuel:            "kerosene",
	Oxidizer:        "O2",
	OFMassRatio:     2.3,
	Cycle:           "gas generator",
	NumEngines:      9,
	Stage:           "booster",
	ExhaustVelocity: uncertainty.NewTriangular("c_1", 264.6*units.G0, 287.9*units.G0, 305.4*units.G0),
	InertFraction:   uncertainty.NewTriangular("E_1", 0.055, 0.060, 0.065),
}

// KeroGGUpper is a single-engine kerosene/oxygen gas-generator upper stage.
var KeroGGUpper = Technology{
	Fuel:            "kerosene",
	Oxidizer:        "O2",
	OFMassRatio:     2.3,
	Cycle:           "gas generator",
	NumEngines:      1,
	Stage:           "upper",
	ExhaustVelocity: uncertainty.NewTriangular("c_2", 335.2*units.G0, 345.0*units.G0, 348.0*units.G0),
	InertFraction:   uncertainty.NewTriangular("E_2", 0.040, 0.050, 0.060),
}

// H2SCBooster is a hydrogen/oxygen staged-combustion booster stage with nine
// engines.
var H2SCBooster = Technology{
	Fuel:            "H2",
	Oxidizer:        "O2",
	OFMassRatio:     6.0,
	Cycle:           "staged combustion",
	NumEngines:      9,
	Stage:           "booster",
	ExhaustVelocity: uncertainty.NewTriangular("c_1", 369.5*units.G0, 398.1*units.G0, 418.7*units.G0),
	InertFraction:   uncertainty.NewTriangular("E_1", 0.11, 0.12, 0.13),
}

// H2SCUpper is a single-engine hydrogen/oxygen staged-combustion upper stage.
var H2SCUpper = Technology{
	Fuel:            "H2",
	Oxidizer:        "O2",
	OFMassRatio:     6.0,
	Cycle:           "staged combustion",
	NumEngines:      1,
	Stage:           "upper",
	ExhaustVelocity: uncertainty.NewTriangular("c_2", 444.9*units.G0, 458.0*units.G0, 462.0*units.G0),
	InertFraction:   uncertainty.NewTriangular("E_2", 0.080, 0.085, 0.090),
}

// TechPair couples the booster and upper stage technologies a vehicle flies.
type TechPair struct {
	Name    string
	Booster Technology
	Upper   Technology
}

// StageSpec describes one stage of a study-defined technology pairing. C and
// E are [min, mode, max] triangular ranges for the stage's exhaust velocity
// [m/s] and inert mass fraction.
type StageSpec struct {
	Stage       string // "booster" or "upper"
	Fuel        string
	Oxidizer    string
	OFMassRatio float64
	Cycle       string
	NumEngines  int
	C           [3]float64
	E           [3]float64
}

// NewTechnology builds one stage technology from a study-defined spec. The
// propellants must be ones the engine sizing correlations and the propellant
// price table carry data for, so an exotic combination fails here instead of
// inside a Monte Carlo sample.
func NewTechnology(spec StageSpec) (Technology, error) {
	cName, eName := "c_1", "E_1"
	prop := spec.Fuel + "/" + spec.Oxidizer
	switch spec.Stage {
	case "booster":
		if _, err := perf.BoosterEngineMass(1, spec.NumEngines, prop); err != nil {
			return Technology{}, err
		}
	case "upper":
		cName, eName = "c_2", "E_2"
		if _, err := perf.UpperEngineMass(1, spec.NumEngines, prop); err != nil {
			return Technology{}, err
		}
	default:
		return Technology{}, fmt.Errorf("technology stage must be \"booster\" or \"upper\", got %q", spec.Stage)
	}
	if _, err := cost.PropellantsCost(map[string]float64{spec.Fuel: 0, spec.Oxidizer: 0}); err != nil {
		return Technology{}, err
	}
	return Technology{
		Fuel:            spec.Fuel,
		Oxidizer:        spec.Oxidizer,
		OFMassRatio:     spec.OFMassRatio,
		Cycle:           spec.Cycle,
		NumEngines:      spec.NumEngines,
		Stage:           spec.Stage,
		ExhaustVelocity: uncertainty.NewTriangular(cName, spec.C[0], spec.C[1], spec.C[2]),
		InertFraction:   uncertainty.NewTriangular(eName, spec.E[0], spec.E[1], spec.E[2]),
	}, nil
}

// NewTechPair assembles a custom pairing from study-defined stage specs.
func NewTechPair(name string, booster, upper StageSpec) (TechPair, error) {
	if booster.Stage != "booster" || upper.Stage != "upper" {
		return TechPair{}, fmt.Errorf("technology %q: pairing needs one booster and one upper stage spec", name)
	}
	b, err := NewTechnology(booster)
	if err != nil {
		return TechPair{}, fmt.Errorf("technology %q booster: %w", name, err)
	}
	u, err := NewTechnology(upper)
	if err != nil {
		return TechPair{}, fmt.Errorf("technology %q upper: %w", name, err)
	}
	return TechPair{Name: name, Booster: b, Upper: u}, nil
}

var builtinTechPairs = map[string]TechPair{
	"kerosene_gg": {Name: "kerosene_gg", Booster: KeroGGBooster, Upper: KeroGGUpper},
	"hydrogen_sc": {Name: "hydrogen_sc", Booster: H2SCBooster, Upper: H2SCUpper},
}

// TechPairByName returns a built-in technology pairing.
func TechPairByName(name string) (TechPair, error) {
	p, ok := builtinTechPairs[name]
	if !ok {
		return TechPair{}, fmt.Errorf("unknown technology %q", name)
	}
	return p, nil
}

// TechPairs returns the built-in technology pairings sorted by name.
func TechPairs() []TechPair {
	out := make([]TechPair, 0, len(builtinTechPairs))
	for _, p := range builtinTechPairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TechPairNames returns the built-in technology pairing names, sorted.
func TechPairNames() []string {
	names := make([]string, 0, len(builtinTechPairs))
	for name := range builtinTechPairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
