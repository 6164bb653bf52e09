package vehicles

import "fmt"

// Published performance tables quote specific impulse against the
// conventional 9.81 m/s^2 rather than standard gravity.
const gPublished = 9.81

// Actual holds the published mass properties of a flown two-stage vehicle.
// Masses are in Mg, exhaust velocities in m/s. Payload capacities are keyed
// by mission, optionally suffixed with the recovery method flown: "_DR" for
// a downrange landing, "_LS" for a launch site return.
type Actual struct {
	Name  string
	Label string

	MS1, MP1 float64 // stage 1 inert and propellant mass
	MS2, MP2 float64 // stage 2 inert and propellant mass

	C1, C2 float64 // stage effective exhaust velocities

	payloads map[string]float64
}

// StageInertMassFraction returns e_i = m_s/(m_s + m_p) for stage 1 or 2.
func (a *Actual) StageInertMassFraction(stage int) (float64, error) {
	switch stage {
	case 1:
		return a.MS1 / (a.MS1 + a.MP1), nil
	case 2:
		return a.MS2 / (a.MS2 + a.MP2), nil
	}
	return 0, fmt.Errorf("%s has no stage %d", a.Name, stage)
}

// StageMassRatio returns y, the loaded mass of the second stage over the
// loaded mass of the first.
func (a *Actual) StageMassRatio() float64 {
	return (a.MS2 + a.MP2) / (a.MS1 + a.MP1)
}

// PayloadActual returns the flown payload fraction pi* for a mission.
// recovery selects the capacity quoted with a recovery penalty: "DR" for a
// downrange landing, "LS" for a launch site return, "" for the expendable
// capacity.
func (a *Actual) PayloadActual(mission, recovery string) (float64, error) {
	key := mission
	if recovery != "" {
		key += "_" + recovery
	}
	mStar, ok := a.payloads[key]
	if !ok {
		return 0, fmt.Errorf("%s has no published payload for %s", a.Name, key)
	}
	mLV := a.MS1 + a.MP1 + a.MS2 + a.MP2
	return mStar / (mStar + mLV), nil
}

func AtlasV401Actual() *Actual {
	return &Actual{
		Name:  "atlas_v_401",
		Label: "Atlas V 401",
		MS1:   21.1, MP1: 284,
		MS2: 2.32, MP2: 20.8,
		C1: 325 * gPublished, C2: 450 * gPublished,
		payloads: map[string]float64{
			"LEO": 9.80,
			"GTO": 4.75,
		},
	}
}

func Falcon9Block3Actual() *Actual {
	return &Actual{
		Name:  "falcon9_block3",
		Label: "Falcon 9 Block 3",
		MS1:   27.2, MP1: 411,
		MS2: 4.5, MP2: 111.5,
		C1: 297 * gPublished, C2: 350 * gPublished,
		payloads: map[string]float64{
			"LEO":    17.4,
			"GTO":    6.4,
			"GTO_DR": 5.282,
			"LEO_LS": 8.43,
		},
	}
}

func DeltaIVMediumActual() *Actual {
	return &Actual{
		Name:  "delta_iv_medium",
		Label: "Delta IV Medium",
		MS1:   28, MP1: 204,
		MS2: 2.78, MP2: 20.41,
		C1: 386 * gPublished, C2: 462 * gPublished,
		payloads: map[string]float64{
			"LEO": 8.8,
			"GTO": 4.54,
		},
	}
}

// Actuals returns the flown vehicles with published mass properties, used to
// anchor the performance model against real hardware.
func Actuals() []*Actual {
	return []*Actual{AtlasV401Actual(), Falcon9Block3Actual(), DeltaIVMediumActual()}
}

// ActualByName returns the named flown vehicle.
func ActualByName(name string) (*Actual, error) {
	for _, a := range Actuals() {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no published data for vehicle %q", name)
}
