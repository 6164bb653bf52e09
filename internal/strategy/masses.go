package strategy

import (
	"fmt"

	"github.com/lvreuse/boostback/internal/perf"
)

// massVariant selects how the first stage inert mass is split between
// recovered hardware, disposed hardware and recovery engines.
type massVariant int

const (
	// massBase: the whole stage is one piece, expendable or recovered.
	massBase massVariant = iota
	// massWingedFull: fully recovered winged stage carrying air-breathing
	// flyback engines.
	massWingedFull
	// massWingedPartial: a winged engine pod flies back, the tank is
	// disposed.
	massWingedPartial
	// massPodPartial: an engine pod comes down on a parachute, the tank is
	// disposed.
	massPodPartial
)

// enginePodZM estimates the mass of an engines-only recovery pod relative to
// the baseline inert mass of the first stage.
func (st *Strategy) enginePodZM(e1 float64) (float64, error) {
	// Engine mass per engine, as a fraction of gross liftoff mass.
	mEng, err := perf.BoosterEngineMass(1, st.tech1.NumEngines, st.tech1.Propellant())
	if err != nil {
		return 0, err
	}
	// Baseline stage 1 inert mass, as a fraction of gross liftoff mass.
	mInert1 := (1 - st.y - 0.02) * e1
	// A few percent extra covers the thrust structure.
	return float64(st.tech1.NumEngines)*mEng/mInert1 + 0.05, nil
}

// massBreakdown splits the gross liftoff mass implied by the payload
// fraction into the element and propellant masses the cost model prices, in
// kg. A scenario whose performance leaves some element with non-positive
// mass is rejected with an error and dropped from the Monte Carlo table.
func (st *Strategy) massBreakdown(piStar, a, e1, e2 float64) (map[string]float64, error) {
	payload := st.mission.Payload
	m0 := payload / piStar
	m1 := (m0 - payload) / (1 + st.y)
	m2 := st.y * (m0 - payload) / (1 + st.y)

	zm := 1.0
	if st.massVar == massWingedPartial || st.massVar == massPodPartial {
		var err error
		zm, err = st.enginePodZM(e1)
		if err != nil {
			return nil, err
		}
	}
	mInert1, mInertRecov1, err := perf.InertMasses(m1, a, zm, e1)
	if err != nil {
		return nil, err
	}
	mInert2 := e2 * m2

	mEng1, err := perf.BoosterEngineMass(m0, st.tech1.NumEngines, st.tech1.Propellant())
	if err != nil {
		return nil, err
	}
	mEng2, err := perf.UpperEngineMass(m2+payload, st.tech2.NumEngines, st.tech2.Propellant())
	if err != nil {
		return nil, err
	}

	out := map[string]float64{
		"m0": m0,
		"s2": mInert2 - float64(st.tech2.NumEngines)*mEng2,
		"e1": mEng1,
		"e2": mEng2,
	}

	rocketEngines := float64(st.tech1.NumEngines) * mEng1
	switch st.massVar {
	case massBase:
		out["s1"] = mInert1 - rocketEngines
	case massWingedFull:
		// Air-breathing engines typically make up 10% of the mass of
		// winged, powered vehicles.
		mAB := mInert1 * 0.10 / float64(st.numAB)
		out["ab"] = mAB
		out["s1"] = mInert1 - rocketEngines - float64(st.numAB)*mAB
	case massWingedPartial:
		// Air-breathing engines typically make up 15-20% of the mass of
		// winged, powered vehicles.
		mAB := mInertRecov1 * 0.17 / float64(st.numAB)
		out["ab"] = mAB
		out["s1"] = mInertRecov1 - rocketEngines - float64(st.numAB)*mAB
		out["d1"] = mInert1 - mInertRecov1
	case massPodPartial:
		out["s1"] = mInertRecov1 - rocketEngines
		out["d1"] = mInert1 - mInertRecov1
	}

	mP1 := m1 - mInert1
	mFuel1 := mP1 / (1 + st.tech1.OFMassRatio)
	mP2 := m2 - mInert2
	mFuel2 := mP2 / (1 + st.tech2.OFMassRatio)

	if st.tech1.Fuel == st.tech2.Fuel {
		out[st.tech1.Fuel] = mFuel1 + mFuel2
	} else {
		out[st.tech1.Fuel] = mFuel1
		out[st.tech2.Fuel] = mFuel2
	}
	if st.tech1.Oxidizer == st.tech2.Oxidizer {
		out[st.tech1.Oxidizer] = (mP1 - mFuel1) + (mP2 - mFuel2)
	} else {
		out[st.tech1.Oxidizer] = mP1 - mFuel1
		out[st.tech2.Oxidizer] = mP2 - mFuel2
	}

	for key, m := range out {
		if m <= 0 {
			return nil, fmt.Errorf("scenario leaves %q with non-positive mass %.1f kg", key, m)
		}
	}
	return out, nil
}
