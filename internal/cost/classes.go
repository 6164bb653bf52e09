package cost

import "github.com/lvreuse/boostback/internal/uncertainty"

// devFormula selects which correction factors enter an element's
// development cost.
type devFormula int

const (
	// devStandard: f1 * f2 * f3 * f8.
	devStandard devFormula = iota
	// devComplex adds f10 * f11 for stages and other complex elements.
	devComplex
	// devFlyback uses f1 * f3 * f8 * f10 * f11, without the technical
	// quality factor f2.
	devFlyback
)

// prodFormula selects which correction factors enter an element's average
// production cost.
type prodFormula int

const (
	// prodStandard: f4 * f8 * f10 * f11.
	prodStandard prodFormula = iota
	// prodNoF10 omits the past-experience reduction f10; the CERs for
	// these classes already describe modern production.
	prodNoF10
)

// Class is a TRANSCOST element class: nominal CER coefficients, confidence
// intervals for sampling them, and the applicable cost formula variants.
type Class struct {
	Name string
	CER  CERValues

	DevACI, DevXCI   Interval
	ProdACI, ProdXCI Interval

	dev  devFormula
	prod prodFormula
}

// DevDists returns triangular distributions for the development CER
// coefficients of an element with the given tag, named dev_a_<tag> and
// dev_x_<tag>. The nominal coefficient is the mode.
func (c *Class) DevDists(tag string) []uncertainty.Uncertainty {
	return []uncertainty.Uncertainty{
		uncertainty.NewTriangular("dev_a_"+tag, c.DevACI.Lo, c.CER.DevA, c.DevACI.Hi),
		uncertainty.NewTriangular("dev_x_"+tag, c.DevXCI.Lo, c.CER.DevX, c.DevXCI.Hi),
	}
}

// ProdDists returns triangular distributions for the production CER
// coefficients, named prod_a_<tag> and prod_x_<tag>.
func (c *Class) ProdDists(tag string) []uncertainty.Uncertainty {
	return []uncertainty.Uncertainty{
		uncertainty.NewTriangular("prod_a_"+tag, c.ProdACI.Lo, c.CER.ProdA, c.ProdACI.Hi),
		uncertainty.NewTriangular("prod_x_"+tag, c.ProdXCI.Lo, c.CER.ProdX, c.ProdXCI.Hi),
	}
}

// The element class catalog. CER coefficients and confidence intervals
// follow TRANSCOST 8.2; costs in WYr, element masses in kilograms.
var (
	SolidRocketMotor = &Class{
		Name:    "solid rocket motor",
		CER:     CERValues{DevA: 16.8, DevX: 0.54, ProdA: 2.3, ProdX: 0.412},
		DevACI:  Interval{7.742346255021625, 30.026586675011707},
		DevXCI:  Interval{0.4772495, 0.62277953},
		ProdACI: Interval{1.9209268723712933, 2.7710185782712706},
		ProdXCI: Interval{0.38625392, 0.43420692},
		dev:     devStandard,
		prod:    prodNoF10,
	}

	SolidPropellantBooster = &Class{
		Name:    "solid propellant booster",
		CER:     CERValues{DevA: 19.5, DevX: 0.54, ProdA: 2.3, ProdX: 0.412},
		DevACI:  Interval{19.5, 26.8},
		DevXCI:  Interval{0.4772495, 0.62277953},
		ProdACI: Interval{1.9209268723712933, 2.7710185782712706},
		ProdXCI: Interval{0.38625392, 0.43420692},
		dev:     devStandard,
		prod:    prodStandard,
	}

	SolidPropellantVehicleStage = &Class{
		Name:    "solid propellant vehicle stage",
		CER:     CERValues{DevA: 22.4, DevX: 0.54, ProdA: 2.75, ProdX: 0.412},
		DevACI:  Interval{12.823, 52.119},
		DevXCI:  Interval{0.4772495, 0.62277953},
		ProdACI: Interval{2.288, 2.771},
		ProdXCI: Interval{0.38625392, 0.43420692},
		dev:     devStandard,
		prod:    prodStandard,
	}

	CryoLH2TurboFed = &Class{
		Name:    "cryogenic LH2 turbopump-fed engine",
		CER:     CERValues{DevA: 277, DevX: 0.48, ProdA: 3.15, ProdX: 0.535},
		DevACI:  Interval{195.1340728668754, 389.01133900679804},
		DevXCI:  Interval{0.42853851, 0.52827748},
		ProdACI: Interval{2.764, 4.128},
		ProdXCI: Interval{0.49908152, 0.57606891},
		dev:     devStandard,
		prod:    prodStandard,
	}

	StorableTurboFed = &Class{
		Name:    "storable propellant turbopump-fed engine",
		CER:     CERValues{DevA: 277, DevX: 0.48, ProdA: 1.9, ProdX: 0.535},
		DevACI:  Interval{195.1340728668754, 389.01133900679804},
		DevXCI:  Interval{0.42853851, 0.52827748},
		ProdACI: Interval{1.438868469813962, 2.29113324341886},
		ProdXCI: Interval{0.49908152, 0.57606891},
		dev:     devStandard,
		prod:    prodStandard,
	}

	StorablePressureFed = &Class{
		Name:    "storable propellant pressure-fed engine",
		CER:     CERValues{DevA: 167, DevX: 0.35, ProdA: 1.9, ProdX: 0.535},
		DevACI:  Interval{149.75335940452638, 181.67568396416385},
		DevXCI:  Interval{0.3273087, 0.37139749},
		ProdACI: Interval{1.438868469813962, 2.29113324341886},
		ProdXCI: Interval{0.49908152, 0.57606891},
		dev:     devStandard,
		prod:    prodStandard,
	}

	ModernPressureFed = &Class{
		Name:    "modern pressure-fed engine",
		CER:     CERValues{DevA: 167, DevX: 0.35, ProdA: 1.2, ProdX: 0.535},
		DevACI:  Interval{149.75335940452638, 181.67568396416385},
		DevXCI:  Interval{0.3273087, 0.37139749},
		ProdACI: Interval{0.729, 2.089},
		ProdXCI: Interval{0.49908152, 0.57606891},
		dev:     devStandard,
		prod:    prodNoF10,
	}

	ModernTurboFed = &Class{
		Name:    "modern turbopump-fed engine",
		CER:     CERValues{DevA: 277, DevX: 0.48, ProdA: 1.2, ProdX: 0.535},
		DevACI:  Interval{195.1340728668754, 389.01133900679804},
		DevXCI:  Interval{0.42853851, 0.52827748},
		ProdACI: Interval{0.729, 2.089},
		ProdXCI: Interval{0.49908152, 0.57606891},
		dev:     devStandard,
		prod:    prodNoF10,
	}

	TurboJetEngine = &Class{
		Name:    "turbojet engine",
		CER:     CERValues{DevA: 1380, DevX: 0.295, ProdA: 2.29, ProdX: 0.545},
		DevACI:  Interval{462.492874820969, 3640.1151895792027},
		DevXCI:  Interval{0.16479322, 0.43652455},
		ProdACI: Interval{1.484, 3.021},
		ProdXCI: Interval{0.5125299122673098, 0.6584429840182615},
		dev:     devStandard,
		prod:    prodStandard,
	}

	// RamjetEngine has no production CER; TRANSCOST gives development
	// data only. ProdDists must not be called on it.
	RamjetEngine = &Class{
		Name: "ramjet engine",
		CER:  CERValues{DevA: 355, DevX: 0.295},
		dev:  devStandard,
		prod: prodStandard,
	}

	LiquidPropulsionModule = &Class{
		Name:   "liquid propulsion module",
		CER:    CERValues{DevA: 14.2, DevX: 0.577, ProdA: 3.04, ProdX: 0.581},
		DevACI: Interval{6.489031194474779, 28.212166317456276},
		DevXCI: Interval{0.4810022, 0.69573074},
		dev:    devStandard,
		prod:   prodStandard,
	}

	ExpendableBallisticStageStorable = &Class{
		Name:    "expendable ballistic stage, storable propellant",
		CER:     CERValues{DevA: 98.5, DevX: 0.555, ProdA: 1.265, ProdX: 0.59},
		DevACI:  Interval{50.043972009639276, 198.97130393516127},
		DevXCI:  Interval{0.47663718, 0.63094232},
		ProdACI: Interval{0.6424330247666832, 3.0449842761799766},
		ProdXCI: Interval{0.50440936, 0.68569942},
		dev:     devComplex,
		prod:    prodStandard,
	}

	ExpendableBallisticStageLH2 = &Class{
		Name:    "expendable ballistic stage, LH2 propellant",
		CER:     CERValues{DevA: 98.5, DevX: 0.555, ProdA: 1.84, ProdX: 0.59},
		DevACI:  Interval{50.043972009639276, 198.97130393516127},
		DevXCI:  Interval{0.47663718, 0.63094232},
		ProdACI: Interval{1.84, 2.484},
		ProdXCI: Interval{0.50440936, 0.68569942},
		dev:     devComplex,
		prod:    prodStandard,
	}

	ReusableBallisticStageStorable = &Class{
		Name:    "reusable ballistic stage, storable propellant",
		CER:     CERValues{DevA: 803.5, DevX: 0.385, ProdA: 1.265, ProdX: 0.59},
		DevACI:  Interval{490.10542138922403, 1341.7410849306882},
		DevXCI:  Interval{0.34053124, 0.4265368},
		ProdACI: Interval{0.6424330247666832, 3.0449842761799766},
		ProdXCI: Interval{0.50440936, 0.68569942},
		dev:     devComplex,
		prod:    prodStandard,
	}

	ReusableBallisticStageLH2 = &Class{
		Name:    "reusable ballistic stage, LH2 propellant",
		CER:     CERValues{DevA: 803.5, DevX: 0.385, ProdA: 1.84, ProdX: 0.59},
		DevACI:  Interval{490.10542138922403, 1341.7410849306882},
		DevXCI:  Interval{0.34053124, 0.4265368},
		ProdACI: Interval{1.84, 2.484},
		ProdXCI: Interval{0.50440936, 0.68569942},
		dev:     devComplex,
		prod:    prodStandard,
	}

	WingedOrbitalVehicle = &Class{
		Name:   "winged orbital vehicle",
		CER:    CERValues{DevA: 1420, DevX: 0.35, ProdA: 5.83, ProdX: 0.606},
		DevACI: Interval{833.5406027210969, 2373.8200128800067},
		DevXCI: Interval{0.30198781, 0.40052414},
		dev:    devComplex,
		prod:   prodStandard,
	}

	AdvancedAircraft = &Class{
		Name:   "advanced aircraft",
		CER:    CERValues{DevA: 2169, DevX: 0.262, ProdA: 0.357, ProdX: 0.762},
		DevACI: Interval{1138.1882040647638, 3996.4441371072517},
		DevXCI: Interval{0.20291993, 0.3229399},
		dev:    devComplex,
		prod:   prodStandard,
	}

	// VTOStageFlybackVehicle production intervals are 90% confidence, not
	// the 95% used elsewhere; the flyback data set is very small.
	VTOStageFlybackVehicle = &Class{
		Name:    "VTO stage flyback vehicle",
		CER:     CERValues{DevA: 1462, DevX: 0.325, ProdA: 0.357, ProdX: 0.762},
		DevACI:  Interval{135.34253464446792, 15336.623033405793},
		DevXCI:  Interval{0.10541958, 0.5443403},
		ProdACI: Interval{0.0350, 3.32},
		ProdXCI: Interval{0.545, 0.987},
		dev:     devFlyback,
		prod:    prodStandard,
	}

	CrewedBallisticReentryCapsule = &Class{
		Name:   "crewed ballistic reentry capsule",
		CER:    CERValues{DevA: 436, DevX: 0.408, ProdA: 0.16, ProdX: 0.98},
		DevACI: Interval{0.000228800100628152, 772048685.9231286},
		DevXCI: Interval{0, 1},
		dev:    devFlyback,
		prod:   prodStandard,
	}

	CrewedSpaceSystem = &Class{
		Name:   "crewed space system",
		CER:    CERValues{DevA: 1113, DevX: 0.383, ProdA: 0.16, ProdX: 0.98},
		DevACI: Interval{448.81060831506323, 2704.1854749425434},
		DevXCI: Interval{0.29281118, 0.47303145},
		dev:    devStandard,
		prod:   prodStandard,
	}

	// ExpendableTank covers a disposable tank section with little other
	// equipment. The production coefficient is calibrated to the Space
	// Shuttle Super Lightweight Tank: 26.5 Mg, ~300 WYr first unit.
	ExpendableTank = &Class{
		Name:    "expendable tank",
		CER:     CERValues{DevA: 98.5, DevX: 0.555, ProdA: 0.76, ProdX: 0.59},
		DevACI:  Interval{50.043972009639276, 198.97130393516127},
		DevXCI:  Interval{0.47663718, 0.63094232},
		ProdACI: Interval{0.38, 1.52},
		ProdXCI: Interval{0.50440936, 0.68569942},
		dev:     devComplex,
		prod:    prodStandard,
	}
)
