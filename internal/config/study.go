package config

import "github.com/hashicorp/hcl/v2"

// DefaultSeed seeds studies that do not carry their own, so two runs of the
// same file stay reproducible.
const DefaultSeed uint64 = 1

// Study is the format-agnostic study model: one sampling setup and the
// analyses to run against it.
type Study struct {
	Name       string
	Samples    int
	Seed       uint64
	Mission    string
	Technology string
	Analyses     []*Analysis
	Missions     []Mission
	Technologies []Technology
}

// Analysis is one analysis block: a registered kind, an instance name, and
// the kind-specific options body. The body is decoded against the kind's
// own options struct at startup.
type Analysis struct {
	Kind    string
	Name    string
	Options hcl.Body
}

// Mission is a custom payload delivery defined in the study file, extending
// the built-in missions.
type Mission struct {
	Name    string
	DV      float64 // mission delta-v, losses included [m/s]
	Payload float64 // payload mass [kg]
}

// Technology is one stage of a custom propulsion pairing defined in the
// study file. A pairing needs one booster and one upper block under the
// same name. C and E are [min, mode, max] triangular ranges.
type Technology struct {
	Name        string
	Stage       string // "booster" or "upper"
	Fuel        string
	Oxidizer    string
	OFMassRatio float64
	Cycle       string
	NumEngines  int
	C           []float64 // exhaust velocity [m/s]
	E           []float64 // inert mass fraction
}
