// Package schema declares the HCL shapes of a study file. The hcl package
// decodes files into these structs; the config package's format-agnostic
// model is translated from them.
package schema

import "github.com/hashicorp/hcl/v2"

// Analysis represents an `analysis "kind" "name"` block inside a study. Its
// body is the kind's own options schema and stays undecoded until the
// registered runner for that kind claims it.
type Analysis struct {
	Kind string   `hcl:"kind,label"`
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// Study represents a `study` block: the sampling setup shared by every
// analysis, plus the analyses to run.
type Study struct {
	Name       string      `hcl:"name,label"`
	Samples    int         `hcl:"samples"`
	Seed       *uint64     `hcl:"seed,optional"`
	Mission    string      `hcl:"mission"`
	Technology string      `hcl:"technology"`
	Analyses   []*Analysis `hcl:"analysis,block"`
}

// Mission represents a top-level `mission` block defining a custom payload
// delivery in addition to the built-in ones.
type Mission struct {
	Name    string  `hcl:"name,label"`
	DV      float64 `hcl:"dv"`
	Payload float64 `hcl:"payload"`
}

// Technology represents a top-level `technology` block defining one stage of
// a custom propulsion pairing. Two blocks sharing a label, one per stage,
// form a pairing a study can fly in place of a built-in one. c and e are
// [min, mode, max] triangular ranges for the stage's exhaust velocity [m/s]
// and inert mass fraction.
type Technology struct {
	Name        string    `hcl:"name,label"`
	Stage       string    `hcl:"stage"`
	Fuel        string    `hcl:"fuel"`
	Oxidizer    string    `hcl:"oxidizer"`
	OFMassRatio float64   `hcl:"of_mass_ratio"`
	Cycle       string    `hcl:"cycle,optional"`
	NumEngines  int       `hcl:"n_engines"`
	C           []float64 `hcl:"c"`
	E           []float64 `hcl:"e"`
}

// File is the top-level structure of a study file: exactly one study block
// and any number of mission and technology blocks. Anything else is a
// decode error, so typos surface at load time.
type File struct {
	Studies      []*Study      `hcl:"study,block"`
	Missions     []*Mission    `hcl:"mission,block"`
	Technologies []*Technology `hcl:"technology,block"`
}
