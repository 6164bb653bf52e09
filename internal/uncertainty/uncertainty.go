// Package uncertainty defines the named random variables sampled by the
// Monte Carlo analyses, and Latin hypercube sampling over ordered sets of
// them.
package uncertainty

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Scenario maps uncertainty names to sampled values.
type Scenario map[string]float64

// Value returns the named value, or def when the scenario does not carry it.
// Model parameters that a particular strategy never samples keep their
// nominal defaults this way.
func (s Scenario) Value(name string, def float64) float64 {
	if v, ok := s[name]; ok {
		return v
	}
	return def
}

// Uncertainty is a named scalar random variable.
type Uncertainty interface {
	Name() string
	Mode() float64
	Quantile(p float64) float64
	Sample(rng *rand.Rand) float64
}

// Triangular is a triangular distribution on [min, max] with the given mode.
type Triangular struct {
	name string
	dist distuv.Triangle
}

// NewTriangular panics when the bounds are not ordered min <= mode <= max
// with min < max: ranges come from static model tables, so a bad range is a
// programming error.
func NewTriangular(name string, min, mode, max float64) Triangular {
	return Triangular{name: name, dist: distuv.NewTriangle(min, max, mode, nil)}
}

func (t Triangular) Name() string { return t.name }

func (t Triangular) Mode() float64 { return t.dist.Mode() }

func (t Triangular) Quantile(p float64) float64 { return t.dist.Quantile(p) }

// Sample inverts the CDF at a uniform draw so that results depend only on
// the caller's rng stream.
func (t Triangular) Sample(rng *rand.Rand) float64 { return t.dist.Quantile(rng.Float64()) }

// Uniform is a uniform distribution on [min, max].
type Uniform struct {
	name string
	dist distuv.Uniform
}

func NewUniform(name string, min, max float64) Uniform {
	return Uniform{name: name, dist: distuv.Uniform{Min: min, Max: max}}
}

func (u Uniform) Name() string { return u.name }

// Mode returns the midpoint; a flat density has no single mode.
func (u Uniform) Mode() float64 { return (u.dist.Min + u.dist.Max) / 2 }

func (u Uniform) Quantile(p float64) float64 { return u.dist.Quantile(p) }

func (u Uniform) Sample(rng *rand.Rand) float64 { return u.dist.Quantile(rng.Float64()) }
