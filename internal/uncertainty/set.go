package uncertainty

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Set is an ordered collection of uniquely named uncertainties. Order is
// part of the sampling contract: the same seed over the same set reproduces
// the same scenarios.
type Set struct {
	items  []Uncertainty
	byName map[string]int
}

// NewSet builds a set from the given uncertainties. Duplicate names panic.
func NewSet(items ...Uncertainty) *Set {
	s := &Set{byName: make(map[string]int)}
	s.Add(items...)
	return s
}

// Add appends uncertainties to the set. Sets are assembled from static
// model definitions at startup, so a duplicate name panics.
func (s *Set) Add(items ...Uncertainty) {
	for _, u := range items {
		if _, exists := s.byName[u.Name()]; exists {
			panic(fmt.Sprintf("uncertainty %q already in set", u.Name()))
		}
		s.byName[u.Name()] = len(s.items)
		s.items = append(s.items, u)
	}
}

// Len returns the number of uncertainties in the set.
func (s *Set) Len() int { return len(s.items) }

// At returns the i-th uncertainty in insertion order.
func (s *Set) At(i int) Uncertainty { return s.items[i] }

// Get looks an uncertainty up by name.
func (s *Set) Get(name string) (Uncertainty, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

// Names returns the uncertainty names in insertion order.
func (s *Set) Names() []string {
	names := make([]string, len(s.items))
	for i, u := range s.items {
		names[i] = u.Name()
	}
	return names
}

// Modes returns the scenario holding every uncertainty's mode value.
func (s *Set) Modes() Scenario {
	sc := make(Scenario, len(s.items))
	for _, u := range s.items {
		sc[u.Name()] = u.Mode()
	}
	return sc
}

// LatinHypercube draws n stratified samples. Each dimension receives an
// independent permutation of the n strata, so every 1/n quantile band of
// every uncertainty contains exactly one sample.
func (s *Set) LatinHypercube(n int, rng *rand.Rand) []Scenario {
	scenarios := make([]Scenario, n)
	for j := range scenarios {
		scenarios[j] = make(Scenario, len(s.items))
	}
	for _, u := range s.items {
		perm := rng.Perm(n)
		for j := 0; j < n; j++ {
			p := (float64(perm[j]) + rng.Float64()) / float64(n)
			scenarios[j][u.Name()] = u.Quantile(p)
		}
	}
	return scenarios
}
