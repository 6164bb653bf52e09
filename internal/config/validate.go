package config

import (
	"fmt"
	"strings"
)

// Known holds the registered name sets a study may reference. Strategy
// references live inside analysis options and are checked when each kind
// decodes its own schema.
type Known struct {
	Kinds        []string
	Missions     []string
	Technologies []string
}

// Validate checks every reference in the study against the known sets and
// its numbers for sanity. All problems are reported at once.
func (s *Study) Validate(known Known) error {
	var errs []string

	if s.Name == "" {
		errs = append(errs, "study has no name")
	}
	if s.Samples < 2 {
		errs = append(errs, fmt.Sprintf("study %q: samples must be at least 2, got %d", s.Name, s.Samples))
	}

	missions := make(map[string]struct{}, len(known.Missions)+len(s.Missions))
	for _, name := range known.Missions {
		missions[name] = struct{}{}
	}
	for _, m := range s.Missions {
		if m.Name == "" {
			errs = append(errs, "mission block has no name")
			continue
		}
		if _, exists := missions[m.Name]; exists {
			errs = append(errs, fmt.Sprintf("mission %q already defined", m.Name))
		}
		missions[m.Name] = struct{}{}
		if m.DV <= 0 {
			errs = append(errs, fmt.Sprintf("mission %q: dv must be positive, got %g", m.Name, m.DV))
		}
		if m.Payload <= 0 {
			errs = append(errs, fmt.Sprintf("mission %q: payload must be positive, got %g", m.Name, m.Payload))
		}
	}

	if _, ok := missions[s.Mission]; !ok {
		errs = append(errs, fmt.Sprintf("study %q: unknown mission %q (known: %s)",
			s.Name, s.Mission, strings.Join(s.missionNames(known), ", ")))
	}

	techs := make(map[string]map[string]int)
	for _, t := range s.Technologies {
		errs = append(errs, t.validate(known)...)
		if t.Name == "" {
			continue
		}
		if techs[t.Name] == nil {
			techs[t.Name] = make(map[string]int)
		}
		techs[t.Name][t.Stage]++
	}
	for name, stages := range techs {
		if stages["booster"] != 1 || stages["upper"] != 1 {
			errs = append(errs, fmt.Sprintf("technology %q needs exactly one booster and one upper block, got %d and %d",
				name, stages["booster"], stages["upper"]))
		}
	}
	if _, custom := techs[s.Technology]; !custom && !contains(known.Technologies, s.Technology) {
		errs = append(errs, fmt.Sprintf("study %q: unknown technology %q (known: %s)",
			s.Name, s.Technology, strings.Join(s.technologyNames(known), ", ")))
	}

	if len(s.Analyses) == 0 {
		errs = append(errs, fmt.Sprintf("study %q declares no analyses", s.Name))
	}
	seen := make(map[string]struct{}, len(s.Analyses))
	for _, a := range s.Analyses {
		if a.Name == "" {
			errs = append(errs, fmt.Sprintf("analysis of kind %q has no name", a.Kind))
		}
		if !contains(known.Kinds, a.Kind) {
			errs = append(errs, fmt.Sprintf("analysis %q: unknown kind %q (known: %s)",
				a.Name, a.Kind, strings.Join(known.Kinds, ", ")))
		}
		key := a.Kind + " " + a.Name
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Sprintf("duplicate analysis %s %q", a.Kind, a.Name))
		}
		seen[key] = struct{}{}
	}

	if len(errs) > 0 {
		return fmt.Errorf("study validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// missionNames lists every mission the study could reference: the known
// built-ins plus its own blocks.
func (s *Study) missionNames(known Known) []string {
	names := append([]string(nil), known.Missions...)
	for _, m := range s.Missions {
		names = append(names, m.Name)
	}
	return names
}

// technologyNames lists every technology the study could reference: the
// known built-ins plus its own blocks.
func (s *Study) technologyNames(known Known) []string {
	names := append([]string(nil), known.Technologies...)
	for name := range techBlockNames(s.Technologies) {
		names = append(names, name)
	}
	return names
}

func techBlockNames(blocks []Technology) map[string]struct{} {
	names := make(map[string]struct{}, len(blocks))
	for _, t := range blocks {
		if t.Name != "" {
			names[t.Name] = struct{}{}
		}
	}
	return names
}

// validate checks one technology block's own fields. Whether the models
// carry data for the fuel and oxidizer is checked when the pairing is
// assembled, where the model packages are in reach.
func (t *Technology) validate(known Known) []string {
	var errs []string
	if t.Name == "" {
		errs = append(errs, "technology block has no name")
	}
	if contains(known.Technologies, t.Name) {
		errs = append(errs, fmt.Sprintf("technology %q shadows a built-in pairing", t.Name))
	}
	if t.Stage != "booster" && t.Stage != "upper" {
		errs = append(errs, fmt.Sprintf("technology %q: stage must be \"booster\" or \"upper\", got %q", t.Name, t.Stage))
	}
	if t.Fuel == "" || t.Oxidizer == "" {
		errs = append(errs, fmt.Sprintf("technology %q: fuel and oxidizer are required", t.Name))
	}
	if t.OFMassRatio <= 0 {
		errs = append(errs, fmt.Sprintf("technology %q: of_mass_ratio must be positive, got %g", t.Name, t.OFMassRatio))
	}
	if t.NumEngines < 1 {
		errs = append(errs, fmt.Sprintf("technology %q: n_engines must be at least 1, got %d", t.Name, t.NumEngines))
	}
	ranges := []struct {
		attr string
		r    []float64
	}{{"c", t.C}, {"e", t.E}}
	for _, tr := range ranges {
		attr, r := tr.attr, tr.r
		if len(r) != 3 {
			errs = append(errs, fmt.Sprintf("technology %q: %s must be [min, mode, max], got %d values", t.Name, attr, len(r)))
			continue
		}
		if !(r[0] <= r[1] && r[1] <= r[2] && r[0] < r[2]) || r[0] <= 0 {
			errs = append(errs, fmt.Sprintf("technology %q: %s range %v is not positive ascending", t.Name, attr, r))
		}
	}
	return errs
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
