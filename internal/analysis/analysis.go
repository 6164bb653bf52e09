// Package analysis defines the contract between the app and the analysis
// kinds: the Runner a kind registers, the Env a run hands it, and the
// Outcome it reports back into the run summary.
package analysis

import (
	"context"

	"golang.org/x/exp/rand"

	"github.com/lvreuse/boostback/internal/mc"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
)

// Runner is one registered analysis kind. NewOptions returns a fresh
// options struct for the kind's HCL schema; it may be nil when the kind
// takes no options. Run receives the decoded struct back.
type Runner struct {
	Kind       string
	NewOptions func() any
	Run        func(ctx context.Context, env *Env, opts any) (*Outcome, error)
}

// OptionsValidator is implemented by options structs that can check their
// catalog references right after decoding, so a bad study fails at startup
// instead of minutes into a run.
type OptionsValidator interface {
	Validate() error
}

// Outcome is what a completed analysis reports into the run summary:
// how many samples failed, and its own key numbers.
type Outcome struct {
	SampleFailures int
	Headline       map[string]float64
}

// Env is the environment one analysis run receives: the study's resolved
// setup plus the run's shared Monte Carlo engine and report writer. Kind
// and Name identify the analysis instance, so its artifact names stay
// unique within the run directory.
type Env struct {
	StudyName string
	Kind      string
	Name      string

	Mission strategy.Mission
	Tech    strategy.TechPair

	// Missions holds the study's custom mission blocks by name. Built-in
	// missions resolve through the strategy catalog.
	Missions map[string]strategy.Mission

	Samples int
	Seed    uint64
	Engine  *mc.Engine
	Report  *report.Writer
}

// Artifact builds an artifact name from the analysis identity and an
// optional suffix.
func (e *Env) Artifact(suffix string) string {
	name := e.Kind + "-" + e.Name
	if suffix != "" {
		name += "-" + suffix
	}
	return name
}

// ResolveMission looks a mission up by name, custom study missions first.
func (e *Env) ResolveMission(name string) (strategy.Mission, error) {
	if m, ok := e.Missions[name]; ok {
		return m, nil
	}
	return strategy.MissionByName(name)
}

// NewRNG returns a fresh deterministic sample stream. Every analysis draws
// its scenarios from its own stream seeded by the study, so results do not
// depend on analysis order or worker scheduling.
func (e *Env) NewRNG() *rand.Rand {
	return rand.New(rand.NewSource(e.Seed))
}

// Strategies builds the named strategies for the env's mission and
// technology. With no names, every registered strategy is built.
func (e *Env) Strategies(names []string) ([]*strategy.Strategy, error) {
	if len(names) == 0 {
		return strategy.All(e.Tech, e.Mission), nil
	}
	out := make([]*strategy.Strategy, 0, len(names))
	for _, name := range names {
		st, err := strategy.New(name, e.Tech, e.Mission)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}
