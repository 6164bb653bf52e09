package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/lvreuse/boostback/internal/analysis"
)

// Module is the interface that all analysis modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered analysis runners for a single
// application instance.
type Registry struct {
	runners map[string]*analysis.Runner
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		runners: make(map[string]*analysis.Runner),
	}
}

// RegisterAnalysis registers a runner under its kind identifier.
func (r *Registry) RegisterAnalysis(rn *analysis.Runner) {
	if rn == nil || rn.Kind == "" {
		panic("analysis runner must declare a kind")
	}
	if rn.Run == nil {
		panic(fmt.Sprintf("analysis kind '%s' has no Run function", rn.Kind))
	}
	if _, exists := r.runners[rn.Kind]; exists {
		panic(fmt.Sprintf("analysis kind '%s' already registered", rn.Kind))
	}
	slog.Debug("Registering analysis kind.", "kind", rn.Kind)
	r.runners[rn.Kind] = rn
}

// Kind looks up the runner registered for a kind identifier.
func (r *Registry) Kind(kind string) (*analysis.Runner, bool) {
	rn, ok := r.runners[kind]
	return rn, ok
}

// Kinds returns every registered kind identifier, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.runners))
	for kind := range r.runners {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
