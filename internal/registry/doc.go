// Package registry provides the central index of analysis kinds.
//
// The Registry stores mappings between the kind identifiers used in study
// files (e.g. "strategy_compare") and the compiled Go runners that
// implement them. Analysis packages register themselves through the Module
// interface during application startup, and duplicate registrations panic
// immediately: a kind collision is a programmer error, not a runtime
// condition.
package registry
