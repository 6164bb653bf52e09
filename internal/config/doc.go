// Package config defines the format-agnostic study model for the
// application, along with the core interfaces (Loader, Decoder) for loading
// and interpreting studies from various sources.
//
// The `config.Study` is the single source of truth for the `app` package
// and the analysis runners. Concrete implementations of the interfaces,
// such as for HCL, are provided in separate packages.
package config
