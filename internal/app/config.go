package app

import "errors"

// AppConfig holds all the necessary configuration for an App instance to run.
type AppConfig struct {
	// StudyPath points at one study file or a directory searched for them.
	StudyPath string
	// OutDir is the parent of the per-run output directories.
	OutDir string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	Workers         int

	// Seed overrides every loaded study's seed when non-zero.
	Seed uint64

	// List prints the registered kinds and catalogs instead of running.
	List bool
}

// NewConfig validates an AppConfig and fills its defaults.
func NewConfig(cfg AppConfig) (*AppConfig, error) {
	if cfg.StudyPath == "" && !cfg.List {
		return nil, errors.New("StudyPath is a required configuration field and cannot be empty")
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "out"
	}
	if cfg.Workers < 1 {
		cfg.Workers = 10
	}
	return &cfg, nil
}
