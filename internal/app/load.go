package app

import (
	"context"
	"fmt"
	"os"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/config"
	"github.com/lvreuse/boostback/internal/ctxlog"
	"github.com/lvreuse/boostback/internal/fsutil"
	"github.com/lvreuse/boostback/internal/strategy"
)

// loadStudies discovers the study files under the configured path, loads
// and validates each one, and decodes every analysis's options against its
// registered kind. A study that fails here never starts running.
func (a *App) loadStudies(ctx context.Context, loader config.Loader) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading studies...", "study_path", a.config.StudyPath)

	paths, err := a.findStudyFiles()
	if err != nil {
		return err
	}
	logger.Debug("Study files discovered.", "count", len(paths))

	known := config.Known{
		Kinds:        a.registry.Kinds(),
		Missions:     strategy.MissionNames(),
		Technologies: strategy.TechPairNames(),
	}

	for _, path := range paths {
		study, decoder, err := loader.Load(ctx, path)
		if err != nil {
			return err
		}
		if a.config.Seed != 0 {
			study.Seed = a.config.Seed
		}
		if err := study.Validate(known); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		ls := &loadedStudy{path: path, study: study, options: make([]any, len(study.Analyses))}
		for i, an := range study.Analyses {
			rn, ok := a.registry.Kind(an.Kind)
			if !ok || rn.NewOptions == nil {
				// Validate already rejected unknown kinds.
				continue
			}
			opts := rn.NewOptions()
			if err := decoder.DecodeOptions(an.Options, opts); err != nil {
				return fmt.Errorf("%s: analysis %s %q: %w", path, an.Kind, an.Name, err)
			}
			if v, ok := opts.(analysis.OptionsValidator); ok {
				if err := v.Validate(); err != nil {
					return fmt.Errorf("%s: analysis %s %q: %w", path, an.Kind, an.Name, err)
				}
			}
			ls.options[i] = opts
		}

		a.studies = append(a.studies, ls)
		logger.Info("Study loaded.", "study", study.Name, "path", path, "analyses", len(study.Analyses))
	}
	return nil
}

// findStudyFiles accepts either one study file or a directory searched
// recursively for .hcl files.
func (a *App) findStudyFiles() ([]string, error) {
	info, err := os.Stat(a.config.StudyPath)
	if err != nil {
		return nil, fmt.Errorf("study path: %w", err)
	}
	if !info.IsDir() {
		return []string{a.config.StudyPath}, nil
	}
	paths, err := fsutil.FindFilesByExtension(a.config.StudyPath, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", a.config.StudyPath, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .hcl study files found under %s", a.config.StudyPath)
	}
	return paths, nil
}
