package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/lvreuse/boostback/internal/analysis"
	"github.com/lvreuse/boostback/internal/config"
	"github.com/lvreuse/boostback/internal/ctxlog"
	"github.com/lvreuse/boostback/internal/report"
	"github.com/lvreuse/boostback/internal/strategy"
	"github.com/lvreuse/boostback/internal/vehicles"
)

// Run executes every loaded study in order. The first failed study stops
// the run; later studies are not started.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.List {
		a.list()
		return nil
	}

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer()
		defer a.closeHealthcheckServer()
	}

	for _, ls := range a.studies {
		if err := a.runStudy(ctx, ls); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runStudy executes one study into a fresh run directory. A failed analysis
// fails the study and skips the rest; the summary records every analysis
// either way, so a partial run is still accounted for.
func (a *App) runStudy(ctx context.Context, ls *loadedStudy) error {
	study := ls.study
	runID := ulid.Make().String()
	writer, err := report.NewWriter(filepath.Join(a.config.OutDir, study.Name+"-"+runID))
	if err != nil {
		return err
	}

	mission, err := studyMission(study)
	if err != nil {
		return err
	}
	pair, err := studyTech(study)
	if err != nil {
		return err
	}
	missions := make(map[string]strategy.Mission, len(study.Missions))
	for _, m := range study.Missions {
		missions[m.Name] = strategy.Mission{Name: m.Name, DV: m.DV, Payload: m.Payload}
	}

	a.logger.Info("🚀 Starting study run.",
		"study", study.Name, "run_id", runID,
		"mission", mission.Name, "technology", pair.Name,
		"samples", study.Samples, "analyses", len(study.Analyses))
	started := time.Now()

	summary := &report.Summary{
		RunID:      runID,
		Study:      study.Name,
		Mission:    mission.Name,
		Technology: pair.Name,
		Samples:    study.Samples,
		Seed:       study.Seed,
		Workers:    a.config.Workers,
		StartedAt:  started.UTC(),
		Status:     report.StatusOK,
	}

	var firstErr error
	for i, an := range study.Analyses {
		if firstErr != nil {
			summary.Analyses = append(summary.Analyses, report.AnalysisSummary{
				Kind: an.Kind, Name: an.Name, Status: report.StatusSkipped,
			})
			continue
		}
		env := &analysis.Env{
			StudyName: study.Name,
			Kind:      an.Kind,
			Name:      an.Name,
			Mission:   mission,
			Tech:      pair,
			Missions:  missions,
			Samples:   study.Samples,
			Seed:      study.Seed,
			Engine:    a.engine,
			Report:    writer,
		}
		as, err := a.runAnalysis(ctx, env, an, ls.options[i], writer)
		if err != nil {
			firstErr = fmt.Errorf("analysis %s %q: %w", an.Kind, an.Name, err)
		}
		summary.Analyses = append(summary.Analyses, as)
	}

	summary.DurationSeconds = time.Since(started).Seconds()
	if firstErr != nil {
		summary.Status = report.StatusFailed
	}
	if err := writer.WriteSummary(summary); err != nil {
		return err
	}

	a.logger.Info("🏁 Study run finished.",
		"study", study.Name, "status", summary.Status, "dir", writer.Dir(),
		"duration", time.Since(started).Round(time.Millisecond))
	if firstErr != nil {
		return fmt.Errorf("study %q failed: %w", study.Name, firstErr)
	}
	return nil
}

// runAnalysis runs one analysis and records its outcome, duration, and the
// artifacts it added to the run directory.
func (a *App) runAnalysis(ctx context.Context, env *analysis.Env, an *config.Analysis, opts any, writer *report.Writer) (report.AnalysisSummary, error) {
	a.logger.Debug("Running analysis...", "kind", an.Kind, "name", an.Name)
	as := report.AnalysisSummary{Kind: an.Kind, Name: an.Name, Status: report.StatusOK}

	rn, ok := a.registry.Kind(an.Kind)
	if !ok {
		// Unreachable after study validation.
		err := fmt.Errorf("unknown analysis kind %q", an.Kind)
		as.Status, as.Error = report.StatusFailed, err.Error()
		return as, err
	}

	before := len(writer.Artifacts())
	t0 := time.Now()
	outcome, err := rn.Run(ctx, env, opts)
	as.DurationSeconds = time.Since(t0).Seconds()
	as.Artifacts = writer.Artifacts()[before:]

	if err != nil {
		as.Status, as.Error = report.StatusFailed, err.Error()
		a.logger.Error("Analysis failed.", "kind", an.Kind, "name", an.Name, "error", err)
		return as, err
	}
	if outcome != nil {
		as.SampleFailures = outcome.SampleFailures
		as.Headline = outcome.Headline
	}
	a.logger.Info("Analysis finished.",
		"kind", an.Kind, "name", an.Name,
		"artifacts", len(as.Artifacts), "sample_failures", as.SampleFailures,
		"duration", time.Since(t0).Round(time.Millisecond))
	return as, nil
}

// studyMission resolves the study's mission, custom blocks first.
func studyMission(study *config.Study) (strategy.Mission, error) {
	for _, m := range study.Missions {
		if m.Name == study.Mission {
			return strategy.Mission{Name: m.Name, DV: m.DV, Payload: m.Payload}, nil
		}
	}
	return strategy.MissionByName(study.Mission)
}

// studyTech resolves the study's technology pairing, custom blocks first.
// Validation already checked that a custom pairing carries exactly one
// booster and one upper block.
func studyTech(study *config.Study) (strategy.TechPair, error) {
	var booster, upper *config.Technology
	for i := range study.Technologies {
		t := &study.Technologies[i]
		if t.Name != study.Technology {
			continue
		}
		if t.Stage == "booster" {
			booster = t
		} else {
			upper = t
		}
	}
	if booster == nil || upper == nil {
		return strategy.TechPairByName(study.Technology)
	}
	return strategy.NewTechPair(study.Technology, stageSpec(booster), stageSpec(upper))
}

func stageSpec(t *config.Technology) strategy.StageSpec {
	return strategy.StageSpec{
		Stage:       t.Stage,
		Fuel:        t.Fuel,
		Oxidizer:    t.Oxidizer,
		OFMassRatio: t.OFMassRatio,
		Cycle:       t.Cycle,
		NumEngines:  t.NumEngines,
		C:           [3]float64{t.C[0], t.C[1], t.C[2]},
		E:           [3]float64{t.E[0], t.E[1], t.E[2]},
	}
}

// list prints the registered analysis kinds and the built-in catalogs.
func (a *App) list() {
	sections := []struct {
		title string
		names []string
	}{
		{"analysis kinds", a.registry.Kinds()},
		{"strategies", strategy.Names()},
		{"missions", strategy.MissionNames()},
		{"technologies", strategy.TechPairNames()},
		{"reference vehicles", vehicles.Names()},
	}
	for _, s := range sections {
		fmt.Fprintf(a.outW, "%s:\n", s.title)
		for _, name := range s.names {
			fmt.Fprintf(a.outW, "  %s\n", name)
		}
	}
}
