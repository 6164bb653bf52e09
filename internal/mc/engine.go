// Package mc evaluates models over Monte Carlo scenario sets on a bounded
// worker pool and summarizes the resulting response tables.
package mc

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gammazero/workerpool"

	"github.com/lvreuse/boostback/internal/uncertainty"
)

// Model evaluates one scenario into a response vector. The returned slice
// must align with the response names passed to Engine.Run.
type Model func(scenario uncertainty.Scenario) ([]float64, error)

// Progress is a snapshot of the engine's sample counters.
type Progress struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}

// Engine fans scenario evaluations out over a fixed-size worker pool. The
// counters accumulate across runs so a single engine can report whole-run
// progress.
type Engine struct {
	workers int

	total     atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

// NewEngine returns an engine running at most workers evaluations at once.
func NewEngine(workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{workers: workers}
}

// Progress reports the accumulated sample counters.
func (e *Engine) Progress() Progress {
	return Progress{
		Total:     e.total.Load(),
		Completed: e.completed.Load(),
		Failed:    e.failed.Load(),
	}
}

// Run evaluates the model over every scenario. Row j of the returned table
// holds sample j's responses; a sample whose evaluation fails keeps its
// error in the table instead. Workers write disjoint rows, so no locking is
// needed on the hot path.
func (e *Engine) Run(ctx context.Context, model Model, responses []string, scenarios []uncertainty.Scenario) (*Table, error) {
	table := NewTable(responses, len(scenarios))
	e.total.Add(int64(len(scenarios)))

	pool := workerpool.New(e.workers)
	for j := range scenarios {
		j := j
		pool.Submit(func() {
			if err := ctx.Err(); err != nil {
				table.SetError(j, err)
				e.failed.Add(1)
				return
			}
			vals, err := model(scenarios[j])
			if err != nil {
				table.SetError(j, err)
				e.failed.Add(1)
				return
			}
			if err := table.SetRow(j, vals); err != nil {
				table.SetError(j, err)
				e.failed.Add(1)
				return
			}
			e.completed.Add(1)
		})
	}
	pool.StopWait()

	if err := ctx.Err(); err != nil {
		return table, fmt.Errorf("monte carlo run canceled: %w", err)
	}
	return table, nil
}
