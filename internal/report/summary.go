package report

import "time"

// Analysis outcome states recorded in the run summary.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Summary is the run record written to summary.json.
type Summary struct {
	RunID           string            `json:"run_id"`
	Study           string            `json:"study"`
	Mission         string            `json:"mission"`
	Technology      string            `json:"technology"`
	Samples         int               `json:"samples"`
	Seed            uint64            `json:"seed"`
	Workers         int               `json:"workers"`
	StartedAt       time.Time         `json:"started_at"`
	DurationSeconds float64           `json:"duration_seconds"`
	Status          string            `json:"status"`
	Analyses        []AnalysisSummary `json:"analyses"`
}

// AnalysisSummary records one analysis's outcome. Headline carries the
// analysis's own key numbers, e.g. a median cost per flight or a minimum
// point of a sweep.
type AnalysisSummary struct {
	Kind            string             `json:"kind"`
	Name            string             `json:"name"`
	Status          string             `json:"status"`
	Error           string             `json:"error,omitempty"`
	Artifacts       []string           `json:"artifacts,omitempty"`
	SampleFailures  int                `json:"sample_failures,omitempty"`
	Headline        map[string]float64 `json:"headline,omitempty"`
	DurationSeconds float64            `json:"duration_seconds"`
}
