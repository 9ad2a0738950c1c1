// Package analysis turns parsed ping output into a diagnosed record.
// Every function here is pure over its arguments.
package analysis

import (
	"time"

	"github.com/google/uuid"

	"netdiag/internal/models"
	"netdiag/internal/ping"
)

// BuildMetrics copies the numeric fields of a parse result
func BuildMetrics(r models.ParseResult) models.Metrics {
	return models.Metrics{
		Sent:        r.Sent,
		Received:    r.Received,
		LossPct:     r.LossPct,
		RTTMinMs:    r.RTTMinMs,
		RTTAvgMs:    r.RTTAvgMs,
		RTTMaxMs:    r.RTTMaxMs,
		RTTStdDevMs: r.RTTStdDevMs,
		Jitter:      r.Jitter,
		JitterRatio: r.JitterRatio,
	}
}

// Analyzer runs the parse → metrics → signals → diagnosis pipeline
type Analyzer struct {
	Thresholds Thresholds
	Now        func() time.Time
}

// New creates an Analyzer with the given thresholds
func New(t Thresholds) *Analyzer {
	return &Analyzer{Thresholds: t, Now: time.Now}
}

// Analyze parses raw ping output and builds its record. Parse errors are
// returned unchanged.
func (a *Analyzer) Analyze(runID, raw string, platform ping.Platform) (models.Record, error) {
	result, err := ping.Parse(platform, raw)
	if err != nil {
		return models.Record{}, err
	}
	return a.AnalyzeResult(runID, result), nil
}

// AnalyzeResult builds the record for an already parsed result. An empty
// runID is replaced by a fresh uuid.
func (a *Analyzer) AnalyzeResult(runID string, result models.ParseResult) models.Record {
	if runID == "" {
		runID = uuid.NewString()
	}
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	metrics := BuildMetrics(result)
	signals := BuildSignals(metrics, a.Thresholds)

	return models.Record{
		RunID:     runID,
		Timestamp: now().UTC(),
		Target:    result.Address,
		Metrics:   metrics,
		Signals:   signals,
		Diagnosis: Diagnose(metrics, signals, a.Thresholds),
	}
}
