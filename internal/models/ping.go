package models

import (
	"fmt"
	"time"
)

// ParseResult is the normalized form of one ping invocation's output
type ParseResult struct {
	Address     string    `json:"address"`
	TimesMs     []float64 `json:"times_ms"`
	Sent        int       `json:"sent"`
	Received    int       `json:"received"`
	LossPct     float64   `json:"loss_pct"`
	RTTMinMs    float64   `json:"rtt_min_ms"`
	RTTAvgMs    float64   `json:"rtt_avg_ms"`
	RTTMaxMs    float64   `json:"rtt_max_ms"`
	RTTStdDevMs float64   `json:"rtt_stddev_ms"`
	Jitter      float64   `json:"jitter"`
	JitterRatio float64   `json:"jitter_ratio"`
}

// Metrics holds the numeric fields the analysis works on. It can be built
// from a ParseResult or filled in directly.
type Metrics struct {
	Sent        int     `json:"sent"`
	Received    int     `json:"received"`
	LossPct     float64 `json:"loss_pct"`
	RTTMinMs    float64 `json:"rtt_min_ms"`
	RTTAvgMs    float64 `json:"rtt_avg_ms"`
	RTTMaxMs    float64 `json:"rtt_max_ms"`
	RTTStdDevMs float64 `json:"rtt_stddev_ms"`
	Jitter      float64 `json:"jitter"`
	JitterRatio float64 `json:"jitter_ratio"`
}

var metricFields = map[string]func(Metrics) float64{
	"sent":          func(m Metrics) float64 { return float64(m.Sent) },
	"received":      func(m Metrics) float64 { return float64(m.Received) },
	"loss_pct":      func(m Metrics) float64 { return m.LossPct },
	"rtt_min_ms":    func(m Metrics) float64 { return m.RTTMinMs },
	"rtt_avg_ms":    func(m Metrics) float64 { return m.RTTAvgMs },
	"rtt_max_ms":    func(m Metrics) float64 { return m.RTTMaxMs },
	"rtt_stddev_ms": func(m Metrics) float64 { return m.RTTStdDevMs },
	"jitter":        func(m Metrics) float64 { return m.Jitter },
	"jitter_ratio":  func(m Metrics) float64 { return m.JitterRatio },
}

// Field returns the value of the metric with the given json name
func (m Metrics) Field(name string) (float64, bool) {
	get, ok := metricFields[name]
	if !ok {
		return 0, false
	}
	return get(m), true
}

// Signals are the boolean conditions derived from Metrics
type Signals struct {
	NoReply        bool `json:"no_reply"`
	AnyLoss        bool `json:"any_loss"`
	HighLoss       bool `json:"high_loss"`
	HighLatency    bool `json:"high_latency"`
	UnstableJitter bool `json:"unstable_jitter"`
	// Unstable is informational and is not used for classification.
	Unstable bool `json:"unstable"`
}

// Cause is the classified root cause of a probe run
type Cause string

const (
	CauseOK             Cause = "ok"
	CauseNoConnectivity Cause = "no_connectivity"
	CauseHighLoss       Cause = "high_loss"
	CauseUnstableJitter Cause = "unstable_jitter"
	CauseHighLatency    Cause = "high_latency"
)

// Causes lists every known cause in classifier priority order, OK last
func Causes() []Cause {
	return []Cause{CauseNoConnectivity, CauseHighLoss, CauseUnstableJitter, CauseHighLatency, CauseOK}
}

func (c Cause) String() string { return string(c) }

// Valid reports whether c is one of the known causes
func (c Cause) Valid() bool {
	for _, known := range Causes() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCause converts a stored cause name back into a Cause
func ParseCause(s string) (Cause, error) {
	c := Cause(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown diagnosis cause: %q", s)
	}
	return c, nil
}

// Diagnosis is the verdict for one probe run
type Diagnosis struct {
	Cause      Cause              `json:"cause"`
	Summary    string             `json:"summary"`
	Confidence float64            `json:"confidence"`
	Evidence   map[string]float64 `json:"evidence"`
}

// Record is the final product of analyzing one ping run
type Record struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Target    string    `json:"target"`
	Metrics   Metrics   `json:"metrics"`
	Signals   Signals   `json:"signals"`
	Diagnosis Diagnosis `json:"diagnosis"`
}
