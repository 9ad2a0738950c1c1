package models

import "time"

// Stats represents aggregated diagnosis statistics for a target
type Stats struct {
	Target     string  `json:"target"`
	Records    int     `json:"records"`
	Degraded   int     `json:"degraded"` // records with a cause other than ok
	AvgLossPct float64 `json:"avg_loss_pct"`
	AvgRTT     float64 `json:"avg_rtt_ms"`
	MaxRTT     float64 `json:"max_rtt_ms"`
	AvgJitter  float64 `json:"avg_jitter_ms"`
}

// CauseCount is the number of records diagnosed with a cause for a target
type CauseCount struct {
	Target string `json:"target"`
	Cause  Cause  `json:"cause"`
	Count  int    `json:"count"`
}

// Session tracks one CLI invocation
type Session struct {
	ID          string     `json:"session_id"`
	Command     string     `json:"command"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Status      string     `json:"status"`
}

const (
	SessionRunning   = "running"
	SessionCompleted = "completed"
	SessionFailed    = "failed"
)
