package analysis

import "netdiag/internal/models"

// causeEvidence lists, per cause, the metric fields that justify the verdict
var causeEvidence = map[models.Cause][]string{
	models.CauseOK:             {"loss_pct", "rtt_avg_ms", "jitter_ratio"},
	models.CauseNoConnectivity: {"sent", "received", "loss_pct"},
	models.CauseHighLoss:       {"loss_pct", "sent", "received"},
	models.CauseUnstableJitter: {"jitter", "jitter_ratio", "rtt_avg_ms"},
	models.CauseHighLatency:    {"rtt_avg_ms", "rtt_min_ms", "rtt_max_ms", "loss_pct"},
}

// EvidenceFields returns the ordered evidence field names for a cause
func EvidenceFields(c models.Cause) []string {
	fields := causeEvidence[c]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// BuildEvidence returns exactly the evidence fields of cause with their values in m
func BuildEvidence(m models.Metrics, c models.Cause) map[string]float64 {
	evidence := make(map[string]float64, len(causeEvidence[c]))
	for _, field := range causeEvidence[c] {
		if v, ok := m.Field(field); ok {
			evidence[field] = v
		}
	}
	return evidence
}
