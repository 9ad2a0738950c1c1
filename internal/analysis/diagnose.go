package analysis

import "netdiag/internal/models"

var causeSummary = map[models.Cause]string{
	models.CauseNoConnectivity: "No connectivity detected.",
	models.CauseHighLoss:       "Packet loss is high.",
	models.CauseUnstableJitter: "Connection is unstable (high jitter).",
	models.CauseHighLatency:    "Latency is high.",
	models.CauseOK:             "Connection appears normal.",
}

const unknownSummary = "Unknown or unclassified condition."

// Classify maps signals to a single cause. The first matching rule wins.
func Classify(s models.Signals) models.Cause {
	switch {
	case s.NoReply:
		return models.CauseNoConnectivity
	case s.HighLoss:
		return models.CauseHighLoss
	case s.UnstableJitter:
		return models.CauseUnstableJitter
	case s.HighLatency:
		return models.CauseHighLatency
	default:
		return models.CauseOK
	}
}

// Summary returns the human-readable description of a cause
func Summary(c models.Cause) string {
	if s, ok := causeSummary[c]; ok {
		return s
	}
	return unknownSummary
}

// Diagnose classifies m and scores the verdict
func Diagnose(m models.Metrics, s models.Signals, t Thresholds) models.Diagnosis {
	cause := Classify(s)
	return models.Diagnosis{
		Cause:      cause,
		Summary:    Summary(cause),
		Confidence: Confidence(m, cause, t),
		Evidence:   BuildEvidence(m, cause),
	}
}
