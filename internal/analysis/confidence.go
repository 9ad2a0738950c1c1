package analysis

import (
	"math"

	"netdiag/internal/models"
)

// Confidence scores how strongly m supports cause, in [0, 1]. Runs with fewer
// than SmallSampleCount probes are penalized unless the cause is OK or
// NO_CONNECTIVITY.
func Confidence(m models.Metrics, cause models.Cause, t Thresholds) float64 {
	var c float64
	switch cause {
	case models.CauseOK, models.CauseNoConnectivity:
		c = 1.0
	case models.CauseHighLoss:
		c = tier(m.LossPct >= t.LossTier1Pct, m.LossPct >= t.LossTier2Pct)
	case models.CauseUnstableJitter:
		c = tier(
			m.JitterRatio >= t.JitterTier1Ratio && m.Jitter >= t.JitterTier1Ms,
			m.JitterRatio >= t.JitterTier2Ratio && m.Jitter >= t.JitterTier2Ms,
		)
	case models.CauseHighLatency:
		c = tier(m.RTTAvgMs >= t.LatencyTier1Ms, m.RTTAvgMs >= t.LatencyTier2Ms)
	default:
		c = 0.5
	}

	if m.Sent < t.SmallSampleCount && cause != models.CauseOK && cause != models.CauseNoConnectivity {
		c = math.Max(t.ConfidenceFloor, c-t.SmallSamplePenalty)
	}

	c = math.Min(1.0, math.Max(0.0, c))
	return math.Round(c*100) / 100
}

func tier(first, second bool) float64 {
	switch {
	case first:
		return 0.95
	case second:
		return 0.85
	default:
		return 0.70
	}
}
