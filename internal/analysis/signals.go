package analysis

import "netdiag/internal/models"

// BuildSignals derives the boolean conditions for m
func BuildSignals(m models.Metrics, t Thresholds) models.Signals {
	return models.Signals{
		NoReply:     m.Received == 0,
		AnyLoss:     m.LossPct > 0.0,
		HighLoss:    m.LossPct >= t.HighLossPct,
		HighLatency: m.RTTAvgMs >= t.HighLatencyMs,
		// both floors are required so low-latency links don't trip on tiny variation
		UnstableJitter: m.JitterRatio >= t.UnstableJitterRatio && m.Jitter >= t.UnstableJitterMs,
		Unstable: m.RTTStdDevMs >= t.UnstableDeviation*m.RTTAvgMs ||
			(m.RTTMaxMs-m.RTTMinMs) >= t.UnstableSpreadMs,
	}
}
