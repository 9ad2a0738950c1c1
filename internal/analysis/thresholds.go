package analysis

import "fmt"

// Thresholds holds every cutoff used to derive signals and score confidence
type Thresholds struct {
	HighLossPct         float64 `yaml:"high_loss_pct" json:"high_loss_pct"`
	HighLatencyMs       float64 `yaml:"high_latency_ms" json:"high_latency_ms"`
	UnstableJitterRatio float64 `yaml:"unstable_jitter_ratio" json:"unstable_jitter_ratio"`
	UnstableJitterMs    float64 `yaml:"unstable_jitter_ms" json:"unstable_jitter_ms"`
	UnstableDeviation   float64 `yaml:"unstable_deviation" json:"unstable_deviation"`
	UnstableSpreadMs    float64 `yaml:"unstable_spread_ms" json:"unstable_spread_ms"`

	LossTier1Pct     float64 `yaml:"loss_tier1_pct" json:"loss_tier1_pct"`
	LossTier2Pct     float64 `yaml:"loss_tier2_pct" json:"loss_tier2_pct"`
	JitterTier1Ratio float64 `yaml:"jitter_tier1_ratio" json:"jitter_tier1_ratio"`
	JitterTier1Ms    float64 `yaml:"jitter_tier1_ms" json:"jitter_tier1_ms"`
	JitterTier2Ratio float64 `yaml:"jitter_tier2_ratio" json:"jitter_tier2_ratio"`
	JitterTier2Ms    float64 `yaml:"jitter_tier2_ms" json:"jitter_tier2_ms"`
	LatencyTier1Ms   float64 `yaml:"latency_tier1_ms" json:"latency_tier1_ms"`
	LatencyTier2Ms   float64 `yaml:"latency_tier2_ms" json:"latency_tier2_ms"`

	SmallSampleCount   int     `yaml:"small_sample_count" json:"small_sample_count"`
	SmallSamplePenalty float64 `yaml:"small_sample_penalty" json:"small_sample_penalty"`
	ConfidenceFloor    float64 `yaml:"confidence_floor" json:"confidence_floor"`
}

// DefaultThresholds returns the shipped cutoffs
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighLossPct:         5.0,
		HighLatencyMs:       150.0,
		UnstableJitterRatio: 0.25,
		UnstableJitterMs:    5.0,
		UnstableDeviation:   0.30,
		UnstableSpreadMs:    100.0,

		LossTier1Pct:     15.0,
		LossTier2Pct:     8.0,
		JitterTier1Ratio: 0.50,
		JitterTier1Ms:    12.0,
		JitterTier2Ratio: 0.35,
		JitterTier2Ms:    8.0,
		LatencyTier1Ms:   400.0,
		LatencyTier2Ms:   250.0,

		SmallSampleCount:   20,
		SmallSamplePenalty: 0.20,
		ConfidenceFloor:    0.30,
	}
}

// Validate checks that the thresholds are positive and the tiers ordered
func (t Thresholds) Validate() error {
	positive := map[string]float64{
		"high_loss_pct":         t.HighLossPct,
		"high_latency_ms":       t.HighLatencyMs,
		"unstable_jitter_ratio": t.UnstableJitterRatio,
		"unstable_jitter_ms":    t.UnstableJitterMs,
		"unstable_deviation":    t.UnstableDeviation,
		"unstable_spread_ms":    t.UnstableSpreadMs,
		"loss_tier1_pct":        t.LossTier1Pct,
		"loss_tier2_pct":        t.LossTier2Pct,
		"jitter_tier1_ratio":    t.JitterTier1Ratio,
		"jitter_tier1_ms":       t.JitterTier1Ms,
		"jitter_tier2_ratio":    t.JitterTier2Ratio,
		"jitter_tier2_ms":       t.JitterTier2Ms,
		"latency_tier1_ms":      t.LatencyTier1Ms,
		"latency_tier2_ms":      t.LatencyTier2Ms,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("threshold %s must be positive", name)
		}
	}
	if t.LossTier2Pct > t.LossTier1Pct {
		return fmt.Errorf("loss_tier2_pct must not exceed loss_tier1_pct")
	}
	if t.JitterTier2Ratio > t.JitterTier1Ratio || t.JitterTier2Ms > t.JitterTier1Ms {
		return fmt.Errorf("jitter tier2 must not exceed jitter tier1")
	}
	if t.LatencyTier2Ms > t.LatencyTier1Ms {
		return fmt.Errorf("latency_tier2_ms must not exceed latency_tier1_ms")
	}
	if t.SmallSampleCount < 0 {
		return fmt.Errorf("small_sample_count cannot be negative")
	}
	if t.SmallSamplePenalty < 0 || t.SmallSamplePenalty > 1 {
		return fmt.Errorf("small_sample_penalty must be between 0 and 1")
	}
	if t.ConfidenceFloor < 0 || t.ConfidenceFloor > 1 {
		return fmt.Errorf("confidence_floor must be between 0 and 1")
	}
	return nil
}
