package report

import (
	"fmt"
	"strings"

	"netdiag/internal/analysis"
	"netdiag/internal/models"
)

// FormatRecord renders a short human-readable report of one record
func FormatRecord(r models.Record) string {
	m := r.Metrics
	d := r.Diagnosis

	icon := "✗"
	if d.Cause == models.CauseOK {
		icon = "✓"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s - %s\n", icon, r.Target, strings.ToUpper(string(d.Cause)))
	fmt.Fprintf(&b, "  %s\n", d.Summary)
	fmt.Fprintf(&b, "  Packets: %d/%d (%.1f%% loss)\n", m.Received, m.Sent, m.LossPct)
	fmt.Fprintf(&b, "  Latency: %.1fms (min=%.1f, max=%.1f)\n", m.RTTAvgMs, m.RTTMinMs, m.RTTMaxMs)
	fmt.Fprintf(&b, "  Jitter:  %.2fms\n", m.Jitter)
	fmt.Fprintf(&b, "  Confidence: %.0f%%\n", d.Confidence*100)

	var evidence []string
	for _, field := range analysis.EvidenceFields(d.Cause) {
		if v, ok := d.Evidence[field]; ok {
			evidence = append(evidence, fmt.Sprintf("%s=%s", field, formatValue(v)))
		}
	}
	if len(evidence) > 0 {
		fmt.Fprintf(&b, "  Evidence: %s\n", strings.Join(evidence, ", "))
	}

	return b.String()
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
