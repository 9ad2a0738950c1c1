package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"netdiag/internal/models"
)

func (g *Generator) generateSummary(outputDir string, hours int, records []models.Record) error {
	filename := filepath.Join(outputDir, "summary.txt")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Network Diagnosis Report\n")
	fmt.Fprintf(file, "Generated: %s\n", g.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "Period: Last %d hours\n\n", hours)
	fmt.Fprintln(file, strings.Repeat("=", 60))

	stats, err := g.db.GetStats(hours)
	if err != nil {
		return err
	}

	fmt.Fprintln(file, "\nOVERALL STATISTICS")
	if len(stats) == 0 {
		fmt.Fprintln(file, "No records in this period.")
	}
	for _, s := range stats {
		degraded := 0.0
		if s.Records > 0 {
			degraded = float64(s.Degraded) / float64(s.Records) * 100
		}
		fmt.Fprintf(file, "Target: %s\n", s.Target)
		fmt.Fprintf(file, "  Records: %d\n", s.Records)
		fmt.Fprintf(file, "  Degraded: %d (%.2f%%)\n", s.Degraded, degraded)
		fmt.Fprintf(file, "  Average Loss: %.2f%%\n", s.AvgLossPct)
		fmt.Fprintf(file, "  Average RTT: %.2f ms\n", s.AvgRTT)
		fmt.Fprintf(file, "  Max RTT: %.2f ms\n", s.MaxRTT)
		fmt.Fprintf(file, "  Average Jitter: %.2f ms\n", s.AvgJitter)
		fmt.Fprintln(file)
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))

	counts, err := g.db.GetCauseCounts(hours)
	if err != nil {
		return err
	}

	fmt.Fprintln(file, "\nDIAGNOSES")
	current := ""
	for _, c := range counts {
		if c.Target != current {
			fmt.Fprintf(file, "Target: %s\n", c.Target)
			current = c.Target
		}
		fmt.Fprintf(file, "  %s: %d\n", strings.ToUpper(string(c.Cause)), c.Count)
	}
	if len(counts) == 0 {
		fmt.Fprintln(file, "No diagnoses recorded.")
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))

	fmt.Fprintln(file, "\nLATEST DIAGNOSIS PER TARGET")
	for _, r := range latestByTarget(records) {
		fmt.Fprintf(file, "[%s]\n", r.Timestamp.Format("2006-01-02 15:04:05"))
		fmt.Fprintln(file, FormatRecord(r))
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))
	fmt.Fprintln(file, "\nCharts are available in the accompanying files.")

	return nil
}
