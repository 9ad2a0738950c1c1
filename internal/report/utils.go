package report

import (
	"sort"
	"strings"
	"time"

	"netdiag/internal/models"
)

// sanitizeFilename replaces dots and special characters for safe filenames
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		".", "_",
		":", "_",
		"/", "_",
		"\\", "_",
		" ", "_",
	)
	return replacer.Replace(s)
}

// series is one target's values in time order
type series struct {
	target     string
	timestamps []time.Time
	values     []float64
}

// seriesByTarget groups records per target, oldest first, keeping only the
// records accepted by keep. Targets come back sorted by name.
func seriesByTarget(records []models.Record, keep func(models.Record) bool, value func(models.Record) float64) []series {
	sorted := make([]models.Record, 0, len(records))
	for _, r := range records {
		if keep == nil || keep(r) {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	byTarget := make(map[string]*series)
	var names []string
	for _, r := range sorted {
		s, ok := byTarget[r.Target]
		if !ok {
			s = &series{target: r.Target}
			byTarget[r.Target] = s
			names = append(names, r.Target)
		}
		s.timestamps = append(s.timestamps, r.Timestamp)
		s.values = append(s.values, value(r))
	}
	sort.Strings(names)

	out := make([]series, 0, len(names))
	for _, name := range names {
		out = append(out, *byTarget[name])
	}
	return out
}

// latestByTarget returns the newest record of every target, sorted by target
func latestByTarget(records []models.Record) []models.Record {
	latest := make(map[string]models.Record)
	for _, r := range records {
		if cur, ok := latest[r.Target]; !ok || r.Timestamp.After(cur.Timestamp) {
			latest[r.Target] = r
		}
	}
	out := make([]models.Record, 0, len(latest))
	for _, r := range latest {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out
}
