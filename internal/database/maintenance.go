package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"netdiag/internal/models"
)

// PruneOldRecords deletes records and finished sessions older than days
func (db *DB) PruneOldRecords(days int) error {
	cutoff := db.cutoff(time.Duration(days) * 24 * time.Hour)

	res, err := db.Exec(`DELETE FROM ping_records WHERE timestamp < ?`, cutoff)
	if err != nil {
		return fmt.Errorf("prune records: %w", err)
	}
	records, _ := res.RowsAffected()

	res, err = db.Exec(`DELETE FROM sessions WHERE status != ? AND started_at < ?`, models.SessionRunning, cutoff)
	if err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}
	sessions, _ := res.RowsAffected()

	logrus.WithFields(logrus.Fields{
		"records":  records,
		"sessions": sessions,
		"cutoff":   cutoff,
	}).Debug("[ DB ] pruned old data")

	// Vacuum to reclaim space (run occasionally)
	if db.now().Day() == 1 {
		if _, err := db.Exec("VACUUM"); err != nil {
			return fmt.Errorf("vacuum: %w", err)
		}
	}

	return nil
}
