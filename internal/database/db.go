package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout is how timestamps are stored. Fixed width UTC text compares
// lexicographically in time order.
const timeLayout = "2006-01-02 15:04:05.000"

// DB wraps sql.DB with additional methods
type DB struct {
	*sql.DB
	now func() time.Time
}

// New creates a new database connection
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// Enable WAL mode for better concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA busy_timeout=5000")

	return &DB{DB: db, now: time.Now}, nil
}

// InitSchema creates all necessary tables
func (db *DB) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS sessions (
        session_id TEXT PRIMARY KEY,
        command TEXT NOT NULL,
        started_at TEXT NOT NULL,
        completed_at TEXT,
        status TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS ping_records (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_id TEXT NOT NULL,
        timestamp TEXT NOT NULL,
        target TEXT NOT NULL,

        -- metrics
        sent INTEGER NOT NULL,
        received INTEGER NOT NULL,
        loss_pct REAL NOT NULL,
        rtt_min_ms REAL NOT NULL,
        rtt_avg_ms REAL NOT NULL,
        rtt_max_ms REAL NOT NULL,
        rtt_stddev_ms REAL NOT NULL,
        jitter REAL NOT NULL,
        jitter_ratio REAL NOT NULL,

        -- signals
        no_reply BOOLEAN NOT NULL,
        any_loss BOOLEAN NOT NULL,
        high_loss BOOLEAN NOT NULL,
        high_latency BOOLEAN NOT NULL,
        unstable_jitter BOOLEAN NOT NULL,
        unstable BOOLEAN NOT NULL,

        -- diagnosis
        diagnosis_cause TEXT NOT NULL,
        diagnosis_confidence REAL NOT NULL,
        diagnosis_summary TEXT NOT NULL,
        diagnosis_evidence TEXT NOT NULL -- JSON object
    );

    CREATE INDEX IF NOT EXISTS idx_timestamp ON ping_records(timestamp);
    CREATE INDEX IF NOT EXISTS idx_target_timestamp ON ping_records(target, timestamp);
    CREATE INDEX IF NOT EXISTS idx_run_id ON ping_records(run_id);
    `

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	return nil
}

// cutoff returns the stored form of now minus d
func (db *DB) cutoff(d time.Duration) string {
	return formatTime(db.now().Add(-d))
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.UTC)
}
