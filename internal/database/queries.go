package database

import (
	"encoding/json"
	"fmt"
	"time"

	"netdiag/internal/models"
)

const recordColumns = `
        run_id, timestamp, target,
        sent, received, loss_pct, rtt_min_ms, rtt_avg_ms, rtt_max_ms, rtt_stddev_ms,
        jitter, jitter_ratio,
        no_reply, any_loss, high_loss, high_latency, unstable_jitter, unstable,
        diagnosis_cause, diagnosis_confidence, diagnosis_summary, diagnosis_evidence`

// SaveRecord saves one analyzed record to the database
func (db *DB) SaveRecord(r models.Record) error {
	evidence, err := json.Marshal(r.Diagnosis.Evidence)
	if err != nil {
		return fmt.Errorf("encode evidence: %w", err)
	}

	query := `INSERT INTO ping_records (` + recordColumns + `)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = db.Exec(query,
		r.RunID,
		formatTime(r.Timestamp),
		r.Target,
		r.Metrics.Sent,
		r.Metrics.Received,
		r.Metrics.LossPct,
		r.Metrics.RTTMinMs,
		r.Metrics.RTTAvgMs,
		r.Metrics.RTTMaxMs,
		r.Metrics.RTTStdDevMs,
		r.Metrics.Jitter,
		r.Metrics.JitterRatio,
		r.Signals.NoReply,
		r.Signals.AnyLoss,
		r.Signals.HighLoss,
		r.Signals.HighLatency,
		r.Signals.UnstableJitter,
		r.Signals.Unstable,
		string(r.Diagnosis.Cause),
		r.Diagnosis.Confidence,
		r.Diagnosis.Summary,
		string(evidence),
	)
	if err != nil {
		return fmt.Errorf("save record for %s: %w", r.Target, err)
	}
	return nil
}

// GetRecent retrieves records from the last hours, newest first
func (db *DB) GetRecent(hours int) ([]models.Record, error) {
	query := `SELECT ` + recordColumns + `
        FROM ping_records
        WHERE timestamp > ?
        ORDER BY timestamp DESC, id DESC
        LIMIT 10000
    `
	return db.queryRecords(query, db.cutoff(time.Duration(hours)*time.Hour))
}

// GetByRun retrieves every record written under one run id, oldest first
func (db *DB) GetByRun(runID string) ([]models.Record, error) {
	query := `SELECT ` + recordColumns + `
        FROM ping_records
        WHERE run_id = ?
        ORDER BY timestamp ASC, id ASC
    `
	return db.queryRecords(query, runID)
}

func (db *DB) queryRecords(query string, args ...any) ([]models.Record, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var (
			r        models.Record
			ts       string
			cause    string
			evidence string
		)
		err := rows.Scan(
			&r.RunID, &ts, &r.Target,
			&r.Metrics.Sent, &r.Metrics.Received, &r.Metrics.LossPct,
			&r.Metrics.RTTMinMs, &r.Metrics.RTTAvgMs, &r.Metrics.RTTMaxMs, &r.Metrics.RTTStdDevMs,
			&r.Metrics.Jitter, &r.Metrics.JitterRatio,
			&r.Signals.NoReply, &r.Signals.AnyLoss, &r.Signals.HighLoss,
			&r.Signals.HighLatency, &r.Signals.UnstableJitter, &r.Signals.Unstable,
			&cause, &r.Diagnosis.Confidence, &r.Diagnosis.Summary, &evidence,
		)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if r.Timestamp, err = parseTime(ts); err != nil {
			return nil, fmt.Errorf("record timestamp: %w", err)
		}
		r.Diagnosis.Cause = models.Cause(cause)
		if err := json.Unmarshal([]byte(evidence), &r.Diagnosis.Evidence); err != nil {
			return nil, fmt.Errorf("decode evidence: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// GetStats retrieves aggregated statistics per target
func (db *DB) GetStats(hours int) ([]models.Stats, error) {
	query := `
        SELECT
            target,
            COUNT(*) as records,
            SUM(CASE WHEN diagnosis_cause != 'ok' THEN 1 ELSE 0 END) as degraded,
            COALESCE(AVG(loss_pct), 0) as avg_loss,
            COALESCE(AVG(CASE WHEN received > 0 THEN rtt_avg_ms ELSE NULL END), 0) as avg_rtt,
            COALESCE(MAX(CASE WHEN received > 0 THEN rtt_max_ms ELSE NULL END), 0) as max_rtt,
            COALESCE(AVG(CASE WHEN received > 0 THEN jitter ELSE NULL END), 0) as avg_jitter
        FROM ping_records
        WHERE timestamp > ?
        GROUP BY target
        ORDER BY target
    `

	rows, err := db.Query(query, db.cutoff(time.Duration(hours)*time.Hour))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.Stats{}
	for rows.Next() {
		var s models.Stats
		if err := rows.Scan(&s.Target, &s.Records, &s.Degraded, &s.AvgLossPct, &s.AvgRTT, &s.MaxRTT, &s.AvgJitter); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// GetCauseCounts counts diagnoses per target and cause
func (db *DB) GetCauseCounts(hours int) ([]models.CauseCount, error) {
	query := `
        SELECT target, diagnosis_cause, COUNT(*)
        FROM ping_records
        WHERE timestamp > ?
        GROUP BY target, diagnosis_cause
        ORDER BY target, diagnosis_cause
    `

	rows, err := db.Query(query, db.cutoff(time.Duration(hours)*time.Hour))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.CauseCount{}
	for rows.Next() {
		var (
			c     models.CauseCount
			cause string
		)
		if err := rows.Scan(&c.Target, &cause, &c.Count); err != nil {
			return nil, fmt.Errorf("scan cause count: %w", err)
		}
		c.Cause = models.Cause(cause)
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
