package database

import (
	"database/sql"
	"errors"
	"fmt"

	"netdiag/internal/models"
)

// ErrSessionNotFound is returned when no session has the requested id
var ErrSessionNotFound = errors.New("session not found")

// InsertSession records the start of a command invocation
func (db *DB) InsertSession(id, command string) error {
	query := `
        INSERT INTO sessions (session_id, command, started_at, status)
        VALUES (?, ?, ?, ?)
    `
	if _, err := db.Exec(query, id, command, formatTime(db.now()), models.SessionRunning); err != nil {
		return fmt.Errorf("insert session %s: %w", id, err)
	}
	return nil
}

// UpdateSessionStatus sets the final status and completion time of a session
func (db *DB) UpdateSessionStatus(id, status string) error {
	query := `UPDATE sessions SET status = ?, completed_at = ? WHERE session_id = ?`
	res, err := db.Exec(query, status, formatTime(db.now()), id)
	if err != nil {
		return fmt.Errorf("update session %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update session %s: %w", id, ErrSessionNotFound)
	}
	return nil
}

// GetSession returns one session by id
func (db *DB) GetSession(id string) (models.Session, error) {
	query := `
        SELECT session_id, command, started_at, completed_at, status
        FROM sessions
        WHERE session_id = ?
    `

	var (
		s         models.Session
		started   string
		completed sql.NullString
	)
	err := db.QueryRow(query, id).Scan(&s.ID, &s.Command, &started, &completed, &s.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("get session %s: %w", id, err)
	}

	if s.StartedAt, err = parseTime(started); err != nil {
		return models.Session{}, fmt.Errorf("session %s started_at: %w", id, err)
	}
	if completed.Valid {
		t, err := parseTime(completed.String)
		if err != nil {
			return models.Session{}, fmt.Errorf("session %s completed_at: %w", id, err)
		}
		s.CompletedAt = &t
	}
	return s, nil
}
