package models

import (
	"context"
	"time"
)

// Database interface defines operations for data persistence
type Database interface {
	InsertSession(id, command string) error
	UpdateSessionStatus(id, status string) error
	GetSession(id string) (Session, error)
	SaveRecord(record Record) error
	GetRecent(hours int) ([]Record, error)
	GetByRun(runID string) ([]Record, error)
	GetStats(hours int) ([]Stats, error)
	GetCauseCounts(hours int) ([]CauseCount, error)
	PruneOldRecords(days int) error
	Close() error
}

// Prober runs the OS ping command and returns its captured standard output
type Prober interface {
	Probe(ctx context.Context, host string, count int, timeout time.Duration) (string, error)
}

// ReportGenerator defines report generation operations
type ReportGenerator interface {
	GenerateReport(outputDir string, hours int) error
}
