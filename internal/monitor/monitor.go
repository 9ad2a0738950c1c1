package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"netdiag/internal/analysis"
	"netdiag/internal/config"
	"netdiag/internal/models"
	"netdiag/internal/ping"
)

// Monitor coordinates periodic probing, analysis and persistence
type Monitor struct {
	config   config.Config
	db       models.Database
	prober   models.Prober
	analyzer *analysis.Analyzer
	platform ping.Platform
	runID    string

	results             chan models.Record
	maintenanceInterval time.Duration

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new Monitor. Every record it produces carries runID.
func New(cfg config.Config, db models.Database, prober models.Prober, runID string) (*Monitor, error) {
	platform, err := cfg.PingPlatform()
	if err != nil {
		return nil, fmt.Errorf("monitor platform: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		config:              cfg,
		db:                  db,
		prober:              prober,
		analyzer:            analysis.New(cfg.Thresholds),
		platform:            platform,
		runID:               runID,
		results:             make(chan models.Record, 100),
		maintenanceInterval: time.Hour,
		ctx:                 ctx,
		cancel:              cancel,
	}, nil
}

// Start begins the monitoring process
func (m *Monitor) Start() error {
	logrus.WithFields(logrus.Fields{
		"targets":  m.config.Targets,
		"interval": m.config.Interval,
		"run_id":   m.runID,
	}).Info("[ MONITOR ] starting")

	// Start result processor
	m.wg.Add(1)
	go m.processResults()

	// Targets are probed one after another by a single worker
	m.wg.Add(1)
	go m.probeWorker()

	// Start maintenance routines
	m.wg.Add(1)
	go m.maintenanceWorker()

	return nil
}

// Stop gracefully stops the monitor
func (m *Monitor) Stop() {
	logrus.Info("[ MONITOR ] stopping")
	m.cancel()
}

// Wait blocks until all goroutines finish
func (m *Monitor) Wait() {
	m.wg.Wait()
	logrus.Info("[ MONITOR ] stopped")
}

// RunOnce probes every target once, saves the records directly and returns
// them. Failed targets are logged and skipped.
func (m *Monitor) RunOnce(ctx context.Context) []models.Record {
	var records []models.Record
	for _, target := range m.config.Targets {
		if ctx.Err() != nil {
			break
		}
		record, err := m.probe(ctx, target)
		if err != nil {
			continue
		}
		if err := m.db.SaveRecord(record); err != nil {
			logrus.WithError(err).WithField("target", target).Error("[ DB ] failed to save record")
		}
		records = append(records, record)
	}
	return records
}

// probe runs one ping against target and analyzes its output
func (m *Monitor) probe(ctx context.Context, target string) (models.Record, error) {
	log := logrus.WithField("target", target)
	log.Debug("[ PROBE ] pinging")

	raw, err := m.prober.Probe(ctx, target, m.config.Count, m.config.Timeout)
	if err != nil {
		log.WithError(err).Warn("[ PROBE ] ping failed")
		return models.Record{}, err
	}

	record, err := m.analyzer.Analyze(m.runID, raw, m.platform)
	if err != nil {
		log.WithError(err).Warn("[ PROBE ] could not parse ping output")
		return models.Record{}, err
	}

	log.WithFields(logrus.Fields{
		"cause":      record.Diagnosis.Cause,
		"confidence": record.Diagnosis.Confidence,
		"loss_pct":   record.Metrics.LossPct,
		"rtt_avg_ms": record.Metrics.RTTAvgMs,
	}).Info("[ PROBE ] ", record.Diagnosis.Summary)
	return record, nil
}
