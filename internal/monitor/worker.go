package monitor

import (
	"time"

	"github.com/sirupsen/logrus"

	"netdiag/internal/models"
)

// probeWorker probes all targets at the configured interval
func (m *Monitor) probeWorker() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	// Immediate first round
	m.probeAll()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.probeAll()
		}
	}
}

// probeAll probes each target in turn and queues the records
func (m *Monitor) probeAll() {
	for _, target := range m.config.Targets {
		if m.ctx.Err() != nil {
			return
		}
		record, err := m.probe(m.ctx, target)
		if err != nil {
			continue
		}

		select {
		case m.results <- record:
		default:
			logrus.WithField("target", target).Warn("[ MONITOR ] result channel full, dropping record")
		}
	}
}

// processResults saves queued records until the monitor stops
func (m *Monitor) processResults() {
	defer m.wg.Done()

	for {
		select {
		case <-m.ctx.Done():
			m.drainResults()
			return
		case record := <-m.results:
			m.save(record)
		}
	}
}

// drainResults saves whatever is still buffered after cancellation
func (m *Monitor) drainResults() {
	for {
		select {
		case record := <-m.results:
			m.save(record)
		default:
			return
		}
	}
}

func (m *Monitor) save(record models.Record) {
	if err := m.db.SaveRecord(record); err != nil {
		logrus.WithError(err).WithField("target", record.Target).Error("[ DB ] failed to save record")
	}
}
