package monitor

import (
	"time"

	"github.com/sirupsen/logrus"
)

// maintenanceWorker runs periodic maintenance tasks
func (m *Monitor) maintenanceWorker() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.maintenanceInterval)
	defer ticker.Stop()

	// Run immediately on start
	m.performMaintenance()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.performMaintenance()
		}
	}
}

// performMaintenance drops records past the retention window
func (m *Monitor) performMaintenance() {
	start := time.Now()
	if err := m.db.PruneOldRecords(m.config.RetentionDays); err != nil {
		logrus.WithError(err).Error("[ MAINTENANCE ] failed to prune old records")
		return
	}
	logrus.WithFields(logrus.Fields{
		"retention_days": m.config.RetentionDays,
		"took":           time.Since(start),
	}).Debug("[ MAINTENANCE ] complete")
}
