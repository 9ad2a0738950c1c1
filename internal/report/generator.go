package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"netdiag/internal/models"
)

// Generator creates static images and a text summary from stored records
type Generator struct {
	db  models.Database
	now func() time.Time
}

// NewGenerator creates a new report generator
func NewGenerator(db models.Database) *Generator {
	return &Generator{db: db, now: time.Now}
}

// GenerateReport creates a report directory with charts and a summary
func (g *Generator) GenerateReport(outputDir string, hours int) error {
	_, err := g.Generate(outputDir, hours)
	return err
}

// Generate is GenerateReport returning the created report directory
func (g *Generator) Generate(outputDir string, hours int) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := g.now().Format("2006-01-02_15-04-05")
	reportDir := filepath.Join(outputDir, fmt.Sprintf("netdiag_report_%s", timestamp))
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	records, err := g.db.GetRecent(hours)
	if err != nil {
		return "", fmt.Errorf("load records: %w", err)
	}
	log := logrus.WithFields(logrus.Fields{"dir": reportDir, "records": len(records)})

	// Chart failures are logged, the remaining files are still written
	if err := g.generateLatencyCharts(reportDir, records); err != nil {
		log.WithError(err).Warn("[ REPORT ] failed to generate latency charts")
	}

	if err := g.generateCauseChart(reportDir, hours); err != nil {
		log.WithError(err).Warn("[ REPORT ] failed to generate cause chart")
	}

	if err := g.generateConfidenceChart(reportDir, records); err != nil {
		log.WithError(err).Warn("[ REPORT ] failed to generate confidence chart")
	}

	if err := g.generateSummary(reportDir, hours, records); err != nil {
		log.WithError(err).Warn("[ REPORT ] failed to generate summary")
	}

	log.Info("[ REPORT ] report generated")
	return reportDir, nil
}
