package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"netdiag/internal/models"
)

var (
	axisStyle = chart.Style{
		StrokeColor: drawing.ColorBlack,
		FontSize:    10,
	}
	gridStyle = chart.Style{
		StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
		StrokeWidth: 1.0,
	}
	padding = chart.Style{
		Padding: chart.Box{
			Top:    20,
			Left:   20,
			Right:  20,
			Bottom: 20,
		},
	}
)

func timeChart(title, yName string, formatter chart.ValueFormatter) chart.Chart {
	return chart.Chart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: padding,
		Width:      1200,
		Height:     400,
		XAxis: chart.XAxis{
			Name: "Time",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style:          axisStyle,
			ValueFormatter: formatter,
		},
		YAxis: chart.YAxis{
			Name: yName,
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style:          axisStyle,
			GridMajorStyle: gridStyle,
		},
	}
}

// generateLatencyCharts writes latency_<target>.png per target with replies
func (g *Generator) generateLatencyCharts(outputDir string, records []models.Record) error {
	replied := func(r models.Record) bool { return r.Metrics.Received > 0 }
	avg := func(r models.Record) float64 { return r.Metrics.RTTAvgMs }

	for _, s := range seriesByTarget(records, replied, avg) {
		if len(s.values) < 2 {
			logrus.WithField("target", s.target).Debug("[ REPORT ] not enough points for a latency chart")
			continue
		}

		graph := timeChart(fmt.Sprintf("Average Latency - %s", s.target), "Latency (ms)", chart.TimeMinuteValueFormatter)
		graph.Series = []chart.Series{
			chart.TimeSeries{
				Name: s.target,
				Style: chart.Style{
					StrokeColor: chart.GetDefaultColor(0),
					StrokeWidth: 2,
				},
				XValues: s.timestamps,
				YValues: s.values,
			},
		}

		// Add moving average
		if len(s.values) > 10 {
			ts := graph.Series[0].(chart.TimeSeries)
			graph.Series = append(graph.Series, chart.SMASeries{
				Name: "Moving Avg",
				Style: chart.Style{
					StrokeColor:     chart.GetDefaultColor(1),
					StrokeWidth:     2,
					StrokeDashArray: []float64{5, 5},
				},
				InnerSeries: ts,
				Period:      10,
			})
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("latency_%s.png", sanitizeFilename(s.target)))
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := graph.Render(chart.PNG, file); err != nil {
			file.Close()
			return fmt.Errorf("render %s: %w", filename, err)
		}
		file.Close()
	}

	return nil
}

// generateCauseChart writes causes.png, a bar per diagnosed cause
func (g *Generator) generateCauseChart(outputDir string, hours int) error {
	counts, err := g.db.GetCauseCounts(hours)
	if err != nil {
		return err
	}

	totals := make(map[models.Cause]int)
	for _, c := range counts {
		totals[c.Cause] += c.Count
	}

	var bars []chart.Value
	for i, cause := range models.Causes() {
		if totals[cause] == 0 {
			continue
		}
		bars = append(bars, chart.Value{
			Label: strings.ToUpper(string(cause)),
			Value: float64(totals[cause]),
			Style: chart.Style{
				FillColor:   chart.GetDefaultColor(i),
				StrokeColor: chart.GetDefaultColor(i),
			},
		})
	}
	if len(bars) == 0 {
		return nil
	}

	graph := chart.BarChart{
		Title: "Diagnoses by Cause",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: padding,
		Width:      1200,
		Height:     400,
		Bars:       bars,
		BarWidth:   80,
		YAxis: chart.YAxis{
			Style: axisStyle,
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(maxTotal(totals)),
			},
		},
	}

	filename := filepath.Join(outputDir, "causes.png")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

// generateConfidenceChart writes confidence.png with one series per target
func (g *Generator) generateConfidenceChart(outputDir string, records []models.Record) error {
	confidence := func(r models.Record) float64 { return r.Diagnosis.Confidence }

	var allSeries []chart.Series
	colorIndex := 0
	for _, s := range seriesByTarget(records, nil, confidence) {
		if len(s.values) < 2 {
			continue
		}
		allSeries = append(allSeries, chart.TimeSeries{
			Name: s.target,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(colorIndex),
				StrokeWidth: 2,
			},
			XValues: s.timestamps,
			YValues: s.values,
		})
		colorIndex++
	}
	if len(allSeries) == 0 {
		return nil
	}

	graph := timeChart("Diagnosis Confidence", "Confidence", chart.TimeHourValueFormatter)
	graph.YAxis.Range = &chart.ContinuousRange{
		Min: 0,
		Max: 1,
	}
	graph.Series = allSeries
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	filename := filepath.Join(outputDir, "confidence.png")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func maxTotal(totals map[models.Cause]int) int {
	most := 0
	for _, n := range totals {
		if n > most {
			most = n
		}
	}
	return most
}
