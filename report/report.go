// Package report turns the metrics bundle into human-facing output:
// a static HTML dashboard and a console summary. No computation happens
// here beyond number formatting — pure substitution into fixed layouts.
package report

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/joblens-org/joblens/metrics"
)

// DashboardFile is the dashboard's output filename.
const DashboardFile = "job_search_dashboard.html"

// Images holds the chart artifact filenames the dashboard references.
type Images struct {
	ApplicationsOverTime  string
	QualityDistribution   string
	InterviewsPerMonth    string
	HighQualityInterviews string
	HighQualityTable      string
	ClosedPositions       string
}

// DefaultImages returns the standard artifact filenames.
func DefaultImages() Images {
	return Images{
		ApplicationsOverTime:  "applications_over_time.png",
		QualityDistribution:   "quality_distribution.png",
		InterviewsPerMonth:    "interviews_per_month.png",
		HighQualityInterviews: "high_quality_interviews_per_month.png",
		HighQualityTable:      "high_quality_interview_table.png",
		ClosedPositions:       "closed_positions_distribution.png",
	}
}

// Data is everything the dashboard template substitutes.
type Data struct {
	GeneratedAt time.Time
	Metrics     metrics.Bundle
	Images      Images
}

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"pct1": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"f2":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(dashboardHTML))

// WriteDashboard renders the static dashboard document to w.
func WriteDashboard(w io.Writer, d Data) error {
	if d.GeneratedAt.IsZero() {
		d.GeneratedAt = time.Now()
	}
	if err := dashboardTmpl.Execute(w, d); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}
