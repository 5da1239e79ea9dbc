package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/joblens-org/joblens/chartkit"
	"github.com/joblens-org/joblens/config"
	"github.com/joblens-org/joblens/helpers"
	"github.com/joblens-org/joblens/logging"
	"github.com/joblens-org/joblens/metrics"
	"github.com/joblens-org/joblens/record"
	"github.com/joblens-org/joblens/report"
)

// ============================================================================
// JOBLENS CLI — one-shot job-application analysis
// ============================================================================
// Pipeline: load the CSV once → compute the full metric bundle → render
// the chart artifacts → write the HTML dashboard → print the console
// summary. Every run overwrites the previous artifacts; identical input
// produces identical output.
// ============================================================================

const version = "1.0.0"

// Row tints for the high-quality interview table, best tier first.
var qualityTints = map[int]color.Color{
	1: color.RGBA{R: 0xE8, G: 0xF5, B: 0xE9, A: 0xFF}, // light green
	2: color.RGBA{R: 0xFF, G: 0xF9, B: 0xC4, A: 0xFF}, // light yellow
}

func main() {
	cfg := config.New()

	filePath := flag.String("file", "", "Path to the application log CSV (default "+config.DefaultInputFile+")")
	outDir := flag.String("out", "", "Directory for chart and dashboard artifacts (default working directory)")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `JobLens — job application log analysis

Usage:
  joblens
  joblens --file applications.csv --out reports/

A bare run reads %s from the working directory and writes the chart
images, the HTML dashboard, and a console summary next to it.

Flags:
`, config.DefaultInputFile)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  JOBLENS_INPUT_FILE    Input CSV path (flag --file wins)
  JOBLENS_OUTPUT_DIR    Artifact directory (flag --out wins)
  JOBLENS_LOG_LEVEL     zerolog level (default info)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("joblens %s\n", version)
		os.Exit(0)
	}

	if *filePath != "" {
		cfg.InputFile = *filePath
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	log := logging.Setup(cfg.LogLevel)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fatalf("Failed to create output directory: %v", err)
	}

	// ── Load once ─────────────────────────────────────────────────────────
	recs, err := helpers.LoadFile(cfg.InputFile)
	if err != nil {
		fatalf("Failed to load application log: %v", err)
	}
	store := record.NewStore(recs)
	log.Info().Int("records", store.Len()).Str("file", cfg.InputFile).Msg("application log loaded")

	// ── Compute ───────────────────────────────────────────────────────────
	bundle := metrics.Compute(store.Records())

	// ── Render charts ─────────────────────────────────────────────────────
	renderer := chartkit.New(chartkit.DefaultConfig(), log)
	images := report.DefaultImages()
	artifact := func(name string) string { return filepath.Join(cfg.OutputDir, name) }

	if err := renderer.Line("Applications Submitted Over Time", "Applications",
		monthPoints(bundle.ApplicationsPerMonth), artifact(images.ApplicationsOverTime)); err != nil {
		fatalf("Failed to write %s: %v", images.ApplicationsOverTime, err)
	}

	if err := renderer.Bar("Distribution of Job Quality Ratings", "Applications",
		qualityValues(bundle.QualityDistribution), artifact(images.QualityDistribution)); err != nil {
		fatalf("Failed to write %s: %v", images.QualityDistribution, err)
	}

	if err := renderer.Bar("Interviews Per Month", "Interviews",
		monthValues(bundle.InterviewsPerMonth), artifact(images.InterviewsPerMonth)); err != nil {
		fatalf("Failed to write %s: %v", images.InterviewsPerMonth, err)
	}

	labels, series := splitSeries(bundle.HighQualitySplit)
	if err := renderer.StackedBar("High Quality Interviews Per Month",
		labels, series, artifact(images.HighQualityInterviews)); err != nil {
		fatalf("Failed to write %s: %v", images.HighQualityInterviews, err)
	}

	if err := renderer.Table("High Quality Jobs with Interviews",
		[]string{"Date", "Company", "Title", "Quality", "Local/Remote", "Closed"},
		interviewRows(bundle.HighQualityInterviews), artifact(images.HighQualityTable)); err != nil {
		fatalf("Failed to write %s: %v", images.HighQualityTable, err)
	}

	if err := renderer.Pie("Position Status Distribution", []chartkit.LabeledValue{
		{Label: "Closed", Value: float64(bundle.Summary.Closed)},
		{Label: "Open", Value: float64(bundle.Summary.Open)},
		{Label: "Unknown/In Progress", Value: float64(bundle.Summary.Unknown)},
	}, artifact(images.ClosedPositions)); err != nil {
		fatalf("Failed to write %s: %v", images.ClosedPositions, err)
	}

	// ── Dashboard ─────────────────────────────────────────────────────────
	dashPath := artifact(report.DashboardFile)
	f, err := os.Create(dashPath)
	if err != nil {
		fatalf("Failed to create dashboard: %v", err)
	}
	if err := report.WriteDashboard(f, report.Data{Metrics: bundle, Images: images}); err != nil {
		f.Close()
		fatalf("Failed to render dashboard: %v", err)
	}
	if err := f.Close(); err != nil {
		fatalf("Failed to write dashboard: %v", err)
	}
	log.Info().Str("path", dashPath).Msg("dashboard written")

	// ── Console summary ───────────────────────────────────────────────────
	report.WriteConsole(os.Stdout, bundle)
}

// ============================================================================
// BUNDLE → CHART INPUT CONVERSION
// ============================================================================

func monthPoints(counts []metrics.MonthCount) []chartkit.TimePoint {
	out := make([]chartkit.TimePoint, 0, len(counts))
	for _, mc := range counts {
		out = append(out, chartkit.TimePoint{When: mc.Month, Value: float64(mc.Count)})
	}
	return out
}

func monthValues(counts []metrics.MonthCount) []chartkit.LabeledValue {
	out := make([]chartkit.LabeledValue, 0, len(counts))
	for _, mc := range counts {
		out = append(out, chartkit.LabeledValue{
			Label: mc.Month.Format("Jan 2006"),
			Value: float64(mc.Count),
		})
	}
	return out
}

func qualityValues(counts []metrics.QualityCount) []chartkit.LabeledValue {
	out := make([]chartkit.LabeledValue, 0, len(counts))
	for _, qc := range counts {
		out = append(out, chartkit.LabeledValue{
			Label: fmt.Sprintf("Quality %d", qc.Quality),
			Value: float64(qc.Count),
		})
	}
	return out
}

// splitSeries converts the per-tier monthly split into the shared label
// axis plus one stacked series per tier. All series in the split share
// the same month axis by construction.
func splitSeries(split []metrics.MonthlySeries) ([]string, []chartkit.StackedSeries) {
	var labels []string
	series := make([]chartkit.StackedSeries, 0, len(split))

	for _, s := range split {
		if labels == nil {
			labels = make([]string, 0, len(s.Points))
			for _, p := range s.Points {
				labels = append(labels, p.Month.Format("Jan 2006"))
			}
		}
		values := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			values = append(values, float64(p.Count))
		}
		series = append(series, chartkit.StackedSeries{
			Name:   fmt.Sprintf("Quality %d", s.Quality),
			Values: values,
		})
	}
	return labels, series
}

func interviewRows(recs []record.ApplicationRecord) []chartkit.TableRow {
	rows := make([]chartkit.TableRow, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, chartkit.TableRow{
			Cells: []string{
				r.Date.Format(record.DateLayout),
				r.Company,
				r.Title,
				fmt.Sprintf("%d", r.Quality),
				string(r.Location),
				string(r.Closure),
			},
			Tint: qualityTints[r.Quality],
		})
	}
	return rows
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
