package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joblens-org/joblens/metrics"
	"github.com/joblens-org/joblens/record"
)

func sampleBundle() metrics.Bundle {
	recs := []record.ApplicationRecord{
		{
			Date: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), Company: "Acme",
			Title: "Engineer", Quality: 1, Interviewed: true,
			Location: record.Remote, Closure: record.Closed,
		},
		{
			Date: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), Company: "Globex",
			Title: "Engineer", Quality: 2, RecruiterInvolved: true,
			Location: record.Local, Closure: record.Open,
		},
		{
			Date: time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), Company: "Initech",
			Title: "Engineer", Quality: 1, Interviewed: true,
			Location: record.Remote, Closure: record.Open,
		},
	}
	return metrics.Compute(recs)
}

func TestWriteDashboard(t *testing.T) {
	var buf bytes.Buffer
	data := Data{
		GeneratedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Metrics:     sampleBundle(),
		Images:      DefaultImages(),
	}
	require.NoError(t, WriteDashboard(&buf, data))

	html := buf.String()
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Job Search Metrics Dashboard")

	// Headline metrics.
	assert.Contains(t, html, "Total Applications")
	assert.Contains(t, html, "66.7%")  // interview rate, one decimal
	assert.Contains(t, html, "1.33")   // avg quality, two decimals

	// All six artifacts referenced by filename.
	for _, img := range []string{
		"applications_over_time.png",
		"quality_distribution.png",
		"interviews_per_month.png",
		"high_quality_interviews_per_month.png",
		"high_quality_interview_table.png",
		"closed_positions_distribution.png",
	} {
		assert.Contains(t, html, img)
	}

	// Per-quality insight line.
	assert.Contains(t, html, "Quality 1:")
	assert.Contains(t, html, "100.0% interview rate")
	assert.Contains(t, html, "03/01/2025")
}

func TestWriteDashboardEscapesCompanyFreeText(t *testing.T) {
	// The template only embeds numbers today, but the renderer must stay
	// safe if a free-text field ever lands in it.
	var buf bytes.Buffer
	b := sampleBundle()
	require.NoError(t, WriteDashboard(&buf, Data{Metrics: b, Images: DefaultImages()}))
	assert.NotContains(t, buf.String(), "<script>alert")
}

func TestWriteDashboardEmptyBundle(t *testing.T) {
	var buf bytes.Buffer
	data := Data{Metrics: metrics.Compute(nil), Images: DefaultImages()}
	require.NoError(t, WriteDashboard(&buf, data))

	html := buf.String()
	assert.Contains(t, html, "0.0%")
	assert.Contains(t, html, "0.00")
}

func TestWriteConsole(t *testing.T) {
	var buf bytes.Buffer
	WriteConsole(&buf, sampleBundle())
	out := buf.String()

	assert.Contains(t, out, "=== Basic Metrics ===")
	assert.Contains(t, out, "Total Applications: 3")
	assert.Contains(t, out, "Unique Companies: 3")
	assert.Contains(t, out, "Average Quality Score: 1.33")

	assert.Contains(t, out, "=== Interview Success Analysis ===")
	assert.Contains(t, out, "Quality 1: 100.0%")
	assert.Contains(t, out, "Quality 2: 0.0%")
	assert.Contains(t, out, "Interview Rate without Recruiter: 100.0%")

	assert.Contains(t, out, "=== Position Closure Analysis ===")
	assert.Contains(t, out, "Closed: 1 (33.3%)")
	assert.Contains(t, out, "Open: 2 (66.7%)")
	assert.Contains(t, out, "Closed Position Timeline:")
	assert.Contains(t, out, "January 2025: 1 positions closed")
}

func TestWriteConsoleEmptyBundle(t *testing.T) {
	var buf bytes.Buffer
	WriteConsole(&buf, metrics.Compute(nil))
	out := buf.String()

	assert.Contains(t, out, "Total Applications: 0")
	assert.Contains(t, out, "Average Quality Score: 0.00")
	// No closed positions, no timeline section.
	assert.False(t, strings.Contains(out, "Closed Position Timeline:"))
}
