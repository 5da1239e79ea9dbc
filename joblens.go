// Package joblens analyzes a job-application log.
//
// JobLens loads a CSV export of submitted applications once per run,
// computes descriptive statistics (interview rates, closure rates,
// breakdowns by quality and recruiter involvement), renders a set of
// PNG charts, and writes a static HTML dashboard.
//
// Usage:
//
//	import "github.com/joblens-org/joblens/metrics"
//
//	recs, err := helpers.LoadFile("Resumes_Submissions_Submitted.csv")
//	bundle := metrics.Compute(recs)
//
// The metrics engine is pure: it never mutates the loaded records and
// never touches the filesystem. Rendering (chartkit, report) consumes
// only pre-aggregated, labeled data.
package joblens
