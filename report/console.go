package report

import (
	"fmt"
	"io"

	"github.com/joblens-org/joblens/metrics"
)

// WriteConsole prints the human-readable analysis summary. Percentages
// show one decimal place, the quality mean two.
func WriteConsole(w io.Writer, b metrics.Bundle) {
	s := b.Summary

	fmt.Fprintln(w, "\n=== Basic Metrics ===")
	fmt.Fprintf(w, "Total Applications: %d\n", s.TotalApplications)
	fmt.Fprintf(w, "Unique Companies: %d\n", s.UniqueCompanies)
	fmt.Fprintf(w, "Applications with Interviews: %d\n", s.Interviews)
	fmt.Fprintf(w, "Applications with Recruiters: %d\n", s.RecruiterContacts)
	fmt.Fprintf(w, "Remote Positions: %d\n", s.Remote)
	fmt.Fprintf(w, "Local Positions: %d\n", s.Local)
	fmt.Fprintf(w, "Closed Positions: %d\n", s.Closed)
	fmt.Fprintf(w, "Open Positions: %d\n", s.Open)
	fmt.Fprintf(w, "Unknown Status Positions: %d\n", s.Unknown)
	fmt.Fprintf(w, "Average Quality Score: %.2f\n", s.AvgQuality)

	fmt.Fprintln(w, "\n=== Interview Success Analysis ===")
	fmt.Fprintln(w, "\nInterview Rate by Quality Rating:")
	for _, q := range b.InterviewByQuality {
		fmt.Fprintf(w, "Quality %d: %.1f%%\n", q.Quality, q.Rate)
	}
	fmt.Fprintf(w, "\nInterview Rate with Recruiter: %.1f%%\n", b.Recruiter.WithRecruiter)
	fmt.Fprintf(w, "Interview Rate without Recruiter: %.1f%%\n", b.Recruiter.WithoutRecruiter)

	fmt.Fprintln(w, "\n=== Position Closure Analysis ===")
	fmt.Fprintln(w, "\nPosition Status Distribution:")
	fmt.Fprintf(w, "Closed: %d (%.1f%%)\n", s.Closed, s.ClosedPct)
	fmt.Fprintf(w, "Open: %d (%.1f%%)\n", s.Open, s.OpenPct)
	fmt.Fprintf(w, "Unknown/In Progress: %d (%.1f%%)\n", s.Unknown, s.UnknownPct)

	fmt.Fprintln(w, "\nClosure Rate by Quality:")
	for _, q := range b.ClosureByQuality {
		fmt.Fprintf(w, "Quality %d: %.1f%%\n", q.Quality, q.Rate)
	}

	if s.Closed > 0 {
		fmt.Fprintf(w, "\nInterview Rate for Closed Positions: %.1f%%\n", b.InterviewByClosure.ClosedRate)
	}
	if s.Open > 0 {
		fmt.Fprintf(w, "Interview Rate for Open Positions: %.1f%%\n", b.InterviewByClosure.OpenRate)
	}

	if s.Closed > 0 {
		fmt.Fprintln(w, "\nClosed Position Timeline:")
		for _, mc := range b.ClosedPerMonth {
			if mc.Count > 0 {
				fmt.Fprintf(w, "%s: %d positions closed\n", mc.Month.Format("January 2006"), mc.Count)
			}
		}
	}
}
