package metrics

import (
	"time"

	"github.com/joblens-org/joblens/record"
)

// ============================================================================
// METRIC TYPES — results of the aggregation layer
// ============================================================================
// All values carry full precision; rounding to one decimal place happens
// at presentation time only.
// ============================================================================

// Summary holds the headline counts and means over the full record set.
type Summary struct {
	TotalApplications int
	UniqueCompanies   int
	Interviews        int
	RecruiterContacts int
	Remote            int
	Local             int
	Closed            int
	Open              int
	Unknown           int
	AvgQuality        float64

	// Derived percentages; 0 when the record set is empty.
	InterviewRate float64
	ClosedPct     float64
	OpenPct       float64
	UnknownPct    float64
}

// QualityRate is a percentage attached to one quality tier.
type QualityRate struct {
	Quality int
	Rate    float64
}

// QualityCount is a record count attached to one quality tier.
type QualityCount struct {
	Quality int
	Count   int
}

// Impact compares interview rates with vs. without recruiter involvement.
type Impact struct {
	WithRecruiter    float64
	WithoutRecruiter float64
}

// ClosureImpact compares interview rates among closed vs. open positions.
type ClosureImpact struct {
	ClosedRate float64
	OpenRate   float64
}

// MonthCount is one calendar-month bucket. Month is normalized to the
// first day of the month, UTC.
type MonthCount struct {
	Month time.Time
	Count int
}

// MonthlySeries is the per-month count series for a single quality tier.
// Series produced together share an identical, gap-free month axis.
type MonthlySeries struct {
	Quality int
	Points  []MonthCount
}

// Predicate selects records for a monthly bucketing pass.
type Predicate func(record.ApplicationRecord) bool

// Bundle collects every metric the renderers consume. Produced once per
// run by Compute.
type Bundle struct {
	Summary               Summary
	QualityDistribution   []QualityCount
	InterviewByQuality    []QualityRate
	ClosureByQuality      []QualityRate
	Recruiter             Impact
	InterviewByClosure    ClosureImpact
	ApplicationsPerMonth  []MonthCount
	InterviewsPerMonth    []MonthCount
	ClosedPerMonth        []MonthCount
	HighQualitySplit      []MonthlySeries
	HighQualityInterviews []record.ApplicationRecord
}
