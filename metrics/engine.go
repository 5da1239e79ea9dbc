package metrics

import (
	"sort"
	"time"

	"github.com/joblens-org/joblens/record"
)

// ============================================================================
// METRICS ENGINE — pure reductions over the loaded record set
// ============================================================================
// Every function here is deterministic and side-effect free: same records
// in, same numbers out. Nothing mutates the input slice.
//
// Division-by-zero policy: any ratio with a zero denominator reports as 0.
// An empty record set is a valid, non-exceptional input everywhere.
//
// Ordering: quality buckets ascending (best tier first, lower = better),
// month buckets chronological, row listings by date ascending.
// ============================================================================

// Compute runs the full metric set in one pass and returns the bundle the
// chart and report renderers consume.
func Compute(recs []record.ApplicationRecord) Bundle {
	return Bundle{
		Summary:              Summarize(recs),
		QualityDistribution:  QualityDistribution(recs),
		InterviewByQuality:   InterviewRateByQuality(recs),
		ClosureByQuality:     ClosureRateByQuality(recs),
		Recruiter:            RecruiterImpact(recs),
		InterviewByClosure:   InterviewRateByClosure(recs),
		ApplicationsPerMonth: MonthlyCounts(recs, All),
		InterviewsPerMonth:   MonthlyCounts(recs, Interviewed),
		ClosedPerMonth:       MonthlyCounts(recs, IsClosed),
		HighQualitySplit: MonthlySplitByQuality(recs, Interviewed,
			record.HighQualityTiers),
		HighQualityInterviews: HighQualityInterviews(recs),
	}
}

// ============================================================================
// PREDICATES
// ============================================================================

// All matches every record.
func All(record.ApplicationRecord) bool { return true }

// Interviewed matches records that led to an interview.
func Interviewed(r record.ApplicationRecord) bool { return r.Interviewed }

// IsClosed matches records whose position is confirmed closed.
func IsClosed(r record.ApplicationRecord) bool { return r.Closure == record.Closed }

// ============================================================================
// SCALAR METRICS
// ============================================================================

// Summarize computes the headline counts and means.
func Summarize(recs []record.ApplicationRecord) Summary {
	var s Summary
	s.TotalApplications = len(recs)

	companies := make(map[string]bool)
	qualitySum := 0
	for _, r := range recs {
		companies[r.Company] = true
		qualitySum += r.Quality
		if r.Interviewed {
			s.Interviews++
		}
		if r.RecruiterInvolved {
			s.RecruiterContacts++
		}
		switch r.Location {
		case record.Remote:
			s.Remote++
		case record.Local:
			s.Local++
		}
		switch r.Closure {
		case record.Closed:
			s.Closed++
		case record.Open:
			s.Open++
		case record.Unknown:
			s.Unknown++
		}
	}
	s.UniqueCompanies = len(companies)

	if s.TotalApplications > 0 {
		s.AvgQuality = float64(qualitySum) / float64(s.TotalApplications)
	}
	s.InterviewRate = percent(s.Interviews, s.TotalApplications)
	s.ClosedPct = percent(s.Closed, s.TotalApplications)
	s.OpenPct = percent(s.Open, s.TotalApplications)
	s.UnknownPct = percent(s.Unknown, s.TotalApplications)

	return s
}

// RecruiterImpact computes the interview rate among records with vs.
// without recruiter involvement.
func RecruiterImpact(recs []record.ApplicationRecord) Impact {
	var withTotal, withHit, withoutTotal, withoutHit int
	for _, r := range recs {
		if r.RecruiterInvolved {
			withTotal++
			if r.Interviewed {
				withHit++
			}
		} else {
			withoutTotal++
			if r.Interviewed {
				withoutHit++
			}
		}
	}
	return Impact{
		WithRecruiter:    percent(withHit, withTotal),
		WithoutRecruiter: percent(withoutHit, withoutTotal),
	}
}

// InterviewRateByClosure computes the interview rate among confirmed-closed
// vs. confirmed-open positions. Unknown-status records count toward neither.
func InterviewRateByClosure(recs []record.ApplicationRecord) ClosureImpact {
	var closedTotal, closedHit, openTotal, openHit int
	for _, r := range recs {
		switch r.Closure {
		case record.Closed:
			closedTotal++
			if r.Interviewed {
				closedHit++
			}
		case record.Open:
			openTotal++
			if r.Interviewed {
				openHit++
			}
		}
	}
	return ClosureImpact{
		ClosedRate: percent(closedHit, closedTotal),
		OpenRate:   percent(openHit, openTotal),
	}
}

// ============================================================================
// QUALITY BREAKDOWNS
// ============================================================================

// QualityDistribution counts records per quality tier, ascending tier
// order. Tiers with zero records are absent.
func QualityDistribution(recs []record.ApplicationRecord) []QualityCount {
	totals := make(map[int]int)
	for _, r := range recs {
		totals[r.Quality]++
	}

	out := make([]QualityCount, 0, len(totals))
	for _, q := range sortedQualities(totals) {
		out = append(out, QualityCount{Quality: q, Count: totals[q]})
	}
	return out
}

// InterviewRateByQuality maps each quality tier present in the record set
// to the percentage of its records that led to an interview. Ascending
// tier order; empty tiers are absent, never NaN.
func InterviewRateByQuality(recs []record.ApplicationRecord) []QualityRate {
	return rateByQuality(recs, Interviewed)
}

// ClosureRateByQuality maps each quality tier present in the record set
// to the percentage of its records confirmed closed.
func ClosureRateByQuality(recs []record.ApplicationRecord) []QualityRate {
	return rateByQuality(recs, IsClosed)
}

func rateByQuality(recs []record.ApplicationRecord, pred Predicate) []QualityRate {
	totals := make(map[int]int)
	hits := make(map[int]int)
	for _, r := range recs {
		totals[r.Quality]++
		if pred(r) {
			hits[r.Quality]++
		}
	}

	out := make([]QualityRate, 0, len(totals))
	for _, q := range sortedQualities(totals) {
		out = append(out, QualityRate{
			Quality: q,
			Rate:    percent(hits[q], totals[q]),
		})
	}
	return out
}

func sortedQualities(totals map[int]int) []int {
	qualities := make([]int, 0, len(totals))
	for q := range totals {
		qualities = append(qualities, q)
	}
	sort.Ints(qualities)
	return qualities
}

// ============================================================================
// MONTHLY BUCKETS
// ============================================================================

// MonthlyCounts buckets the records matching pred into calendar months,
// one bucket per month from the earliest to the latest month present in
// the matching subset. Months inside that range with no matches appear
// with a zero count; months outside it are not padded. An empty subset
// yields nil.
func MonthlyCounts(recs []record.ApplicationRecord, pred Predicate) []MonthCount {
	counts := make(map[time.Time]int)
	var first, last time.Time
	for _, r := range recs {
		if !pred(r) {
			continue
		}
		m := monthOf(r.Date)
		counts[m]++
		if first.IsZero() || m.Before(first) {
			first = m
		}
		if last.IsZero() || m.After(last) {
			last = m
		}
	}
	if len(counts) == 0 {
		return nil
	}
	return fillMonths(first, last, counts)
}

// MonthlySplitByQuality buckets the records matching pred into months,
// split by quality tier, one series per tier in the given order. All
// series share a single month axis: contiguous months from the earliest
// to the latest month any tier has a match in, zero-filled.
func MonthlySplitByQuality(recs []record.ApplicationRecord, pred Predicate, tiers []int) []MonthlySeries {
	perTier := make(map[int]map[time.Time]int, len(tiers))
	for _, q := range tiers {
		perTier[q] = make(map[time.Time]int)
	}

	var first, last time.Time
	for _, r := range recs {
		if !pred(r) {
			continue
		}
		counts, ok := perTier[r.Quality]
		if !ok {
			continue
		}
		m := monthOf(r.Date)
		counts[m]++
		if first.IsZero() || m.Before(first) {
			first = m
		}
		if last.IsZero() || m.After(last) {
			last = m
		}
	}

	out := make([]MonthlySeries, 0, len(tiers))
	for _, q := range tiers {
		series := MonthlySeries{Quality: q}
		if !first.IsZero() {
			series.Points = fillMonths(first, last, perTier[q])
		}
		out = append(out, series)
	}
	return out
}

// HighQualityInterviews lists the records in the high-quality tiers that
// led to an interview, date ascending. Load order breaks date ties.
func HighQualityInterviews(recs []record.ApplicationRecord) []record.ApplicationRecord {
	var out []record.ApplicationRecord
	for _, r := range recs {
		if r.Interviewed && record.IsHighQuality(r.Quality) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// ============================================================================
// INTERNAL HELPERS
// ============================================================================

// percent is count/total*100 with the zero-denominator policy applied.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// monthOf truncates a date to the first of its calendar month, UTC.
func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// fillMonths walks first..last inclusive and emits one bucket per month.
func fillMonths(first, last time.Time, counts map[time.Time]int) []MonthCount {
	var out []MonthCount
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		out = append(out, MonthCount{Month: m, Count: counts[m]})
	}
	return out
}
