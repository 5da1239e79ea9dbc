package record

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// APPLICATION RECORD — one row per submitted job application
// ============================================================================

// DateLayout is the calendar-date format used by the CSV export (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// LocationMode says whether a position is local or remote.
type LocationMode string

const (
	Local  LocationMode = "Local"
	Remote LocationMode = "Remote"
)

// ClosureStatus says whether a position is confirmed filled, confirmed
// still open, or unknown. Exactly one of the three values, never empty.
type ClosureStatus string

const (
	Closed  ClosureStatus = "Closed"
	Open    ClosureStatus = "Open"
	Unknown ClosureStatus = "Unknown"
)

// HighQualityTiers names the quality tiers treated as "high quality"
// throughout the analysis: the two best-ranked tiers. Lower numeric value
// means higher assessed desirability; this is an inferred convention of
// the dataset, not something the export states.
var HighQualityTiers = []int{1, 2}

// IsHighQuality reports whether a quality tier is in HighQualityTiers.
func IsHighQuality(quality int) bool {
	for _, t := range HighQualityTiers {
		if quality == t {
			return true
		}
	}
	return false
}

// ApplicationRecord is a single job application. Records are constructed
// during the load step and treated as immutable afterwards.
type ApplicationRecord struct {
	Date              time.Time
	Company           string
	Title             string
	Quality           int // positive, lower = better
	Interviewed       bool
	RecruiterInvolved bool
	Location          LocationMode
	Closure           ClosureStatus
}

// ============================================================================
// VALUE PARSERS — the CSV export's vocabulary
// ============================================================================

// ParseDate parses a calendar date in the export's MM/DD/YYYY layout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseYesNo parses the export's Y/N flag columns.
func ParseYesNo(s string) (bool, error) {
	switch strings.TrimSpace(strings.ToUpper(s)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, fmt.Errorf("invalid Y/N value %q", s)
}

// ParseLocationMode parses the Local/Remote column.
func ParseLocationMode(s string) (LocationMode, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "local":
		return Local, nil
	case "remote":
		return Remote, nil
	}
	return "", fmt.Errorf("invalid location mode %q", s)
}

// ParseClosureStatus parses the Closed column: Y (closed), N (open),
// I (unknown / in progress).
func ParseClosureStatus(s string) (ClosureStatus, error) {
	switch strings.TrimSpace(strings.ToUpper(s)) {
	case "Y":
		return Closed, nil
	case "N":
		return Open, nil
	case "I":
		return Unknown, nil
	}
	return "", fmt.Errorf("invalid closure status %q", s)
}
