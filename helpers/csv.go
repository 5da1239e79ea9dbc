package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joblens-org/joblens/record"
)

// ============================================================================
// CSV LOADER — parses the application log into []record.ApplicationRecord
// ============================================================================
// Columns are located by header name, so column order in the export does
// not matter. A missing required column is fatal; so is any cell that
// fails to parse — the error carries the 1-based row number.
// ============================================================================

// The export's required column headers.
const (
	colDate      = "Date"
	colCompany   = "Company"
	colTitle     = "Title"
	colQuality   = "Quality"
	colInterview = "Interviews"
	colRecruiter = "Recruiter"
	colLocation  = "Local/Remote"
	colClosed    = "Closed"
)

var requiredColumns = []string{
	colDate, colCompany, colTitle, colQuality,
	colInterview, colRecruiter, colLocation, colClosed,
}

// LoadFile reads and parses an application log CSV from disk.
func LoadFile(path string) ([]record.ApplicationRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read application log: %w", err)
	}
	recs, err := ParseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return recs, nil
}

// ParseCSV parses CSV bytes into application records.
func ParseCSV(data []byte) ([]record.ApplicationRecord, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	index, err := mapColumns(headers)
	if err != nil {
		return nil, err
	}

	var records []record.ApplicationRecord
	row := 1 // header was row 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		rec, err := parseRow(fields, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// mapColumns builds header → column index, verifying all required columns.
func mapColumns(headers []string) (map[string]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRow(fields []string, index map[string]int) (record.ApplicationRecord, error) {
	var rec record.ApplicationRecord
	var err error

	get := func(col string) string {
		i := index[col]
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	if rec.Date, err = record.ParseDate(get(colDate)); err != nil {
		return rec, err
	}

	rec.Company = get(colCompany)
	rec.Title = get(colTitle)

	quality, err := strconv.Atoi(get(colQuality))
	if err != nil {
		return rec, fmt.Errorf("invalid quality %q", get(colQuality))
	}
	if quality < 1 {
		return rec, fmt.Errorf("quality must be a positive integer, got %d", quality)
	}
	rec.Quality = quality

	if rec.Interviewed, err = record.ParseYesNo(get(colInterview)); err != nil {
		return rec, fmt.Errorf("interviews column: %w", err)
	}
	if rec.RecruiterInvolved, err = record.ParseYesNo(get(colRecruiter)); err != nil {
		return rec, fmt.Errorf("recruiter column: %w", err)
	}
	if rec.Location, err = record.ParseLocationMode(get(colLocation)); err != nil {
		return rec, err
	}
	if rec.Closure, err = record.ParseClosureStatus(get(colClosed)); err != nil {
		return rec, err
	}

	return rec, nil
}
