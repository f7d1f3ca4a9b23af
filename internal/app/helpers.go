package app

import (
	"fmt"
	"time"
)

// ParseISODate parses a YYYY-MM-DD date as written to the CSV
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(OutputDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// RecordsOn returns the records whose date matches day
func RecordsOn(records []Record, day time.Time) []Record {
	want := day.Format(OutputDateLayout)
	var out []Record
	for _, r := range records {
		if r.Date == want {
			out = append(out, r)
		}
	}
	return out
}

// CountByPeriod counts rows per period tag
func CountByPeriod(rows []Row) map[Period]int {
	counts := make(map[Period]int)
	for _, r := range rows {
		counts[r.Period]++
	}
	return counts
}
