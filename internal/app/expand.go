package app

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// parseDate parses a compact YYYYMMDD date into UTC midnight.
// field names the source key in the returned ParseError.
func parseDate(field, s string) (time.Time, error) {
	if len(s) != len(SourceDateLayout) {
		return time.Time{}, &ParseError{Field: field, Value: s, Err: fmt.Errorf("expected %d digits", len(SourceDateLayout))}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, &ParseError{Field: field, Value: s, Err: fmt.Errorf("non-digit at offset %d", i)}
		}
	}
	t, err := time.Parse(SourceDateLayout, s)
	if err != nil {
		return time.Time{}, &ParseError{Field: field, Value: s, Err: err}
	}
	return t, nil
}

// Expand returns one row per day in [event.Start, event.End)
func Expand(event Event) []Row {
	var rows []Row
	period := Classify(event.Summary)
	for d := event.Start; d.Before(event.End); d = d.AddDate(0, 0, 1) {
		rows = append(rows, Row{Date: d, Name: event.Summary, Period: period})
	}
	return rows
}

// ToEvent converts a decoded source event. path is used in error messages.
func ToEvent(src SourceEvent, path string) (Event, error) {
	start, err := sourceDate(src.DTStart, src.hasStart, path+"."+KeyDTStart)
	if err != nil {
		return Event{}, err
	}
	end, err := sourceDate(src.DTEnd, src.hasEnd, path+"."+KeyDTEnd)
	if err != nil {
		return Event{}, err
	}

	var summary string
	if src.Summary != nil {
		summary = strings.TrimSpace(*src.Summary)
	}

	return Event{Start: start, End: end, Summary: summary}, nil
}

// sourceDate reads the first element of a dtstart/dtend list.
// The feed appends a {"value":"DATE"} object after the string, which is ignored.
func sourceDate(values []json.RawMessage, present bool, path string) (time.Time, error) {
	if !present {
		return time.Time{}, missingKey(path)
	}
	if len(values) == 0 {
		return time.Time{}, missingKey(path + "[0]")
	}

	var raw string
	if err := json.Unmarshal(values[0], &raw); err != nil {
		return time.Time{}, &ParseError{Field: path, Value: string(values[0]), Err: err}
	}

	return parseDate(path, raw)
}

// Events flattens every container of doc into events, in source order
func Events(doc *SourceDocument) ([]Event, error) {
	if !doc.hasContainers {
		return nil, missingKey(KeyContainer)
	}
	if len(doc.Containers) == 0 {
		return nil, missingKey(KeyContainer + "[0]")
	}

	var events []Event
	for i, c := range doc.Containers {
		cpath := fmt.Sprintf("%s[%d]", KeyContainer, i)
		if !c.hasEvents {
			return nil, missingKey(cpath + "." + KeyEvents)
		}
		for j, src := range c.Events {
			event, err := ToEvent(src, fmt.Sprintf("%s.%s[%d]", cpath, KeyEvents, j))
			if err != nil {
				return nil, err
			}
			events = append(events, event)
		}
	}
	return events, nil
}

// ExpandAll expands every event and returns the rows sorted
func ExpandAll(events []Event) []Row {
	var rows []Row
	for _, e := range events {
		rows = append(rows, Expand(e)...)
	}
	SortRows(rows)
	return rows
}

// SortRows sorts rows by (date, name, period) ascending
func SortRows(rows []Row) {
	slices.SortStableFunc(rows, compareRows)
}

func compareRows(a, b Row) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Period, b.Period)
}
