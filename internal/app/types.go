package app

import (
	"encoding/json"
	"fmt"
	"time"
)

// Period is the coarse category assigned to a holiday by Classify
type Period string

// Event represents a single calendar entry from the source document.
// End is exclusive.
type Event struct {
	Start   time.Time
	End     time.Time
	Summary string
}

// Row represents one calendar day of a holiday
type Row struct {
	Date   time.Time
	Name   string
	Period Period
}

// SourceEvent is an event exactly as it appears in the source document
type SourceEvent struct {
	DTStart []json.RawMessage `json:"dtstart"`
	DTEnd   []json.RawMessage `json:"dtend"`
	Summary *string           `json:"summary"`

	hasStart bool
	hasEnd   bool
}

// SourceContainer holds the events of one calendar
type SourceContainer struct {
	Events []SourceEvent

	hasEvents bool
}

// SourceDocument represents the complete source JSON structure
type SourceDocument struct {
	Containers []SourceContainer

	hasContainers bool
}

// UnmarshalJSON records which keys were present so Validate can tell a
// missing key from an empty value.
func (e *SourceEvent) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	if raw, ok := fields[KeyDTStart]; ok {
		e.hasStart = true
		if err := json.Unmarshal(raw, &e.DTStart); err != nil {
			return fmt.Errorf("%s: %w", KeyDTStart, err)
		}
	}
	if raw, ok := fields[KeyDTEnd]; ok {
		e.hasEnd = true
		if err := json.Unmarshal(raw, &e.DTEnd); err != nil {
			return fmt.Errorf("%s: %w", KeyDTEnd, err)
		}
	}
	if raw, ok := fields[KeySummary]; ok {
		if err := json.Unmarshal(raw, &e.Summary); err != nil {
			return fmt.Errorf("%s: %w", KeySummary, err)
		}
	}
	return nil
}

// UnmarshalJSON accepts both "events" and the feed's "vevent" key
func (c *SourceContainer) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	key, raw, ok := lookupKey(fields, KeyEvents, KeyEventsAlias)
	if !ok || string(raw) == "null" {
		return nil
	}
	c.hasEvents = true
	if err := json.Unmarshal(raw, &c.Events); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// UnmarshalJSON accepts both "calendarContainer" and the feed's "vcalendar" key
func (d *SourceDocument) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	key, raw, ok := lookupKey(fields, KeyContainer, KeyContainerAlias)
	if !ok {
		return nil
	}
	d.hasContainers = true
	if err := json.Unmarshal(raw, &d.Containers); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// lookupKey returns the first of keys present in fields
func lookupKey(fields map[string]json.RawMessage, keys ...string) (string, json.RawMessage, bool) {
	for _, k := range keys {
		if raw, ok := fields[k]; ok {
			return k, raw, true
		}
	}
	return "", nil, false
}
