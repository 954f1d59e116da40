package storage

import (
	"time"
)

// DateLayout is the persisted form of date-only values.
const DateLayout = "2006-01-02"

// FormatTime formats a timestamp as RFC3339 with nanoseconds in UTC, which
// sorts lexically in time order.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatTimePtr formats an optional timestamp, returning nil when absent
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}

// ParseTime parses a timestamp written by FormatTime
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// ParseTimePtr parses an optional timestamp
func ParseTimePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate formats the calendar date of t
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a date written by FormatDate as midnight UTC
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
