// Package timeutil centralizes the timestamp contract of the record files:
// all stored timestamps are UTC, RFC 3339, with a literal "Z" suffix.
// Implicit local timezones are prohibited anywhere in the persistence path.
package timeutil

import (
	"fmt"
	"time"
)

// NowUTC returns the current time in UTC, truncated to whole seconds so that
// a timestamp survives a format/parse round trip unchanged.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatTimestamp formats a time for storage. UTC conversion is forced so the
// result always carries the "Z" suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimestamp parses a stored timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
