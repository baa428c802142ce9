package utils

import (
	"fmt"
	"time"
)

// Datetime layouts returned by the live pricing API. Timestamps come without a
// zone designator and are documented as UTC.
var apiLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
}

// ParseUTC parses an API timestamp and normalizes it to UTC
func ParseUTC(value string) (time.Time, error) {
	for _, layout := range apiLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable datetime %q", value)
}

// ParseDate parses a YYYY-MM-DD date in UTC
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}

// FormatDuration renders a duration in minutes as "2h 15min"
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}
