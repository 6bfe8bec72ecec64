package catalog

import (
	"strings"
	"time"
)

const day = 24 * time.Hour

// RecentWindow is how far from "now" a release still counts as recent, and
// how close an opening must be for a coming-soon title to be on pre-sale.
const RecentWindow = 7.0

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate parses an upstream date string.  Values without an offset are
// read in loc.  ok is false for empty or unrecognised input.
func ParseDate(s string, loc *time.Location) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, s, loc); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// DaysBetween returns (to - from) in fractional days.  No rounding to
// calendar midnight is performed.
func DaysBetween(from, to time.Time) float64 {
	return float64(to.Sub(from)) / float64(day)
}
