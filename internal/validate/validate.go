// Package validate holds the pure input checks and date formatting shared by
// the HTTP handlers.
package validate

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dateLayout is the canonical calendar date rendering for the whole API.
const dateLayout = "2006-01-02"

// parseLayouts are the accepted formats for the from/to query parameters.
var parseLayouts = []string{
	dateLayout,
	"2006-1-2",
	time.RFC3339,
}

// ValidID reports whether s is a well-formed 24-hex-character object id.
// Malformed ids are rejected before any lookup is attempted.
func ValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// ValidCalendarDate reports whether s is strictly YYYY-MM-DD and names a real
// calendar date. "2024-02-30" and "2024-2-5" both fail; "2024-02-29" passes.
func ValidCalendarDate(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}
	// time.Parse is already strict about impossible dates; the round-trip
	// guards against any residual leniency in separators or padding.
	return t.Format(dateLayout) == s
}

// FormatDate renders any stored date as the canonical YYYY-MM-DD string,
// independent of how the timestamp was stored.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ParseDate parses a from/to query value in any accepted layout and pins it
// to UTC midnight of that calendar day.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// DayOf truncates t to UTC midnight of its calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
