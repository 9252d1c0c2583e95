package scheduler

import (
	"fmt"
	"strings"
	"time"
)

var deadlineLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseDeadline parses a stored deadline in loc. Date-only values are
// normalized to the last second of that day.
func ParseDeadline(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	if d, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return EndOfDay(d), nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("deadline %q: %w", s, ErrMalformedDeadline)
}

// EndOfDay returns 23:59:59 on t's date.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
