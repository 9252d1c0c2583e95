package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a time of day expressed in minutes since midnight.
// 1440 is allowed and denotes the end of the day.
type ClockTime int

const MinutesPerDay = 24 * 60

// ParseClock parses "HH:MM" (24h) or "HH:MM:SS"; seconds are dropped.
func ParseClock(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("clock time %q: %w", s, ErrInvalidClock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("clock time %q: %w", s, ErrInvalidClock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("clock time %q: %w", s, ErrInvalidClock)
	}
	if h == 24 && m != 0 {
		return 0, fmt.Errorf("clock time %q: %w", s, ErrInvalidClock)
	}
	return ClockTime(h*60 + m), nil
}

// MustClock is ParseClock for literals known to be valid.
func MustClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockAt builds a ClockTime from an hour and minute.
func ClockAt(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// Hour returns the hour component (0..24).
func (c ClockTime) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c ClockTime) Minute() int { return int(c) % 60 }

// String formats as "HH:MM". The end of day renders as "00:00".
func (c ClockTime) String() string {
	m := int(c) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// On returns the instant on the given date at this wall-clock time in the
// date's location. The end of day maps to midnight of the next date.
func (c ClockTime) On(date time.Time) time.Time {
	y, mo, d := date.Date()
	return time.Date(y, mo, d, c.Hour(), c.Minute(), 0, 0, date.Location())
}

// ClockOf returns the clock time of t, truncated to the minute.
func ClockOf(t time.Time) ClockTime {
	return ClockAt(t.Hour(), t.Minute())
}

// ParseWeekday accepts full or three-letter English weekday names, any case.
func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if key == name || (len(key) >= 3 && strings.HasPrefix(name, key)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("weekday %q: %w", s, ErrInvalidWeekday)
}

// DateKey formats a date as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns midnight of t's date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

const DateLayout = "2006-01-02"
