package domain

import (
	"fmt"
	"strings"
	"time"
)

// Preferences holds the user's daily rhythm.
type Preferences struct {
	AwakeTime ClockTime
	SleepTime ClockTime
}

// IsSleepHour reports whether the hour starting at h falls in the sleep window.
// A sleep time later than the awake time wraps past midnight.
func (p Preferences) IsSleepHour(h int) bool {
	sleep, awake := p.SleepTime.Hour(), p.AwakeTime.Hour()
	if sleep == awake {
		return false
	}
	if sleep > awake {
		return h >= sleep || h < awake
	}
	return h >= sleep && h < awake
}

// ClassCommitment is a recurring weekly fixed block.
type ClassCommitment struct {
	ID      string
	Subject string
	Weekday time.Weekday
	Start   ClockTime
	End     ClockTime
}

func (c ClassCommitment) Validate() error {
	if strings.TrimSpace(c.Subject) == "" {
		return fmt.Errorf("class subject: %w", ErrEmptyName)
	}
	if c.End <= c.Start {
		return fmt.Errorf("class %s %s-%s: %w", c.Subject, c.Start, c.End, ErrInvalidRange)
	}
	return nil
}

// StudyWindow is a weekly preference for when the user would like to study.
type StudyWindow struct {
	ID      string
	Weekday time.Weekday
	Start   ClockTime
	End     ClockTime
	Focus   FocusLevel
}

func (w StudyWindow) Validate() error {
	if w.End <= w.Start {
		return fmt.Errorf("study window %s %s-%s: %w", w.Weekday, w.Start, w.End, ErrInvalidRange)
	}
	return nil
}

// Covers reports whether the hour [h, h+1) on weekday overlaps the window.
func (w StudyWindow) Covers(weekday time.Weekday, h int) bool {
	return w.Weekday == weekday && HourOverlaps(h, w.Start, w.End)
}

// OverrideBlock is one availability block inside a DailyOverride.
type OverrideBlock struct {
	Start ClockTime
	End   ClockTime
	Focus FocusLevel
}

func (b OverrideBlock) Validate() error {
	if b.End <= b.Start {
		return fmt.Errorf("override block %s-%s: %w", b.Start, b.End, ErrInvalidRange)
	}
	return nil
}

// DailyOverrides maps a YYYY-MM-DD date to the blocks that replace the
// study-window preference for that date.
type DailyOverrides map[string][]OverrideBlock

// HourOverlaps reports whether [h:00, h+1:00) intersects [start, end).
func HourOverlaps(h int, start, end ClockTime) bool {
	hs := ClockTime(h * 60)
	he := hs + 60
	return hs < end && start < he
}
