package scheduler

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// GenerateSlots flattens the availability grid into candidate one-hour slots.
//
// A date with a daily override offers only the free hours its blocks cover,
// all preferred; study windows are ignored for it. Any other date offers
// every free hour, preferred when a study window covers it. Hours that have
// already started relative to now are dropped. Slot starts are wall-clock
// hours in the day's location, so a DST change never repeats or shifts an
// hour; a wall-clock hour that does not exist that day is not offered.
//
// The result lists all preferred slots chronologically followed by all
// non-preferred slots chronologically. The allocator scans it in this order.
func GenerateSlots(av *Availability, windows []domain.StudyWindow, overrides domain.DailyOverrides, now time.Time) []domain.TimeSlot {
	var preferred, other []domain.TimeSlot

	for _, day := range av.Days() {
		blocks, overridden := overrides[domain.DateKey(day.Date)]
		weekday := day.Date.Weekday()

		for h, status := range day.Hours {
			if status != HourFree {
				continue
			}
			start := domain.ClockAt(h, 0).On(day.Date)
			// Skipped by a spring-forward transition.
			if start.Hour() != h {
				continue
			}
			if start.Before(now) {
				continue
			}

			if overridden {
				if coveredByBlocks(h, blocks) {
					preferred = append(preferred, domain.TimeSlot{Start: start, Preferred: true})
				}
				continue
			}

			if coveredByWindows(weekday, h, windows) {
				preferred = append(preferred, domain.TimeSlot{Start: start, Preferred: true})
			} else {
				other = append(other, domain.TimeSlot{Start: start})
			}
		}
	}

	return append(preferred, other...)
}

func coveredByBlocks(h int, blocks []domain.OverrideBlock) bool {
	for _, b := range blocks {
		if domain.HourOverlaps(h, b.Start, b.End) {
			return true
		}
	}
	return false
}

func coveredByWindows(weekday time.Weekday, h int, windows []domain.StudyWindow) bool {
	for _, w := range windows {
		if w.Covers(weekday, h) {
			return true
		}
	}
	return false
}
