package scheduler

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// HorizonDays is the length of the planning horizon.
const HorizonDays = 14

type HourStatus uint8

const (
	HourFree HourStatus = iota
	HourBusy
	HourSleep
)

func (s HourStatus) String() string {
	switch s {
	case HourBusy:
		return "busy"
	case HourSleep:
		return "sleep"
	default:
		return "free"
	}
}

// DayAvailability is the hour-by-hour status of one calendar date.
type DayAvailability struct {
	Date  time.Time // midnight
	Hours [24]HourStatus
}

// Availability is the per-hour grid over the planning horizon. It is built
// once per pass and only read afterwards.
type Availability struct {
	days []DayAvailability
}

// BuildAvailability marks sleep hours from prefs (when set) and busy hours
// from class commitments for days dates starting at start's date. Sleep is
// applied first and is never downgraded to busy.
func BuildAvailability(start time.Time, days int, prefs *domain.Preferences, classes []domain.ClassCommitment) *Availability {
	if days <= 0 {
		days = HorizonDays
	}
	first := domain.StartOfDay(start)
	av := &Availability{days: make([]DayAvailability, days)}

	for i := range av.days {
		day := &av.days[i]
		day.Date = first.AddDate(0, 0, i)

		if prefs != nil {
			for h := 0; h < 24; h++ {
				if prefs.IsSleepHour(h) {
					day.Hours[h] = HourSleep
				}
			}
		}

		weekday := day.Date.Weekday()
		for _, c := range classes {
			if c.Weekday != weekday {
				continue
			}
			for h := 0; h < 24; h++ {
				if day.Hours[h] == HourFree && domain.HourOverlaps(h, c.Start, c.End) {
					day.Hours[h] = HourBusy
				}
			}
		}
	}
	return av
}

// Days returns the grid rows in date order.
func (a *Availability) Days() []DayAvailability {
	return a.days
}

// status returns the status of hour h on date, and false when the date is
// outside the horizon.
func (a *Availability) status(date time.Time, h int) (HourStatus, bool) {
	for _, d := range a.days {
		if domain.SameDate(d.Date, date) {
			if h < 0 || h > 23 {
				return HourFree, false
			}
			return d.Hours[h], true
		}
	}
	return HourFree, false
}
