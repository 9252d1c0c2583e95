package domain

import "time"

// TimeSlot is a candidate one-hour block.
type TimeSlot struct {
	Start     time.Time
	Preferred bool
}

// Date returns the slot's YYYY-MM-DD date.
func (s TimeSlot) Date() string { return DateKey(s.Start) }

// PlanEntry binds one hour on a date to a work item.
type PlanEntry struct {
	Date     string
	Start    ClockTime
	End      ClockTime
	ItemName string
}

// EntryForSlot builds the plan entry that assigns slot to item.
func EntryForSlot(slot TimeSlot, item string) PlanEntry {
	start := ClockOf(slot.Start)
	return PlanEntry{
		Date:     slot.Date(),
		Start:    start,
		End:      start + 60,
		ItemName: item,
	}
}

// Overlaps reports whether two entries share a date and intersect in time.
func (e PlanEntry) Overlaps(o PlanEntry) bool {
	return e.Date == o.Date && e.Start < o.End && o.Start < e.End
}
