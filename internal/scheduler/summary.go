package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// SummaryLine is one row of a daily plan summary.
type SummaryLine struct {
	Task  string
	Start domain.ClockTime
	End   domain.ClockTime
}

// DailyPlanSummary returns the entries planned on date ordered by start time.
func DailyPlanSummary(plan []domain.PlanEntry, date time.Time) []SummaryLine {
	key := domain.DateKey(date)
	var lines []SummaryLine
	for _, e := range plan {
		if e.Date == key {
			lines = append(lines, SummaryLine{Task: e.ItemName, Start: e.Start, End: e.End})
		}
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Start < lines[j].Start
	})
	return lines
}

// PriorityList is a quick "what to work on with N free hours" heuristic: it
// orders pending items by deadline and returns at most availableHours names.
// It does not allocate or look at availability.
func PriorityList(items []*domain.WorkItem, availableHours int) []string {
	if availableHours <= 0 || len(items) == 0 {
		return nil
	}
	pending := make([]*domain.WorkItem, 0, len(items))
	for _, it := range items {
		if !it.Satisfied() {
			pending = append(pending, it)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Deadline.Before(pending[j].Deadline)
	})
	if len(pending) > availableHours {
		pending = pending[:availableHours]
	}
	names := make([]string, len(pending))
	for i, it := range pending {
		names[i] = it.Name
	}
	return names
}
