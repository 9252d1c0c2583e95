package scheduler

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Monday 2025-03-10, 08:00 UTC.
var testNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func at(day, hour int) time.Time {
	return time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC)
}

func task(name, typ, deadline string) domain.TaskRecord {
	return domain.TaskRecord{Name: name, Type: typ, Deadline: deadline}
}

func intPtr(v int) *int { return &v }

func item(name string, priority int, deadline time.Time, blocks int) *domain.WorkItem {
	return &domain.WorkItem{Name: name, Kind: domain.KindTask, Priority: priority, Deadline: deadline, BlocksNeeded: blocks}
}

func slotsAt(times ...time.Time) []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(times))
	for i, t := range times {
		out[i] = domain.TimeSlot{Start: t}
	}
	return out
}

func names(items []*domain.WorkItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
