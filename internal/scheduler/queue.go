package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// SkippedItem records a record left out of the queue because its deadline
// could not be parsed.
type SkippedItem struct {
	Name   string
	Kind   domain.ItemKind
	Reason string
}

// QueueResult is the output of BuildWorkQueue.
type QueueResult struct {
	Items   []*domain.WorkItem
	Skipped []SkippedItem
}

// BuildWorkQueue turns pending task and test records into sized, ranked work
// items. Records already done, past their deadline, or with an unparseable
// deadline are left out; only the last kind is reported in Skipped.
func BuildWorkQueue(tasks []domain.TaskRecord, tests []domain.TestRecord, now time.Time, table PriorityTable) QueueResult {
	var res QueueResult
	loc := now.Location()

	for _, t := range tasks {
		if t.Done {
			continue
		}
		deadline, err := ParseDeadline(t.Deadline, loc)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedItem{Name: t.Name, Kind: domain.KindTask, Reason: err.Error()})
			continue
		}
		if !deadline.After(now) {
			continue
		}
		res.Items = append(res.Items, &domain.WorkItem{
			Name:         t.Name,
			Kind:         domain.KindTask,
			Type:         t.Type,
			Deadline:     deadline,
			Priority:     table.Score(t.Priority, t.Type),
			BlocksNeeded: table.Blocks(t.EstimatedBlocks, t.Type),
		})
	}

	for _, t := range tests {
		if t.Done {
			continue
		}
		day, err := time.ParseInLocation(domain.DateLayout, t.Date, loc)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedItem{Name: t.Name, Kind: domain.KindTest, Reason: err.Error()})
			continue
		}
		deadline := EndOfDay(day)
		if !deadline.After(now) {
			continue
		}
		res.Items = append(res.Items, &domain.WorkItem{
			Name:         t.Name,
			Kind:         domain.KindTest,
			Type:         t.Type,
			Deadline:     deadline,
			Priority:     table.Score(t.Priority, t.Type),
			BlocksNeeded: table.Blocks(t.EstimatedBlocks, t.Type),
		})
	}

	SortQueue(res.Items)
	return res
}

// SortQueue orders work items by priority score (lower first), then deadline
// (earliest first). Ties keep their input order.
func SortQueue(items []*domain.WorkItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Deadline.Before(b.Deadline)
	})
}
