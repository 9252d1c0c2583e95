package scheduler

import "github.com/alexanderramin/studyplan/internal/domain"

// Conflict names two adjacent queue items that cannot be ordered
// automatically.
type Conflict struct {
	ItemA string
	ItemB string
}

// Options returns the two names in queue order.
func (c Conflict) Options() []string {
	return []string{c.ItemA, c.ItemB}
}

// DetectConflict walks adjacent pairs of a sorted queue and returns the first
// pair sharing both priority score and deadline date. Time of day is ignored.
// It returns nil when the order is unambiguous.
func DetectConflict(items []*domain.WorkItem) *Conflict {
	for i := 1; i < len(items); i++ {
		a, b := items[i-1], items[i]
		if a.Priority == b.Priority && domain.SameDate(a.Deadline, b.Deadline) {
			return &Conflict{ItemA: a.Name, ItemB: b.Name}
		}
	}
	return nil
}
