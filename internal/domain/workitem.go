package domain

import "time"

// WorkItem is a unit of pending work sized in 1-hour blocks. It exists only
// for the duration of one planning pass.
type WorkItem struct {
	Name            string
	Kind            ItemKind
	Type            string
	Deadline        time.Time
	Priority        int
	BlocksNeeded    int
	BlocksAllocated int
}

// Remaining returns the number of blocks still to allocate.
func (w *WorkItem) Remaining() int {
	if w.BlocksAllocated >= w.BlocksNeeded {
		return 0
	}
	return w.BlocksNeeded - w.BlocksAllocated
}

// Satisfied reports whether every needed block has been allocated.
func (w *WorkItem) Satisfied() bool {
	return w.Remaining() == 0
}

// Allocate records one more block. It refuses to exceed BlocksNeeded.
func (w *WorkItem) Allocate() bool {
	if w.Satisfied() {
		return false
	}
	w.BlocksAllocated++
	return true
}

// TaskRecord is a stored task (assignment, project, seatwork, ...).
type TaskRecord struct {
	ID              string
	Name            string
	Type            string
	Deadline        string // YYYY-MM-DDTHH:MM:SS, YYYY-MM-DD HH:MM:SS or YYYY-MM-DD
	Priority        PriorityLabel
	EstimatedBlocks *int
	Done            bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TestRecord is a stored quiz or exam. Its deadline is a date only.
type TestRecord struct {
	ID              string
	Name            string
	Type            string
	Date            string // YYYY-MM-DD
	Priority        PriorityLabel
	EstimatedBlocks *int
	Done            bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
