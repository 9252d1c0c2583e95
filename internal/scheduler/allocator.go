package scheduler

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// StopReason explains why allocation ended.
type StopReason string

const (
	StopSatisfied  StopReason = "satisfied"   // every item has its blocks
	StopNoSlots    StopReason = "no_slots"    // the slot pool ran dry
	StopNoProgress StopReason = "no_progress" // no unsatisfied item could use any remaining slot
	StopIterCap    StopReason = "iteration_cap"
)

// Allocation is the output of AllocateBlocks.
type Allocation struct {
	Entries   []domain.PlanEntry
	Stop      StopReason
	Remaining int // total blocks still unallocated

	unused []domain.TimeSlot
	sweeps int
}

// AllocateBlocks distributes slots across the sorted queue round-robin: each
// sweep gives every unsatisfied item at most one block, taking the first
// remaining slot that starts at or after now and strictly before the item's
// deadline. Items therefore advance in lockstep rather than one being filled
// before the next starts.
//
// The loop ends when demand reaches zero, the pool is empty, a sweep makes
// no progress, or the iteration cap (items × slots) is hit. Items left short
// are not an error; callers compare BlocksAllocated to BlocksNeeded.
func AllocateBlocks(items []*domain.WorkItem, slots []domain.TimeSlot, now time.Time) Allocation {
	pool := make([]domain.TimeSlot, len(slots))
	copy(pool, slots)

	remaining := 0
	for _, it := range items {
		remaining += it.Remaining()
	}

	maxIter := len(items) * len(slots)
	if maxIter < 1 {
		maxIter = 1
	}

	var res Allocation
	for {
		if remaining == 0 {
			res.Stop = StopSatisfied
			break
		}
		if len(pool) == 0 {
			res.Stop = StopNoSlots
			break
		}
		if res.sweeps >= maxIter {
			res.Stop = StopIterCap
			break
		}
		res.sweeps++

		progress := false
		for _, it := range items {
			if it.Satisfied() {
				continue
			}
			idx := firstEligible(pool, it.Deadline, now)
			if idx < 0 {
				continue
			}
			slot := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)
			it.Allocate()
			remaining--
			res.Entries = append(res.Entries, domain.EntryForSlot(slot, it.Name))
			progress = true
			if len(pool) == 0 {
				break
			}
		}
		if !progress {
			res.Stop = StopNoProgress
			break
		}
	}

	res.unused = pool
	res.Remaining = remaining
	return res
}

func firstEligible(pool []domain.TimeSlot, deadline, now time.Time) int {
	for i, s := range pool {
		if s.Start.Before(now) {
			continue
		}
		if s.Start.Before(deadline) {
			return i
		}
	}
	return -1
}
