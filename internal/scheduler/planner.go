package scheduler

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

type PlanStatus string

const (
	StatusSuccess  PlanStatus = "success"
	StatusConflict PlanStatus = "conflict"
	StatusEmpty    PlanStatus = "empty"
)

// NothingToSchedule is the message attached to an empty result.
const NothingToSchedule = "nothing to schedule"

// PlanInput is a snapshot of everything one planning pass reads.
type PlanInput struct {
	Tasks       []domain.TaskRecord
	Tests       []domain.TestRecord
	Preferences *domain.Preferences
	Classes     []domain.ClassCommitment
	Windows     []domain.StudyWindow
	Overrides   domain.DailyOverrides
	Now         time.Time
	ForceAuto   bool

	// Table defaults to DefaultPriorityTable when zero.
	Table PriorityTable
	// HorizonDays defaults to HorizonDays when zero.
	HorizonDays int
}

// PlanResult is the outcome of BuildPlan.
type PlanResult struct {
	Status   PlanStatus
	Message  string
	Plan     []domain.PlanEntry
	Items    []*domain.WorkItem
	Conflict *Conflict
	Skipped  []SkippedItem
	Stop     StopReason

	// Remaining is the number of needed blocks left unplaced.
	Remaining int
	// OpenSlots counts the candidate hours the pass could offer.
	OpenSlots int
}

// Underallocated returns the items that received fewer blocks than needed.
func (r PlanResult) Underallocated() []*domain.WorkItem {
	var out []*domain.WorkItem
	for _, it := range r.Items {
		if !it.Satisfied() {
			out = append(out, it)
		}
	}
	return out
}

// BuildPlan runs one full planning pass: queue, conflict check, availability,
// slots, allocation. It reads only its input and is deterministic for a
// given input. A conflict halts the pass before any allocation.
func BuildPlan(in PlanInput) PlanResult {
	table := in.Table
	if table.labels == nil {
		table = DefaultPriorityTable()
	}
	horizon := in.HorizonDays
	if horizon <= 0 {
		horizon = HorizonDays
	}

	queue := BuildWorkQueue(in.Tasks, in.Tests, in.Now, table)
	res := PlanResult{Items: queue.Items, Skipped: queue.Skipped}

	if len(queue.Items) == 0 {
		res.Status = StatusEmpty
		res.Message = NothingToSchedule
		return res
	}

	if !in.ForceAuto {
		if c := DetectConflict(queue.Items); c != nil {
			res.Status = StatusConflict
			res.Conflict = c
			return res
		}
	}

	av := BuildAvailability(in.Now, horizon, in.Preferences, in.Classes)
	slots := GenerateSlots(av, in.Windows, in.Overrides, in.Now)
	alloc := AllocateBlocks(queue.Items, slots, in.Now)

	res.Status = StatusSuccess
	res.Plan = alloc.Entries
	res.Stop = alloc.Stop
	res.Remaining = alloc.Remaining
	res.OpenSlots = len(slots)
	return res
}
