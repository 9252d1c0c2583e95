package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryForSlot(t *testing.T) {
	slot := TimeSlot{Start: time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)}
	e := EntryForSlot(slot, "Math HW")

	assert.Equal(t, "2025-03-10", e.Date)
	assert.Equal(t, "14:00", e.Start.String())
	assert.Equal(t, "15:00", e.End.String())
	assert.Equal(t, "Math HW", e.ItemName)
}

func TestPlanEntry_Overlaps(t *testing.T) {
	a := PlanEntry{Date: "2025-03-10", Start: MustClock("09:00"), End: MustClock("10:00")}
	b := PlanEntry{Date: "2025-03-10", Start: MustClock("10:00"), End: MustClock("11:00")}
	c := PlanEntry{Date: "2025-03-10", Start: MustClock("09:30"), End: MustClock("10:30")}
	d := PlanEntry{Date: "2025-03-11", Start: MustClock("09:00"), End: MustClock("10:00")}

	assert.False(t, a.Overlaps(b))
	assert.True(t, a.Overlaps(c))
	assert.False(t, a.Overlaps(d))
}

func TestWorkItem_AllocateNeverExceedsNeeded(t *testing.T) {
	w := &WorkItem{Name: "Essay", BlocksNeeded: 2}
	assert.True(t, w.Allocate())
	assert.True(t, w.Allocate())
	assert.False(t, w.Allocate())
	assert.Equal(t, 2, w.BlocksAllocated)
	assert.True(t, w.Satisfied())
	assert.Equal(t, 0, w.Remaining())
}
