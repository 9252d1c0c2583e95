package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflict_SamePriorityAndDate(t *testing.T) {
	tasks := []domain.TaskRecord{
		{Name: "Math HW", Type: domain.TypeAssignment, Deadline: "2025-03-11T23:59:00", Priority: domain.PriorityHigh, EstimatedBlocks: intPtr(2)},
		{Name: "History Essay", Type: domain.TypeAssignment, Deadline: "2025-03-11T23:59:00", Priority: domain.PriorityHigh, EstimatedBlocks: intPtr(1)},
	}
	q := BuildWorkQueue(tasks, nil, testNow, DefaultPriorityTable())

	c := DetectConflict(q.Items)
	require.NotNil(t, c)
	assert.Equal(t, []string{"Math HW", "History Essay"}, c.Options())
}

func TestDetectConflict_TimeOfDayIgnored(t *testing.T) {
	items := []*domain.WorkItem{
		item("Morning", 2, at(12, 9), 1),
		item("Evening", 2, at(12, 21), 1),
	}
	c := DetectConflict(items)
	require.NotNil(t, c)
	assert.Equal(t, "Morning", c.ItemA)
	assert.Equal(t, "Evening", c.ItemB)
}

func TestDetectConflict_NoneWhenDatesOrPrioritiesDiffer(t *testing.T) {
	items := []*domain.WorkItem{
		item("A", 1, at(12, 9), 1),
		item("B", 1, at(13, 9), 1),
		item("C", 2, at(13, 9), 1),
	}
	assert.Nil(t, DetectConflict(items))
	assert.Nil(t, DetectConflict(nil))
	assert.Nil(t, DetectConflict(items[:1]))
}

func TestDetectConflict_ReportsOnlyFirstPair(t *testing.T) {
	items := []*domain.WorkItem{
		item("A", 1, at(12, 9), 1),
		item("B", 1, at(14, 9), 1),
		item("C", 1, at(14, 10), 1),
		item("D", 3, at(15, 9), 1),
		item("E", 3, at(15, 9), 1),
	}
	c := DetectConflict(items)
	require.NotNil(t, c)
	assert.Equal(t, Conflict{ItemA: "B", ItemB: "C"}, *c)
}

func TestDetectConflict_TopNeverTiesWithLowerPriority(t *testing.T) {
	deadline := time.Date(2025, 3, 12, 23, 59, 0, 0, time.UTC)
	for score := 1; score <= UnknownTypeScore; score++ {
		items := []*domain.WorkItem{
			item("Top", 0, deadline, 1),
			item("Other", score, deadline, 1),
		}
		SortQueue(items)
		assert.Equal(t, "Top", items[0].Name)
		assert.Nil(t, DetectConflict(items), "score %d", score)
	}
}
