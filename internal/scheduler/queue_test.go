package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkQueue_TypeDefaults(t *testing.T) {
	tasks := []domain.TaskRecord{
		task("Essay", domain.TypeAssignment, "2025-03-14T23:59:00"),
		task("Robot", domain.TypeProject, "2025-03-20 17:00:00"),
		task("Worksheet", domain.TypeSeatwork, "2025-03-12T10:00:00"),
		task("Mystery", "reading", "2025-03-12T10:00:00"),
	}
	tests := []domain.TestRecord{
		{Name: "Bio Exam", Type: domain.TypeExam, Date: "2025-03-18"},
		{Name: "Chem Quiz", Type: domain.TypeQuiz, Date: "2025-03-13"},
	}

	res := BuildWorkQueue(tasks, tests, testNow, DefaultPriorityTable())
	require.Empty(t, res.Skipped)
	require.Len(t, res.Items, 6)

	byName := map[string]*domain.WorkItem{}
	for _, it := range res.Items {
		byName[it.Name] = it
	}
	assert.Equal(t, 1, byName["Bio Exam"].Priority)
	assert.Equal(t, 3, byName["Bio Exam"].BlocksNeeded)
	assert.Equal(t, 2, byName["Robot"].Priority)
	assert.Equal(t, 5, byName["Robot"].BlocksNeeded)
	assert.Equal(t, 3, byName["Chem Quiz"].Priority)
	assert.Equal(t, 1, byName["Chem Quiz"].BlocksNeeded)
	assert.Equal(t, 4, byName["Essay"].Priority)
	assert.Equal(t, 2, byName["Essay"].BlocksNeeded)
	assert.Equal(t, 5, byName["Worksheet"].Priority)
	assert.Equal(t, UnknownTypeScore, byName["Mystery"].Priority)
	assert.Equal(t, UnknownTypeBlocks, byName["Mystery"].BlocksNeeded)

	assert.Equal(t, []string{"Bio Exam", "Robot", "Chem Quiz", "Essay", "Worksheet", "Mystery"}, names(res.Items))
}

func TestBuildWorkQueue_ExplicitPriorityAndEstimateWin(t *testing.T) {
	tasks := []domain.TaskRecord{{
		Name: "Lab Report", Type: domain.TypeSeatwork, Deadline: "2025-03-15T12:00:00",
		Priority: domain.PriorityHigh, EstimatedBlocks: intPtr(4),
	}}
	res := BuildWorkQueue(tasks, nil, testNow, DefaultPriorityTable())
	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Items[0].Priority)
	assert.Equal(t, 4, res.Items[0].BlocksNeeded)
}

func TestBuildWorkQueue_TopPrecedesCloserDeadlines(t *testing.T) {
	tasks := []domain.TaskRecord{
		{Name: "Due Today", Type: domain.TypeExam, Deadline: "2025-03-10T20:00:00"},
		{Name: "Elevated", Type: domain.TypeSeatwork, Deadline: "2025-03-20T20:00:00", Priority: domain.PriorityTop},
	}
	res := BuildWorkQueue(tasks, nil, testNow, DefaultPriorityTable())
	assert.Equal(t, []string{"Elevated", "Due Today"}, names(res.Items))
}

func TestBuildWorkQueue_SamePriorityOrderedByDeadline(t *testing.T) {
	tasks := []domain.TaskRecord{
		task("Later", domain.TypeAssignment, "2025-03-14T09:00:00"),
		task("Sooner", domain.TypeAssignment, "2025-03-11T09:00:00"),
	}
	res := BuildWorkQueue(tasks, nil, testNow, DefaultPriorityTable())
	assert.Equal(t, []string{"Sooner", "Later"}, names(res.Items))
}

func TestBuildWorkQueue_PastAndDoneExcludedSilently(t *testing.T) {
	tasks := []domain.TaskRecord{
		task("Yesterday", domain.TypeAssignment, "2025-03-09T23:00:00"),
		task("Exactly Now", domain.TypeAssignment, "2025-03-10T08:00:00"),
		{Name: "Finished", Type: domain.TypeAssignment, Deadline: "2025-03-12T08:00:00", Done: true},
	}
	tests := []domain.TestRecord{{Name: "Old Quiz", Type: domain.TypeQuiz, Date: "2025-03-09"}}

	res := BuildWorkQueue(tasks, tests, testNow, DefaultPriorityTable())
	assert.Empty(t, res.Items)
	assert.Empty(t, res.Skipped)
}

func TestBuildWorkQueue_MalformedDeadlineSkipped(t *testing.T) {
	tasks := []domain.TaskRecord{
		task("Broken", domain.TypeAssignment, "next friday"),
		task("Fine", domain.TypeAssignment, "2025-03-12T08:00:00"),
	}
	tests := []domain.TestRecord{{Name: "Broken Test", Type: domain.TypeQuiz, Date: "03/12/2025"}}

	res := BuildWorkQueue(tasks, tests, testNow, DefaultPriorityTable())
	assert.Equal(t, []string{"Fine"}, names(res.Items))
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, "Broken", res.Skipped[0].Name)
	assert.Equal(t, domain.KindTask, res.Skipped[0].Kind)
	assert.Equal(t, domain.KindTest, res.Skipped[1].Kind)
}

func TestBuildWorkQueue_TestDeadlineIsEndOfDay(t *testing.T) {
	tests := []domain.TestRecord{{Name: "Quiz", Type: domain.TypeQuiz, Date: "2025-03-10"}}
	res := BuildWorkQueue(nil, tests, testNow, DefaultPriorityTable())
	require.Len(t, res.Items, 1)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC), res.Items[0].Deadline)
}

func TestParseDeadline_Layouts(t *testing.T) {
	want := time.Date(2025, 3, 12, 18, 30, 0, 0, time.UTC)
	for _, in := range []string{"2025-03-12T18:30:00", "2025-03-12 18:30:00", "2025-03-12T18:30", "2025-03-12 18:30"} {
		got, err := ParseDeadline(in, time.UTC)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := ParseDeadline("2025-03-12", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC), got)

	_, err = ParseDeadline("soon", time.UTC)
	assert.ErrorIs(t, err, ErrMalformedDeadline)
}

func TestPriorityTable_OverridesDoNotLeak(t *testing.T) {
	base := DefaultPriorityTable()
	custom := base.WithTypeScores(map[string]int{"Reading": 2}).WithTypeBlocks(map[string]int{"exam": 6, "quiz": 0})

	assert.Equal(t, 2, custom.Score(domain.PriorityNone, "reading"))
	assert.Equal(t, 6, custom.Blocks(nil, domain.TypeExam))
	assert.Equal(t, 1, custom.Blocks(nil, domain.TypeQuiz), "non-positive estimates are ignored")

	assert.Equal(t, UnknownTypeScore, base.Score(domain.PriorityNone, "reading"))
	assert.Equal(t, 3, base.Blocks(nil, domain.TypeExam))
}

func TestPriorityTable_ZeroValueBehavesAsDefault(t *testing.T) {
	var zero PriorityTable
	assert.Equal(t, 0, zero.Score(domain.PriorityTop, domain.TypeSeatwork))
	assert.Equal(t, 5, zero.Blocks(nil, domain.TypeProject))
	assert.Equal(t, 2, zero.Blocks(intPtr(0), domain.TypeAssignment), "zero estimate falls back to the type default")
}
