package testutil

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.TaskRecord)

func WithTaskType(typ string) TaskOption {
	return func(t *domain.TaskRecord) {
		t.Type = typ
	}
}

func WithTaskPriority(p domain.PriorityLabel) TaskOption {
	return func(t *domain.TaskRecord) {
		t.Priority = p
	}
}

func WithTaskBlocks(n int) TaskOption {
	return func(t *domain.TaskRecord) {
		t.EstimatedBlocks = &n
	}
}

func WithTaskDone() TaskOption {
	return func(t *domain.TaskRecord) {
		t.Done = true
	}
}

// NewTestTask builds an assignment due at deadline (formatted YYYY-MM-DDTHH:MM:SS).
func NewTestTask(name string, deadline time.Time, opts ...TaskOption) *domain.TaskRecord {
	now := time.Now().UTC()
	t := &domain.TaskRecord{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      domain.TypeAssignment,
		Deadline:  deadline.Format("2006-01-02T15:04:05"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Test-record options
type TestOption func(*domain.TestRecord)

func WithTestType(typ string) TestOption {
	return func(t *domain.TestRecord) {
		t.Type = typ
	}
}

func WithTestPriority(p domain.PriorityLabel) TestOption {
	return func(t *domain.TestRecord) {
		t.Priority = p
	}
}

func WithTestBlocks(n int) TestOption {
	return func(t *domain.TestRecord) {
		t.EstimatedBlocks = &n
	}
}

// NewTestExam builds an exam on date.
func NewTestExam(name string, date time.Time, opts ...TestOption) *domain.TestRecord {
	now := time.Now().UTC()
	t := &domain.TestRecord{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      domain.TypeExam,
		Date:      date.Format(domain.DateLayout),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestClass(subject string, weekday time.Weekday, start, end string) *domain.ClassCommitment {
	return &domain.ClassCommitment{
		ID:      uuid.New().String(),
		Subject: subject,
		Weekday: weekday,
		Start:   domain.MustClock(start),
		End:     domain.MustClock(end),
	}
}

func NewTestWindow(weekday time.Weekday, start, end string, focus domain.FocusLevel) *domain.StudyWindow {
	return &domain.StudyWindow{
		ID:      uuid.New().String(),
		Weekday: weekday,
		Start:   domain.MustClock(start),
		End:     domain.MustClock(end),
		Focus:   focus,
	}
}
