package service

import (
	"context"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// ItemService manages tasks and tests. Names are unique per user across
// both kinds.
type ItemService interface {
	AddTask(ctx context.Context, userID string, t *domain.TaskRecord) error
	AddTest(ctx context.Context, userID string, t *domain.TestRecord) error
	ListTasks(ctx context.Context, userID string, includeDone bool) ([]*domain.TaskRecord, error)
	ListTests(ctx context.Context, userID string, includeDone bool) ([]*domain.TestRecord, error)
	UpdateDeadline(ctx context.Context, userID, name, deadline string) error
	SetPriority(ctx context.Context, userID, name string, p domain.PriorityLabel) error
	MarkDone(ctx context.Context, userID, name string) error
	// Delete removes a task, test or class by name and reports what it was.
	Delete(ctx context.Context, userID, name string) (string, error)
}

type ScheduleService interface {
	SetPreferences(ctx context.Context, userID string, p domain.Preferences) error
	GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error)
	AddClass(ctx context.Context, userID string, c *domain.ClassCommitment) error
	ListClasses(ctx context.Context, userID string) ([]domain.ClassCommitment, error)
	AddWindow(ctx context.Context, userID string, w *domain.StudyWindow) error
	ListWindows(ctx context.Context, userID string) ([]domain.StudyWindow, error)
	ClearWindows(ctx context.Context, userID string) error
	SetOverride(ctx context.Context, userID, date string, blocks []domain.OverrideBlock) error
	ClearOverride(ctx context.Context, userID, date string) error
	ListOverrides(ctx context.Context, userID, fromDate string) (domain.DailyOverrides, error)
}

type PlanService interface {
	app.PlanUseCase
	app.DailyUseCase
}
