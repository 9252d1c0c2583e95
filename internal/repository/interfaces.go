package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Every repository is scoped by user ID; users never see each other's rows.

type TaskRepo interface {
	Create(ctx context.Context, userID string, t *domain.TaskRecord) error
	GetByName(ctx context.Context, userID, name string) (*domain.TaskRecord, error)
	List(ctx context.Context, userID string, includeDone bool) ([]*domain.TaskRecord, error)
	Update(ctx context.Context, userID string, t *domain.TaskRecord) error
	DeleteByName(ctx context.Context, userID, name string) error
}

type TestRepo interface {
	Create(ctx context.Context, userID string, t *domain.TestRecord) error
	GetByName(ctx context.Context, userID, name string) (*domain.TestRecord, error)
	List(ctx context.Context, userID string, includeDone bool) ([]*domain.TestRecord, error)
	Update(ctx context.Context, userID string, t *domain.TestRecord) error
	DeleteByName(ctx context.Context, userID, name string) error
}

type ClassRepo interface {
	Create(ctx context.Context, userID string, c *domain.ClassCommitment) error
	List(ctx context.Context, userID string) ([]domain.ClassCommitment, error)
	DeleteBySubject(ctx context.Context, userID, subject string) (int64, error)
}

type PreferencesRepo interface {
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	Upsert(ctx context.Context, userID string, p domain.Preferences) error
}

type StudyWindowRepo interface {
	Create(ctx context.Context, userID string, w *domain.StudyWindow) error
	List(ctx context.Context, userID string) ([]domain.StudyWindow, error)
	Clear(ctx context.Context, userID string) error
}

type OverrideRepo interface {
	// Replace swaps every block stored for date with blocks.
	Replace(ctx context.Context, userID, date string, blocks []domain.OverrideBlock) error
	// ListFrom returns overrides dated on or after fromDate (YYYY-MM-DD).
	ListFrom(ctx context.Context, userID, fromDate string) (domain.DailyOverrides, error)
	Clear(ctx context.Context, userID, date string) error
}

// StoredPlan is the last successful plan for a user.
type StoredPlan struct {
	GeneratedAt time.Time
	StopReason  string
	Entries     []domain.PlanEntry
}

type PlanRepo interface {
	// Replace discards the stored plan and writes entries in order.
	Replace(ctx context.Context, userID string, p StoredPlan) error
	Get(ctx context.Context, userID string) (*StoredPlan, error)
	ListByDate(ctx context.Context, userID, date string) ([]domain.PlanEntry, error)
}
