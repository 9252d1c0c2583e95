package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/google/uuid"
)

type scheduleService struct {
	prefs     repository.PreferencesRepo
	classes   repository.ClassRepo
	windows   repository.StudyWindowRepo
	overrides repository.OverrideRepo
	uow       db.UnitOfWork
}

func NewScheduleService(
	prefs repository.PreferencesRepo,
	classes repository.ClassRepo,
	windows repository.StudyWindowRepo,
	overrides repository.OverrideRepo,
	uow db.UnitOfWork,
) ScheduleService {
	return &scheduleService{prefs: prefs, classes: classes, windows: windows, overrides: overrides, uow: uow}
}

func (s *scheduleService) SetPreferences(ctx context.Context, userID string, p domain.Preferences) error {
	if p.AwakeTime >= domain.MinutesPerDay || p.SleepTime >= domain.MinutesPerDay {
		return domain.Invalid("preferences", domain.ErrInvalidClock)
	}
	return s.prefs.Upsert(ctx, userID, p)
}

func (s *scheduleService) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	return s.prefs.Get(ctx, userID)
}

func (s *scheduleService) AddClass(ctx context.Context, userID string, c *domain.ClassCommitment) error {
	if err := c.Validate(); err != nil {
		return domain.Invalid("class", err)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return s.classes.Create(ctx, userID, c)
}

func (s *scheduleService) ListClasses(ctx context.Context, userID string) ([]domain.ClassCommitment, error) {
	return s.classes.List(ctx, userID)
}

func (s *scheduleService) AddWindow(ctx context.Context, userID string, w *domain.StudyWindow) error {
	if err := w.Validate(); err != nil {
		return domain.Invalid("window", err)
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return s.windows.Create(ctx, userID, w)
}

func (s *scheduleService) ListWindows(ctx context.Context, userID string) ([]domain.StudyWindow, error) {
	return s.windows.List(ctx, userID)
}

func (s *scheduleService) ClearWindows(ctx context.Context, userID string) error {
	return s.windows.Clear(ctx, userID)
}

// SetOverride replaces the availability blocks for one date atomically.
func (s *scheduleService) SetOverride(ctx context.Context, userID, date string, blocks []domain.OverrideBlock) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.Invalid("date", fmt.Errorf("%q is not YYYY-MM-DD", date))
	}
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return domain.Invalid("override", err)
		}
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteOverrideRepo(tx).Replace(ctx, userID, date, blocks)
	})
}

func (s *scheduleService) ClearOverride(ctx context.Context, userID, date string) error {
	return s.overrides.Clear(ctx, userID, date)
}

func (s *scheduleService) ListOverrides(ctx context.Context, userID, fromDate string) (domain.DailyOverrides, error) {
	return s.overrides.ListFrom(ctx, userID, fromDate)
}
