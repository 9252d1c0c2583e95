package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Monday 2025-03-10, 08:00 UTC.
var testNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func nowPtr() *time.Time {
	n := testNow
	return &n
}

type testEnv struct {
	db       *sql.DB
	repos    Repos
	uow      db.UnitOfWork
	items    ItemService
	schedule ScheduleService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvOn(t, testutil.NewTestDB(t))
}

func newTestEnvOn(t *testing.T, database *sql.DB) *testEnv {
	t.Helper()
	repos := Repos{
		Tasks:     repository.NewSQLiteTaskRepo(database),
		Tests:     repository.NewSQLiteTestRepo(database),
		Classes:   repository.NewSQLiteClassRepo(database),
		Prefs:     repository.NewSQLitePreferencesRepo(database),
		Windows:   repository.NewSQLiteStudyWindowRepo(database),
		Overrides: repository.NewSQLiteOverrideRepo(database),
		Plans:     repository.NewSQLitePlanRepo(database),
	}
	uow := db.NewSQLiteUnitOfWork(database)
	return &testEnv{
		db:       database,
		repos:    repos,
		uow:      uow,
		items:    NewItemService(repos.Tasks, repos.Tests, repos.Classes, uow),
		schedule: NewScheduleService(repos.Prefs, repos.Classes, repos.Windows, repos.Overrides, uow),
	}
}

func (e *testEnv) planService(opts ...PlanOption) PlanService {
	return NewPlanService(e.repos, e.uow, opts...)
}

func (e *testEnv) addTask(t *testing.T, name, deadline string, opts ...testutil.TaskOption) {
	t.Helper()
	task := testutil.NewTestTask(name, testNow, opts...)
	task.Deadline = deadline
	require.NoError(t, e.items.AddTask(context.Background(), testutil.TestUser, task))
}

func (e *testEnv) setPrefs(t *testing.T, awake, sleep string) {
	t.Helper()
	require.NoError(t, e.schedule.SetPreferences(context.Background(), testutil.TestUser, domain.Preferences{
		AwakeTime: domain.MustClock(awake),
		SleepTime: domain.MustClock(sleep),
	}))
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func entryNames(entries []domain.PlanEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ItemName
	}
	return out
}
