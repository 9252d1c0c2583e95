package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/alexanderramin/studyplan/internal/testutil"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planReq() app.PlanRequest {
	req := app.NewPlanRequest(testutil.TestUser)
	req.Now = nowPtr()
	return req
}

func seedConflict(t *testing.T, env *testEnv) {
	t.Helper()
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Math HW", "2025-03-11T23:59:00",
		testutil.WithTaskPriority(domain.PriorityHigh), testutil.WithTaskBlocks(2))
	env.addTask(t, "History Essay", "2025-03-11T23:59:00",
		testutil.WithTaskPriority(domain.PriorityHigh), testutil.WithTaskBlocks(1))
}

func TestPlanService_NothingToSchedule(t *testing.T) {
	env := newTestEnv(t)
	env.setPrefs(t, "07:00", "23:00")

	resp, err := env.planService().Generate(context.Background(), planReq())
	require.NoError(t, err)
	assert.Equal(t, scheduler.StatusEmpty, resp.Status)
	assert.Equal(t, scheduler.NothingToSchedule, resp.Message)
	assert.Empty(t, resp.Entries)

	stored, err := env.repos.Plans.Get(context.Background(), testutil.TestUser)
	require.NoError(t, err)
	assert.Empty(t, stored.Entries)
}

func TestPlanService_GenerateStoresPlan(t *testing.T) {
	env := newTestEnv(t)
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Essay", "2025-03-12T23:59:00", testutil.WithTaskBlocks(3))
	ctx := context.Background()

	resp, err := env.planService().Generate(ctx, planReq())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusSuccess, resp.Status)
	assert.Len(t, resp.Entries, 3)
	assert.Empty(t, resp.Underallocated)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, scheduler.StopSatisfied, resp.Stop)

	stored, err := env.repos.Plans.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, resp.Entries, stored.Entries)
	assert.Equal(t, string(scheduler.StopSatisfied), stored.StopReason)

	shown, err := env.planService().Show(ctx, app.ShowRequest{UserID: testutil.TestUser})
	require.NoError(t, err)
	assert.True(t, shown.HasPlan)
	assert.True(t, shown.GeneratedAt.Equal(testNow))
	assert.Equal(t, scheduler.StopSatisfied, shown.Stop)
	assert.Equal(t, resp.Entries, shown.Entries)
}

func TestPlanService_ShowWithoutPlan(t *testing.T) {
	env := newTestEnv(t)

	shown, err := env.planService().Show(context.Background(), app.ShowRequest{UserID: testutil.TestUser})
	require.NoError(t, err)
	assert.False(t, shown.HasPlan)
	assert.Empty(t, shown.Entries)
}

func TestPlanService_ConflictLeavesStoredPlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Math HW", "2025-03-11T23:59:00",
		testutil.WithTaskPriority(domain.PriorityHigh), testutil.WithTaskBlocks(2))
	svc := env.planService()

	first, err := svc.Generate(ctx, planReq())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusSuccess, first.Status)

	env.addTask(t, "History Essay", "2025-03-11T23:59:00",
		testutil.WithTaskPriority(domain.PriorityHigh), testutil.WithTaskBlocks(1))

	resp, err := svc.Generate(ctx, planReq())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusConflict, resp.Status)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, []string{"Math HW", "History Essay"}, resp.Conflict.Options)
	assert.Equal(t, 1, resp.Conflict.Priority)
	assert.Equal(t, "2025-03-11", resp.Conflict.Date)
	assert.Empty(t, resp.Entries)

	stored, err := env.repos.Plans.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, first.Entries, stored.Entries)
}

func TestPlanService_ResolveWithWinner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedConflict(t, env)

	resp, err := env.planService().Resolve(ctx, app.ResolveRequest{
		UserID: testutil.TestUser, Now: nowPtr(), Winner: "History Essay",
	})
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusSuccess, resp.Status)
	assert.Equal(t, []string{"History Essay", "Math HW", "Math HW"}, entryNames(resp.Entries))

	stored, err := env.repos.Tasks.GetByName(ctx, testutil.TestUser, "History Essay")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityTop, stored.Priority, "the choice persists")

	again, err := env.planService().Generate(ctx, planReq())
	require.NoError(t, err)
	assert.Equal(t, scheduler.StatusSuccess, again.Status, "a resolved tie stays resolved")
}

func TestPlanService_ResolveForceAuto(t *testing.T) {
	env := newTestEnv(t)
	seedConflict(t, env)

	resp, err := env.planService().Resolve(context.Background(), app.ResolveRequest{
		UserID: testutil.TestUser, Now: nowPtr(), ForceAuto: true,
	})
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusSuccess, resp.Status)
	assert.Equal(t, []string{"Math HW", "History Essay", "Math HW"}, entryNames(resp.Entries))

	math, err := env.repos.Tasks.GetByName(context.Background(), testutil.TestUser, "Math HW")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, math.Priority, "automatic ordering changes no priorities")
}

func TestPlanService_ResolveRejectsUnknownChoice(t *testing.T) {
	env := newTestEnv(t)
	seedConflict(t, env)
	env.addTask(t, "Lab Report", "2025-03-14T12:00:00")

	_, err := env.planService().Resolve(context.Background(), app.ResolveRequest{
		UserID: testutil.TestUser, Now: nowPtr(), Winner: "Lab Report",
	})
	var planErr *app.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, app.PlanErrUnknownChoice, planErr.Code)
}

func TestPlanService_ResolveWithoutPendingConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addTask(t, "Essay", "2025-03-12T23:59:00", testutil.WithTaskPriority(domain.PriorityLow))

	_, err := env.planService().Resolve(ctx, app.ResolveRequest{
		UserID: testutil.TestUser, Now: nowPtr(), Winner: "Essay",
	})
	var planErr *app.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, app.PlanErrNoConflict, planErr.Code)

	stored, err := env.repos.Tasks.GetByName(ctx, testutil.TestUser, "Essay")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityLow, stored.Priority, "priority is untouched outside conflict resolution")

	_, err = env.repos.Plans.Get(ctx, testutil.TestUser)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanService_ResolveRequiresAChoice(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.planService().Resolve(context.Background(), app.ResolveRequest{UserID: testutil.TestUser})
	var planErr *app.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, app.PlanErrInvalidRequest, planErr.Code)
}

func TestPlanService_ResolveCanSurfaceNextConflict(t *testing.T) {
	env := newTestEnv(t)
	seedConflict(t, env)
	env.addTask(t, "Physics Set", "2025-03-11T12:00:00", testutil.WithTaskPriority(domain.PriorityHigh))

	svc := env.planService()
	first, err := svc.Generate(context.Background(), planReq())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusConflict, first.Status)

	resp, err := svc.Resolve(context.Background(), app.ResolveRequest{
		UserID: testutil.TestUser, Now: nowPtr(), Winner: first.Conflict.Options[0],
	})
	require.NoError(t, err)
	assert.Equal(t, scheduler.StatusConflict, resp.Status)
	assert.NotContains(t, resp.Conflict.Options, first.Conflict.Options[0])
}

func TestPlanService_WarnsWithoutPreferences(t *testing.T) {
	env := newTestEnv(t)
	env.addTask(t, "Essay", "2025-03-12T23:59:00")

	resp, err := env.planService().Generate(context.Background(), planReq())
	require.NoError(t, err)
	assert.Equal(t, scheduler.StatusSuccess, resp.Status)
	assert.Contains(t, resp.Warnings, NoPreferencesWarning)
}

func TestPlanService_LogsSkippedItems(t *testing.T) {
	env := newTestEnv(t)
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Essay", "2025-03-12T23:59:00")
	_, err := env.db.Exec(`INSERT INTO tasks (id, user_id, name, type, deadline, created_at, updated_at)
		VALUES ('bad', ?, 'Garbled', 'assignment', 'next tuesday', '', '')`, testutil.TestUser)
	require.NoError(t, err)

	logger, hook := logtest.NewNullLogger()
	resp, err := env.planService(WithLogger(logger)).Generate(context.Background(), planReq())
	require.NoError(t, err)
	assert.Equal(t, scheduler.StatusSuccess, resp.Status)
	require.Len(t, resp.Skipped, 1)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.WarnLevel, entry.Level)
	assert.Equal(t, "Garbled", entry.Data["item"])
}

func TestPlanService_ReportsUnderallocation(t *testing.T) {
	env := newTestEnv(t)
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Tonight", "2025-03-10T10:00:00", testutil.WithTaskBlocks(5))

	resp, err := env.planService().Generate(context.Background(), planReq())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusSuccess, resp.Status)
	require.Len(t, resp.Underallocated, 1)
	assert.Equal(t, app.ItemShortfall{Name: "Tonight", Needed: 5, Allocated: 2}, resp.Underallocated[0])
	assert.Equal(t, 3, resp.Unplaced)
}

func TestPlanService_PriorityTableOption(t *testing.T) {
	env := newTestEnv(t)
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Lab", "2025-03-12T23:59:00", testutil.WithTaskType("lab"))

	table := scheduler.DefaultPriorityTable().WithTypeBlocks(map[string]int{"lab": 4})
	resp, err := env.planService(WithPriorityTable(table)).Generate(context.Background(), planReq())
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 4)
}

func TestPlanService_ObserverSeesEachRun(t *testing.T) {
	env := newTestEnv(t)
	seedConflict(t, env)
	obs := &recordingObserver{}
	svc := env.planService(WithObserver(obs))

	_, err := svc.Generate(context.Background(), planReq())
	require.NoError(t, err)
	_, err = svc.Resolve(context.Background(), app.ResolveRequest{UserID: testutil.TestUser, Now: nowPtr(), ForceAuto: true})
	require.NoError(t, err)

	require.Len(t, obs.events, 2)
	assert.Equal(t, "plan.generate", obs.events[0].Name)
	assert.Equal(t, "conflict", obs.events[0].Fields["status"])
	assert.Equal(t, "plan.resolve_auto", obs.events[1].Name)
	assert.True(t, obs.events[1].Success)
}

func TestPlanService_StoreFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Essay", "2025-03-12T23:59:00", testutil.WithTaskBlocks(2))

	first, err := env.planService().Generate(ctx, planReq())
	require.NoError(t, err)

	env.addTask(t, "Lab", "2025-03-13T23:59:00", testutil.WithTaskBlocks(2))

	failing := &testutil.FailingUoW{DB: env.db, Match: "INSERT INTO plan_entries", Err: errors.New("disk full")}
	_, err = NewPlanService(env.repos, failing).Generate(ctx, planReq())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	stored, err := env.repos.Plans.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, first.Entries, stored.Entries, "failed replacement keeps the previous plan")
}

func TestPlanService_ConcurrentGenerateSameUser(t *testing.T) {
	env := newTestEnvOn(t, testutil.NewFileTestDB(t))
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Essay", "2025-03-12T23:59:00", testutil.WithTaskBlocks(3))
	env.addTask(t, "Lab", "2025-03-13T23:59:00", testutil.WithTaskBlocks(2))
	svc := env.planService()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Generate(context.Background(), planReq())
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}

	stored, err := env.repos.Plans.Get(context.Background(), testutil.TestUser)
	require.NoError(t, err)
	assert.Len(t, stored.Entries, 5, "serialized runs never interleave their writes")
}

func TestPlanService_UsersAreIsolated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Essay", "2025-03-12T23:59:00")

	other := app.PlanRequest{UserID: "someone-else", Now: nowPtr()}
	resp, err := env.planService().Generate(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, scheduler.StatusEmpty, resp.Status)

	_, err = env.repos.Plans.Get(ctx, testutil.TestUser)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanService_HorizonIsFourteenDays(t *testing.T) {
	env := newTestEnv(t)
	env.setPrefs(t, "07:00", "23:00")
	env.addTask(t, "Thesis", "2025-04-30", testutil.WithTaskBlocks(400))

	lastDate := func(entries []domain.PlanEntry) string {
		last := ""
		for _, e := range entries {
			last = max(last, e.Date)
		}
		return last
	}

	resp, err := env.planService().Generate(context.Background(), planReq())
	require.NoError(t, err)
	assert.Equal(t, "2025-03-23", lastDate(resp.Entries))

	short, err := env.planService(WithHorizonDays(2)).Generate(context.Background(), planReq())
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", lastDate(short.Entries))
}
