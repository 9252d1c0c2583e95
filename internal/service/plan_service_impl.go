package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	log "github.com/sirupsen/logrus"
)

// NoPreferencesWarning is attached to plans built without sleep/awake times.
const NoPreferencesWarning = "no sleep/awake preferences set: sleep hours are not reserved (see `studyplan prefs set`)"

// Repos groups the stores PlanService reads.
type Repos struct {
	Tasks     repository.TaskRepo
	Tests     repository.TestRepo
	Classes   repository.ClassRepo
	Prefs     repository.PreferencesRepo
	Windows   repository.StudyWindowRepo
	Overrides repository.OverrideRepo
	Plans     repository.PlanRepo
}

type PlanOption func(*planService)

// WithPriorityTable replaces the default type priority/block tables.
func WithPriorityTable(t scheduler.PriorityTable) PlanOption {
	return func(s *planService) { s.table = t }
}

func WithHorizonDays(days int) PlanOption {
	return func(s *planService) {
		if days > 0 {
			s.horizon = days
		}
	}
}

func WithLogger(logger log.FieldLogger) PlanOption {
	return func(s *planService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithObserver(o UseCaseObserver) PlanOption {
	return func(s *planService) { s.observer = useCaseObserverOrNoop([]UseCaseObserver{o}) }
}

type planService struct {
	repos    Repos
	uow      db.UnitOfWork
	table    scheduler.PriorityTable
	horizon  int
	logger   log.FieldLogger
	observer UseCaseObserver
	locks    *userLocks
}

func NewPlanService(repos Repos, uow db.UnitOfWork, opts ...PlanOption) PlanService {
	discard := log.New()
	discard.SetOutput(io.Discard)
	s := &planService{
		repos:    repos,
		uow:      uow,
		table:    scheduler.DefaultPriorityTable(),
		horizon:  scheduler.HorizonDays,
		logger:   discard,
		observer: NoopUseCaseObserver{},
		locks:    newUserLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *planService) Generate(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	if req.UserID == "" {
		return nil, &app.PlanError{Code: app.PlanErrInvalidRequest, Message: "user is required"}
	}
	unlock := s.locks.lock(req.UserID)
	defer unlock()

	return s.run(ctx, "plan.generate", req.UserID, resolveNow(req.Now), req.ForceAuto)
}

// Resolve answers a pending conflict. Choosing a winner permanently raises
// it to top priority before the whole pipeline runs again; the rerun may
// surface a different conflict. A winner is only accepted while a conflict
// is pending and must be one of its two options.
func (s *planService) Resolve(ctx context.Context, req app.ResolveRequest) (*app.PlanResponse, error) {
	if req.UserID == "" {
		return nil, &app.PlanError{Code: app.PlanErrInvalidRequest, Message: "user is required"}
	}
	if req.Winner == "" && !req.ForceAuto {
		return nil, &app.PlanError{Code: app.PlanErrInvalidRequest, Message: "choose an item or force automatic ordering"}
	}
	unlock := s.locks.lock(req.UserID)
	defer unlock()

	now := resolveNow(req.Now)
	if req.ForceAuto {
		return s.run(ctx, "plan.resolve_auto", req.UserID, now, true)
	}

	in, _, err := s.loadInput(ctx, req.UserID, now)
	if err != nil {
		return nil, err
	}
	pending := scheduler.BuildPlan(in)
	if pending.Status != scheduler.StatusConflict {
		return nil, &app.PlanError{
			Code:    app.PlanErrNoConflict,
			Message: fmt.Sprintf("no conflict is pending; %q keeps its priority", req.Winner),
		}
	}
	if !slices.Contains(pending.Conflict.Options(), req.Winner) {
		return nil, &app.PlanError{
			Code:    app.PlanErrUnknownChoice,
			Message: fmt.Sprintf("%q is not one of %v", req.Winner, pending.Conflict.Options()),
		}
	}

	if err := setPriority(ctx, s.repos.Tasks, s.repos.Tests, req.UserID, req.Winner, domain.PriorityTop); err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{"user": req.UserID, "item": req.Winner}).Info("conflict resolved: priority set to top")

	return s.run(ctx, "plan.resolve_choice", req.UserID, now, false)
}

func (s *planService) Show(ctx context.Context, req app.ShowRequest) (*app.ShowResponse, error) {
	plan, err := s.repos.Plans.Get(ctx, req.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return &app.ShowResponse{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	return &app.ShowResponse{
		HasPlan:     true,
		GeneratedAt: plan.GeneratedAt,
		Stop:        scheduler.StopReason(plan.StopReason),
		Entries:     plan.Entries,
	}, nil
}

func (s *planService) run(ctx context.Context, name, userID string, now time.Time, forceAuto bool) (resp *app.PlanResponse, err error) {
	started := time.Now()
	defer func() {
		fields := map[string]any{"user": userID, "force_auto": forceAuto}
		if resp != nil {
			fields["status"] = string(resp.Status)
			fields["entries"] = len(resp.Entries)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: started,
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	in, warnings, err := s.loadInput(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	in.ForceAuto = forceAuto

	res := scheduler.BuildPlan(in)
	for _, sk := range res.Skipped {
		s.logger.WithFields(log.Fields{
			"user": userID, "item": sk.Name, "kind": string(sk.Kind),
		}).Warnf("skipping item: %s", sk.Reason)
	}

	resp = &app.PlanResponse{
		GeneratedAt: now,
		Status:      res.Status,
		Message:     res.Message,
		Skipped:     res.Skipped,
		Warnings:    warnings,
	}

	// A conflict leaves the stored plan untouched. An empty queue replaces it
	// with an empty plan.
	if res.Status == scheduler.StatusConflict {
		a := conflictItem(res.Items, res.Conflict.ItemA)
		resp.Conflict = &app.ConflictView{Options: res.Conflict.Options()}
		if a != nil {
			resp.Conflict.Priority = a.Priority
			resp.Conflict.Date = domain.DateKey(a.Deadline)
		}
		return resp, nil
	}

	resp.Entries = res.Plan
	resp.Stop = res.Stop
	resp.Unplaced = res.Remaining
	resp.OpenSlots = res.OpenSlots
	for _, it := range res.Underallocated() {
		resp.Underallocated = append(resp.Underallocated, app.ItemShortfall{
			Name: it.Name, Needed: it.BlocksNeeded, Allocated: it.BlocksAllocated,
		})
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Replace(ctx, userID, repository.StoredPlan{
			GeneratedAt: now,
			StopReason:  string(res.Stop),
			Entries:     res.Plan,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}
	return resp, nil
}

// loadInput snapshots everything one planning pass reads.
func (s *planService) loadInput(ctx context.Context, userID string, now time.Time) (scheduler.PlanInput, []string, error) {
	in := scheduler.PlanInput{Now: now, Table: s.table, HorizonDays: s.horizon}
	var warnings []string
	var err error

	if in.Tasks, err = s.loadTasks(ctx, userID); err != nil {
		return in, nil, err
	}
	if in.Tests, err = s.loadTests(ctx, userID); err != nil {
		return in, nil, err
	}

	prefs, err := s.repos.Prefs.Get(ctx, userID)
	switch {
	case err == nil:
		in.Preferences = prefs
	case errors.Is(err, repository.ErrNotFound):
		warnings = append(warnings, NoPreferencesWarning)
	default:
		return in, nil, fmt.Errorf("loading preferences: %w", err)
	}

	if in.Classes, err = s.repos.Classes.List(ctx, userID); err != nil {
		return in, nil, fmt.Errorf("loading classes: %w", err)
	}
	if in.Windows, err = s.repos.Windows.List(ctx, userID); err != nil {
		return in, nil, fmt.Errorf("loading study windows: %w", err)
	}
	if in.Overrides, err = s.repos.Overrides.ListFrom(ctx, userID, domain.DateKey(now)); err != nil {
		return in, nil, fmt.Errorf("loading overrides: %w", err)
	}
	return in, warnings, nil
}

func (s *planService) loadTasks(ctx context.Context, userID string) ([]domain.TaskRecord, error) {
	ptrs, err := s.repos.Tasks.List(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	out := make([]domain.TaskRecord, len(ptrs))
	for i, t := range ptrs {
		out[i] = *t
	}
	return out, nil
}

func (s *planService) loadTests(ctx context.Context, userID string) ([]domain.TestRecord, error) {
	ptrs, err := s.repos.Tests.List(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("loading tests: %w", err)
	}
	out := make([]domain.TestRecord, len(ptrs))
	for i, t := range ptrs {
		out[i] = *t
	}
	return out, nil
}

func conflictItem(items []*domain.WorkItem, name string) *domain.WorkItem {
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}
