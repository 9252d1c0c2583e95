package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

// dueSoonWindow is how far ahead the check-in reminder looks.
const dueSoonWindow = 24 * time.Hour

// Daily is the check-in view for one date: what the stored plan schedules,
// which classes meet, and which pending items are due.
func (s *planService) Daily(ctx context.Context, req app.DailyRequest) (*app.DailyResponse, error) {
	now := resolveNow(req.Now)
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	resp := &app.DailyResponse{Date: domain.DateKey(date)}

	if _, err := s.repos.Plans.Get(ctx, req.UserID); err == nil {
		resp.HasPlan = true
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading plan: %w", err)
	}

	entries, err := s.repos.Plans.ListByDate(ctx, req.UserID, resp.Date)
	if err != nil {
		return nil, fmt.Errorf("loading plan entries: %w", err)
	}
	resp.Planned = scheduler.DailyPlanSummary(entries, date)

	classes, err := s.repos.Classes.List(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading classes: %w", err)
	}
	for _, c := range classes {
		if c.Weekday == date.Weekday() {
			resp.Classes = append(resp.Classes, c)
		}
	}

	queue, err := s.pendingQueue(ctx, req.UserID, now)
	if err != nil {
		return nil, err
	}
	for _, it := range queue.Items {
		due := app.DueItem{Name: it.Name, Kind: it.Kind, Deadline: it.Deadline}
		if domain.SameDate(it.Deadline, date) {
			resp.DueToday = append(resp.DueToday, due)
		}
		if it.Deadline.Sub(now) <= dueSoonWindow {
			resp.DueSoon = append(resp.DueSoon, due)
		}
	}
	sortDue(resp.DueToday)
	sortDue(resp.DueSoon)

	if _, err := s.repos.Prefs.Get(ctx, req.UserID); errors.Is(err, repository.ErrNotFound) {
		resp.Warnings = append(resp.Warnings, NoPreferencesWarning)
	}
	return resp, nil
}

// Suggest answers "I have N free hours, what should I work on?" without
// touching the stored plan.
func (s *planService) Suggest(ctx context.Context, req app.SuggestRequest) (*app.SuggestResponse, error) {
	if req.AvailableHours < 0 {
		return nil, &app.PlanError{Code: app.PlanErrInvalidRequest, Message: "available hours cannot be negative"}
	}
	queue, err := s.pendingQueue(ctx, req.UserID, resolveNow(req.Now))
	if err != nil {
		return nil, err
	}
	return &app.SuggestResponse{
		AvailableHours: req.AvailableHours,
		Items:          scheduler.PriorityList(queue.Items, req.AvailableHours),
	}, nil
}

// Week groups the stored plan into the Monday-to-Sunday week containing Start.
func (s *planService) Week(ctx context.Context, req app.WeekRequest) (*app.WeekResponse, error) {
	start := req.Start
	if start.IsZero() {
		start = time.Now()
	}
	offset := (int(start.Weekday()) + 6) % 7
	monday := domain.StartOfDay(start).AddDate(0, 0, -offset)
	resp := &app.WeekResponse{Monday: monday}

	plan, err := s.repos.Plans.Get(ctx, req.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return resp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	for i := range resp.Days {
		resp.Days[i] = scheduler.DailyPlanSummary(plan.Entries, monday.AddDate(0, 0, i))
	}
	return resp, nil
}

func (s *planService) pendingQueue(ctx context.Context, userID string, now time.Time) (scheduler.QueueResult, error) {
	tasks, err := s.loadTasks(ctx, userID)
	if err != nil {
		return scheduler.QueueResult{}, err
	}
	tests, err := s.loadTests(ctx, userID)
	if err != nil {
		return scheduler.QueueResult{}, err
	}
	return scheduler.BuildWorkQueue(tasks, tests, now, s.table), nil
}

func sortDue(items []app.DueItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Deadline.Before(items[j].Deadline)
	})
}
