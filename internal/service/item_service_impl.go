package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/google/uuid"
)

type itemService struct {
	tasks   repository.TaskRepo
	tests   repository.TestRepo
	classes repository.ClassRepo
	uow     db.UnitOfWork
}

func NewItemService(tasks repository.TaskRepo, tests repository.TestRepo, classes repository.ClassRepo, uow db.UnitOfWork) ItemService {
	return &itemService{tasks: tasks, tests: tests, classes: classes, uow: uow}
}

func (s *itemService) AddTask(ctx context.Context, userID string, t *domain.TaskRecord) error {
	if err := normalizeItem(&t.Name, &t.Type, domain.TypeAssignment); err != nil {
		return err
	}
	if _, err := scheduler.ParseDeadline(t.Deadline, time.Local); err != nil {
		return domain.Invalid("deadline", err)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := nameFree(ctx, tx, userID, t.Name); err != nil {
			return err
		}
		return repository.NewSQLiteTaskRepo(tx).Create(ctx, userID, t)
	})
}

func (s *itemService) AddTest(ctx context.Context, userID string, t *domain.TestRecord) error {
	if err := normalizeItem(&t.Name, &t.Type, domain.TypeExam); err != nil {
		return err
	}
	if _, err := time.Parse(domain.DateLayout, t.Date); err != nil {
		return domain.Invalid("date", fmt.Errorf("%q is not YYYY-MM-DD", t.Date))
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := nameFree(ctx, tx, userID, t.Name); err != nil {
			return err
		}
		return repository.NewSQLiteTestRepo(tx).Create(ctx, userID, t)
	})
}

func (s *itemService) ListTasks(ctx context.Context, userID string, includeDone bool) ([]*domain.TaskRecord, error) {
	return s.tasks.List(ctx, userID, includeDone)
}

func (s *itemService) ListTests(ctx context.Context, userID string, includeDone bool) ([]*domain.TestRecord, error) {
	return s.tests.List(ctx, userID, includeDone)
}

// UpdateDeadline changes a task's deadline. Tests carry a date instead and
// accept a bare YYYY-MM-DD.
func (s *itemService) UpdateDeadline(ctx context.Context, userID, name, deadline string) error {
	if _, err := scheduler.ParseDeadline(deadline, time.Local); err != nil {
		return domain.Invalid("deadline", err)
	}
	task, err := s.tasks.GetByName(ctx, userID, name)
	if err == nil {
		task.Deadline = deadline
		return s.tasks.Update(ctx, userID, task)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	test, err := s.tests.GetByName(ctx, userID, name)
	if err != nil {
		return notFound(name, err)
	}
	if _, err := time.Parse(domain.DateLayout, deadline); err != nil {
		return domain.Invalid("date", fmt.Errorf("tests take a date only, got %q", deadline))
	}
	test.Date = deadline
	return s.tests.Update(ctx, userID, test)
}

func (s *itemService) SetPriority(ctx context.Context, userID, name string, p domain.PriorityLabel) error {
	return setPriority(ctx, s.tasks, s.tests, userID, name, p)
}

func (s *itemService) MarkDone(ctx context.Context, userID, name string) error {
	task, err := s.tasks.GetByName(ctx, userID, name)
	if err == nil {
		task.Done = true
		return s.tasks.Update(ctx, userID, task)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	test, err := s.tests.GetByName(ctx, userID, name)
	if err != nil {
		return notFound(name, err)
	}
	test.Done = true
	return s.tests.Update(ctx, userID, test)
}

func (s *itemService) Delete(ctx context.Context, userID, name string) (string, error) {
	err := s.tasks.DeleteByName(ctx, userID, name)
	if err == nil {
		return "task", nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	err = s.tests.DeleteByName(ctx, userID, name)
	if err == nil {
		return "test", nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	n, err := s.classes.DeleteBySubject(ctx, userID, name)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}
	return "class", nil
}

// setPriority is shared with conflict resolution, which promotes the winner.
func setPriority(ctx context.Context, tasks repository.TaskRepo, tests repository.TestRepo, userID, name string, p domain.PriorityLabel) error {
	task, err := tasks.GetByName(ctx, userID, name)
	if err == nil {
		task.Priority = p
		return tasks.Update(ctx, userID, task)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	test, err := tests.GetByName(ctx, userID, name)
	if err != nil {
		return notFound(name, err)
	}
	test.Priority = p
	return tests.Update(ctx, userID, test)
}

func normalizeItem(name, typ *string, fallbackType string) error {
	*name = strings.TrimSpace(*name)
	if *name == "" {
		return domain.Invalid("name", domain.ErrEmptyName)
	}
	*typ = domain.CoalesceStr(strings.ToLower(strings.TrimSpace(*typ)), fallbackType)
	return nil
}

func nameFree(ctx context.Context, tx db.DBTX, userID, name string) error {
	_, taskErr := repository.NewSQLiteTaskRepo(tx).GetByName(ctx, userID, name)
	if taskErr == nil {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	if !errors.Is(taskErr, repository.ErrNotFound) {
		return taskErr
	}
	_, testErr := repository.NewSQLiteTestRepo(tx).GetByName(ctx, userID, name)
	if testErr == nil {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	if !errors.Is(testErr, repository.ErrNotFound) {
		return testErr
	}
	return nil
}

func notFound(name string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}
	return err
}
