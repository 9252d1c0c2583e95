package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

const taskColumns = `id, name, type, deadline, priority, estimated_blocks, done, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, userID string, t *domain.TaskRecord) error {
	query := `INSERT INTO tasks (id, user_id, name, type, deadline, priority, estimated_blocks, done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		userID,
		t.Name,
		t.Type,
		t.Deadline,
		string(t.Priority),
		nullableIntToValue(t.EstimatedBlocks),
		boolToInt(t.Done),
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task %q: %w", t.Name, mapConstraintErr(err))
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByName(ctx context.Context, userID, name string) (*domain.TaskRecord, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND name = ?`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, userID, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %q: %w", name, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) List(ctx context.Context, userID string, includeDone bool) ([]*domain.TaskRecord, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	if !includeDone {
		query += ` AND done = 0`
	}
	query += ` ORDER BY created_at, rowid`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.TaskRecord
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, userID string, t *domain.TaskRecord) error {
	t.UpdatedAt = time.Now().UTC()
	query := `UPDATE tasks SET name = ?, type = ?, deadline = ?, priority = ?, estimated_blocks = ?,
		done = ?, updated_at = ? WHERE user_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Type,
		t.Deadline,
		string(t.Priority),
		nullableIntToValue(t.EstimatedBlocks),
		boolToInt(t.Done),
		formatTime(t.UpdatedAt),
		userID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task %q: %w", t.Name, mapConstraintErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %q: %w", t.Name, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) DeleteByName(ctx context.Context, userID, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ? AND name = ?`, userID, name)
	if err != nil {
		return fmt.Errorf("deleting task %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %q: %w", name, ErrNotFound)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (*domain.TaskRecord, error) {
	var t domain.TaskRecord
	var priority string
	var blocks sql.NullInt64
	var done int
	var createdAt, updatedAt string

	err := s.Scan(&t.ID, &t.Name, &t.Type, &t.Deadline, &priority, &blocks, &done, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.Priority = domain.PriorityLabel(priority)
	t.EstimatedBlocks = intPtrFromNull(blocks)
	t.Done = intToBool(done)
	if t.CreatedAt, t.UpdatedAt, err = parseStamps(createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
