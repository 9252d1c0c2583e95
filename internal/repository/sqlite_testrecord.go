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

const testColumns = `id, name, type, date, priority, estimated_blocks, done, created_at, updated_at`

// SQLiteTestRepo implements TestRepo for quizzes and exams.
type SQLiteTestRepo struct {
	db db.DBTX
}

// NewSQLiteTestRepo creates a new SQLiteTestRepo.
func NewSQLiteTestRepo(conn db.DBTX) *SQLiteTestRepo {
	return &SQLiteTestRepo{db: conn}
}

func (r *SQLiteTestRepo) Create(ctx context.Context, userID string, t *domain.TestRecord) error {
	query := `INSERT INTO tests (id, user_id, name, type, date, priority, estimated_blocks, done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		userID,
		t.Name,
		t.Type,
		t.Date,
		string(t.Priority),
		nullableIntToValue(t.EstimatedBlocks),
		boolToInt(t.Done),
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting test %q: %w", t.Name, mapConstraintErr(err))
	}
	return nil
}

func (r *SQLiteTestRepo) GetByName(ctx context.Context, userID, name string) (*domain.TestRecord, error) {
	query := `SELECT ` + testColumns + ` FROM tests WHERE user_id = ? AND name = ?`
	t, err := scanTest(r.db.QueryRowContext(ctx, query, userID, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("test %q: %w", name, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTestRepo) List(ctx context.Context, userID string, includeDone bool) ([]*domain.TestRecord, error) {
	query := `SELECT ` + testColumns + ` FROM tests WHERE user_id = ?`
	if !includeDone {
		query += ` AND done = 0`
	}
	query += ` ORDER BY created_at, rowid`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tests: %w", err)
	}
	defer rows.Close()

	var tests []*domain.TestRecord
	for rows.Next() {
		t, err := scanTest(rows)
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tests: %w", err)
	}
	return tests, nil
}

func (r *SQLiteTestRepo) Update(ctx context.Context, userID string, t *domain.TestRecord) error {
	t.UpdatedAt = time.Now().UTC()
	query := `UPDATE tests SET name = ?, type = ?, date = ?, priority = ?, estimated_blocks = ?,
		done = ?, updated_at = ? WHERE user_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Type,
		t.Date,
		string(t.Priority),
		nullableIntToValue(t.EstimatedBlocks),
		boolToInt(t.Done),
		formatTime(t.UpdatedAt),
		userID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating test %q: %w", t.Name, mapConstraintErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("test %q: %w", t.Name, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTestRepo) DeleteByName(ctx context.Context, userID, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tests WHERE user_id = ? AND name = ?`, userID, name)
	if err != nil {
		return fmt.Errorf("deleting test %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("test %q: %w", name, ErrNotFound)
	}
	return nil
}

func scanTest(s rowScanner) (*domain.TestRecord, error) {
	var t domain.TestRecord
	var priority string
	var blocks sql.NullInt64
	var done int
	var createdAt, updatedAt string

	err := s.Scan(&t.ID, &t.Name, &t.Type, &t.Date, &priority, &blocks, &done, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning test: %w", err)
	}
	t.Priority = domain.PriorityLabel(priority)
	t.EstimatedBlocks = intPtrFromNull(blocks)
	t.Done = intToBool(done)
	if t.CreatedAt, t.UpdatedAt, err = parseStamps(createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
