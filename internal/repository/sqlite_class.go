package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLiteClassRepo implements ClassRepo using a SQLite database.
type SQLiteClassRepo struct {
	db db.DBTX
}

func NewSQLiteClassRepo(conn db.DBTX) *SQLiteClassRepo {
	return &SQLiteClassRepo{db: conn}
}

func (r *SQLiteClassRepo) Create(ctx context.Context, userID string, c *domain.ClassCommitment) error {
	query := `INSERT INTO classes (id, user_id, subject, weekday, start_min, end_min, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, userID, c.Subject, int(c.Weekday), int(c.Start), int(c.End), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("inserting class %q: %w", c.Subject, err)
	}
	return nil
}

func (r *SQLiteClassRepo) List(ctx context.Context, userID string) ([]domain.ClassCommitment, error) {
	query := `SELECT id, subject, weekday, start_min, end_min FROM classes
		WHERE user_id = ? ORDER BY weekday, start_min, rowid`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}
	defer rows.Close()

	var classes []domain.ClassCommitment
	for rows.Next() {
		var c domain.ClassCommitment
		var weekday, start, end int
		if err := rows.Scan(&c.ID, &c.Subject, &weekday, &start, &end); err != nil {
			return nil, fmt.Errorf("scanning class row: %w", err)
		}
		c.Weekday = time.Weekday(weekday)
		c.Start, c.End = domain.ClockTime(start), domain.ClockTime(end)
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating classes: %w", err)
	}
	return classes, nil
}

// DeleteBySubject removes every meeting of a subject and reports how many
// rows went.
func (r *SQLiteClassRepo) DeleteBySubject(ctx context.Context, userID, subject string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE user_id = ? AND subject = ?`, userID, subject)
	if err != nil {
		return 0, fmt.Errorf("deleting class %q: %w", subject, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting class %q: %w", subject, err)
	}
	return n, nil
}
