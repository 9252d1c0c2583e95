package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

// SQLiteOverrideRepo implements OverrideRepo using a SQLite database.
// Replace issues several statements; run it inside a unit of work.
type SQLiteOverrideRepo struct {
	db db.DBTX
}

func NewSQLiteOverrideRepo(conn db.DBTX) *SQLiteOverrideRepo {
	return &SQLiteOverrideRepo{db: conn}
}

func (r *SQLiteOverrideRepo) Replace(ctx context.Context, userID, date string, blocks []domain.OverrideBlock) error {
	if err := r.Clear(ctx, userID, date); err != nil {
		return err
	}
	query := `INSERT INTO daily_overrides (id, user_id, date, start_min, end_min, focus) VALUES (?, ?, ?, ?, ?, ?)`
	for _, b := range blocks {
		if _, err := r.db.ExecContext(ctx, query,
			uuid.New().String(), userID, date, int(b.Start), int(b.End), string(b.Focus)); err != nil {
			return fmt.Errorf("inserting override block %s-%s on %s: %w", b.Start, b.End, date, err)
		}
	}
	return nil
}

func (r *SQLiteOverrideRepo) ListFrom(ctx context.Context, userID, fromDate string) (domain.DailyOverrides, error) {
	query := `SELECT date, start_min, end_min, focus FROM daily_overrides
		WHERE user_id = ? AND date >= ? ORDER BY date, start_min`
	rows, err := r.db.QueryContext(ctx, query, userID, fromDate)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	defer rows.Close()

	out := domain.DailyOverrides{}
	for rows.Next() {
		var date, focus string
		var start, end int
		if err := rows.Scan(&date, &start, &end, &focus); err != nil {
			return nil, fmt.Errorf("scanning override row: %w", err)
		}
		out[date] = append(out[date], domain.OverrideBlock{
			Start: domain.ClockTime(start),
			End:   domain.ClockTime(end),
			Focus: domain.FocusLevel(focus),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overrides: %w", err)
	}
	return out, nil
}

func (r *SQLiteOverrideRepo) Clear(ctx context.Context, userID, date string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM daily_overrides WHERE user_id = ? AND date = ?`, userID, date); err != nil {
		return fmt.Errorf("clearing overrides on %s: %w", date, err)
	}
	return nil
}
