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

// SQLitePlanRepo implements PlanRepo using a SQLite database.
// Replace issues several statements; run it inside a unit of work.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Replace(ctx context.Context, userID string, p StoredPlan) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_entries WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing plan entries: %w", err)
	}
	upsert := `INSERT INTO plans (user_id, generated_at, entry_count, stop_reason) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			generated_at = excluded.generated_at,
			entry_count = excluded.entry_count,
			stop_reason = excluded.stop_reason`
	if _, err := r.db.ExecContext(ctx, upsert,
		userID, formatTime(p.GeneratedAt), len(p.Entries), p.StopReason); err != nil {
		return fmt.Errorf("upserting plan: %w", err)
	}

	insert := `INSERT INTO plan_entries (user_id, seq, date, start_min, end_min, item_name) VALUES (?, ?, ?, ?, ?, ?)`
	for i, e := range p.Entries {
		if _, err := r.db.ExecContext(ctx, insert,
			userID, i, e.Date, int(e.Start), int(e.End), e.ItemName); err != nil {
			return fmt.Errorf("inserting plan entry %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) Get(ctx context.Context, userID string) (*StoredPlan, error) {
	var generatedAt, stop string
	err := r.db.QueryRowContext(ctx,
		`SELECT generated_at, stop_reason FROM plans WHERE user_id = ?`, userID).Scan(&generatedAt, &stop)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	p := &StoredPlan{StopReason: stop}
	if p.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt); err != nil {
		return nil, fmt.Errorf("parsing generated_at: %w", err)
	}
	p.Entries, err = r.listEntries(ctx,
		`SELECT date, start_min, end_min, item_name FROM plan_entries WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByDate returns the entries planned on date ordered by start time.
func (r *SQLitePlanRepo) ListByDate(ctx context.Context, userID, date string) ([]domain.PlanEntry, error) {
	return r.listEntries(ctx,
		`SELECT date, start_min, end_min, item_name FROM plan_entries
		WHERE user_id = ? AND date = ? ORDER BY start_min, seq`, userID, date)
}

func (r *SQLitePlanRepo) listEntries(ctx context.Context, query string, args ...any) ([]domain.PlanEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing plan entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.PlanEntry
	for rows.Next() {
		var e domain.PlanEntry
		var start, end int
		if err := rows.Scan(&e.Date, &start, &end, &e.ItemName); err != nil {
			return nil, fmt.Errorf("scanning plan entry: %w", err)
		}
		e.Start, e.End = domain.ClockTime(start), domain.ClockTime(end)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan entries: %w", err)
	}
	return entries, nil
}
