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

// SQLitePreferencesRepo implements PreferencesRepo using a SQLite database.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	var awake, sleep int
	err := r.db.QueryRowContext(ctx,
		`SELECT awake_min, sleep_min FROM preferences WHERE user_id = ?`, userID).Scan(&awake, &sleep)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preferences: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preferences: %w", err)
	}
	return &domain.Preferences{AwakeTime: domain.ClockTime(awake), SleepTime: domain.ClockTime(sleep)}, nil
}

func (r *SQLitePreferencesRepo) Upsert(ctx context.Context, userID string, p domain.Preferences) error {
	query := `INSERT INTO preferences (user_id, awake_min, sleep_min, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			awake_min = excluded.awake_min,
			sleep_min = excluded.sleep_min,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, userID, int(p.AwakeTime), int(p.SleepTime), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}
