package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLiteStudyWindowRepo implements StudyWindowRepo using a SQLite database.
type SQLiteStudyWindowRepo struct {
	db db.DBTX
}

func NewSQLiteStudyWindowRepo(conn db.DBTX) *SQLiteStudyWindowRepo {
	return &SQLiteStudyWindowRepo{db: conn}
}

func (r *SQLiteStudyWindowRepo) Create(ctx context.Context, userID string, w *domain.StudyWindow) error {
	query := `INSERT INTO study_windows (id, user_id, weekday, start_min, end_min, focus, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID, userID, int(w.Weekday), int(w.Start), int(w.End), string(w.Focus), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("inserting study window: %w", err)
	}
	return nil
}

func (r *SQLiteStudyWindowRepo) List(ctx context.Context, userID string) ([]domain.StudyWindow, error) {
	query := `SELECT id, weekday, start_min, end_min, focus FROM study_windows
		WHERE user_id = ? ORDER BY weekday, start_min, rowid`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing study windows: %w", err)
	}
	defer rows.Close()

	var windows []domain.StudyWindow
	for rows.Next() {
		var w domain.StudyWindow
		var weekday, start, end int
		var focus string
		if err := rows.Scan(&w.ID, &weekday, &start, &end, &focus); err != nil {
			return nil, fmt.Errorf("scanning study window row: %w", err)
		}
		w.Weekday = time.Weekday(weekday)
		w.Start, w.End = domain.ClockTime(start), domain.ClockTime(end)
		w.Focus = domain.FocusLevel(focus)
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study windows: %w", err)
	}
	return windows, nil
}

func (r *SQLiteStudyWindowRepo) Clear(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_windows WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing study windows: %w", err)
	}
	return nil
}
