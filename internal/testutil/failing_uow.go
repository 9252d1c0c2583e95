package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/db"
)

// FailingUoW runs fn in a real transaction and makes one write fail: the
// ExecContext call whose SQL contains Match, after Skip earlier matching
// calls have gone through. Reads and non-matching writes pass untouched, so
// tests name the statement that breaks instead of counting writes.
type FailingUoW struct {
	DB    *sql.DB
	Match string
	Skip  int
	Err   error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingExec{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	uow     *FailingUoW
	matched int
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.uow.Match) {
		f.matched++
		if f.matched == f.uow.Skip+1 {
			return nil, f.uow.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
