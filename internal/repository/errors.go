package repository

import (
	"errors"
	"strings"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// mapConstraintErr turns a SQLite unique violation into ErrDuplicate.
func mapConstraintErr(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}
