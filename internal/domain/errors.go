package domain

import "errors"

var (
	ErrInvalidClock    = errors.New("invalid clock time (want HH:MM)")
	ErrInvalidWeekday  = errors.New("invalid weekday")
	ErrInvalidRange    = errors.New("end must be after start")
	ErrInvalidFocus    = errors.New("invalid focus level (want high|medium|low)")
	ErrInvalidPriority = errors.New("invalid priority (want top|high|medium|low)")
	ErrEmptyName       = errors.New("name is required")
)

// ValidationError marks user input rejected before anything is stored.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Invalid wraps err as a ValidationError for field.
func Invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
