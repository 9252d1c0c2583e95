package domain

import (
	"fmt"
	"strings"
)

type ItemKind string

const (
	KindTask ItemKind = "task"
	KindTest ItemKind = "test"
)

// PriorityLabel is a user-set priority. The empty label means "use the type default".
type PriorityLabel string

const (
	PriorityNone   PriorityLabel = ""
	PriorityTop    PriorityLabel = "top"
	PriorityHigh   PriorityLabel = "high"
	PriorityMedium PriorityLabel = "medium"
	PriorityLow    PriorityLabel = "low"
)

// ParsePriority normalizes a user-supplied label. Empty input yields PriorityNone.
func ParsePriority(s string) (PriorityLabel, error) {
	switch p := PriorityLabel(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityNone, PriorityTop, PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("priority %q: %w", s, ErrInvalidPriority)
	}
}

type FocusLevel string

const (
	FocusNone   FocusLevel = ""
	FocusHigh   FocusLevel = "high"
	FocusMedium FocusLevel = "medium"
	FocusLow    FocusLevel = "low"
)

// ParseFocus normalizes a focus level. Empty input yields FocusNone.
func ParseFocus(s string) (FocusLevel, error) {
	switch f := FocusLevel(strings.ToLower(strings.TrimSpace(s))); f {
	case FocusNone, FocusHigh, FocusMedium, FocusLow:
		return f, nil
	default:
		return "", fmt.Errorf("focus %q: %w", s, ErrInvalidFocus)
	}
}

// Known task and test types. Other types are accepted and planned with the
// lowest urgency.
const (
	TypeAssignment = "assignment"
	TypeProject    = "project"
	TypeSeatwork   = "seatwork"
	TypeQuiz       = "quiz"
	TypeExam       = "exam"
)

// ValidTaskTypes is the canonical set of task type strings.
var ValidTaskTypes = map[string]bool{
	TypeAssignment: true, TypeProject: true, TypeSeatwork: true,
}

// ValidTestTypes is the canonical set of test type strings.
var ValidTestTypes = map[string]bool{
	TypeQuiz: true, TypeExam: true,
}
