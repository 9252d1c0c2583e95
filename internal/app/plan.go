package app

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

type PlanRequest struct {
	UserID    string
	Now       *time.Time
	ForceAuto bool
}

func NewPlanRequest(userID string) PlanRequest {
	return PlanRequest{UserID: userID}
}

// ResolveRequest answers a conflict. Exactly one of Winner or ForceAuto is
// expected; Winner is promoted to top priority permanently.
type ResolveRequest struct {
	UserID    string
	Now       *time.Time
	Winner    string
	ForceAuto bool
}

// ConflictView is the tie the user must break before planning continues.
type ConflictView struct {
	Options  []string
	Priority int
	Date     string
}

type ItemShortfall struct {
	Name      string
	Needed    int
	Allocated int
}

type PlanResponse struct {
	GeneratedAt    time.Time
	Status         scheduler.PlanStatus
	Message        string
	Entries        []domain.PlanEntry
	Conflict       *ConflictView
	Underallocated []ItemShortfall
	Unplaced       int // blocks the allocator could not place
	OpenSlots      int
	Skipped        []scheduler.SkippedItem
	Stop           scheduler.StopReason
	Warnings       []string
}

type ShowRequest struct {
	UserID string
}

// ShowResponse is the stored plan from the last successful run.
type ShowResponse struct {
	HasPlan     bool
	GeneratedAt time.Time
	Stop        scheduler.StopReason
	Entries     []domain.PlanEntry
}

type PlanErrorCode string

const (
	PlanErrUnknownChoice  PlanErrorCode = "UNKNOWN_CHOICE"
	PlanErrNoConflict     PlanErrorCode = "NO_CONFLICT"
	PlanErrInvalidRequest PlanErrorCode = "INVALID_REQUEST"
	PlanErrDataIntegrity  PlanErrorCode = "DATA_INTEGRITY"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
