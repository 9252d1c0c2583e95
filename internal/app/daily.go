package app

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

// DueItem is a pending task or test shown in check-ins and reminders.
type DueItem struct {
	Name     string
	Kind     domain.ItemKind
	Deadline time.Time
}

type DailyRequest struct {
	UserID string
	Now    *time.Time
	// Date defaults to the day of Now.
	Date *time.Time
}

type DailyResponse struct {
	Date     string
	Planned  []scheduler.SummaryLine
	Classes  []domain.ClassCommitment
	DueToday []DueItem
	// DueSoon lists items due within the next 24 hours of Now.
	DueSoon  []DueItem
	HasPlan  bool
	Warnings []string
}

type SuggestRequest struct {
	UserID         string
	Now            *time.Time
	AvailableHours int
}

type SuggestResponse struct {
	AvailableHours int
	Items          []string
}

type WeekRequest struct {
	UserID string
	// Start is truncated to its Monday.
	Start time.Time
}

type WeekResponse struct {
	Monday time.Time
	// Days holds seven day-summaries starting at Monday.
	Days [7][]scheduler.SummaryLine
}
