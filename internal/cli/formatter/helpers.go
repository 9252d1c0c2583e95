package formatter

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// RelativeDueFrom describes how far a deadline is from now: "in 3h",
// "tomorrow", "in 5d" or "overdue".
func RelativeDueFrom(deadline, now time.Time) string {
	diff := deadline.Sub(now)
	switch {
	case diff <= 0:
		return "overdue"
	case diff < time.Hour:
		return fmt.Sprintf("in %dm", int(math.Ceil(diff.Minutes())))
	case domain.SameDate(deadline, now):
		return fmt.Sprintf("in %dh", int(diff.Hours()))
	case domain.SameDate(deadline, now.AddDate(0, 0, 1)):
		return "tomorrow"
	default:
		days := int(domain.StartOfDay(deadline).Sub(domain.StartOfDay(now)).Hours() / 24)
		return fmt.Sprintf("in %dd", days)
	}
}

// RelativeDueStyled colors RelativeDueFrom red inside a day and yellow inside three.
func RelativeDueStyled(deadline, now time.Time) string {
	text := RelativeDueFrom(deadline, now)
	switch diff := deadline.Sub(now); {
	case diff <= 24*time.Hour:
		return StyleRed.Render(text)
	case diff <= 72*time.Hour:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// ClockRange renders "09:00-10:30".
func ClockRange(start, end domain.ClockTime) string {
	return start.String() + "-" + end.String()
}

// DayLabel renders a date key such as "Mon 2025-03-10".
func DayLabel(date time.Time) string {
	return date.Format("Mon 2006-01-02")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
