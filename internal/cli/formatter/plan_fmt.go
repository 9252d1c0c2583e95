package formatter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

// FormatPlan renders the outcome of a plan or resolve run.
func FormatPlan(resp *app.PlanResponse) string {
	var b strings.Builder
	writeWarnings(&b, resp.Warnings)

	switch resp.Status {
	case scheduler.StatusEmpty:
		b.WriteString(Dim("Nothing to schedule.") + "\n")
		writeSkipped(&b, resp.Skipped)
		return b.String()
	case scheduler.StatusConflict:
		b.WriteString(FormatConflict(resp.Conflict))
		writeSkipped(&b, resp.Skipped)
		return b.String()
	}

	b.WriteString(Header(fmt.Sprintf("Study plan (%s)", plural(len(resp.Entries), "block", "blocks"))))
	b.WriteString("\n")
	b.WriteString(FormatEntries(resp.Entries))

	if len(resp.Underallocated) > 0 {
		b.WriteString("\n" + StyleYellow.Render("Not enough time before the deadline for:") + "\n")
		for _, s := range resp.Underallocated {
			fmt.Fprintf(&b, "  %s  %s\n", StyleFg.Render(s.Name), AllocationBar(s.Allocated, s.Needed))
		}
		b.WriteString("  " + Dim(fmt.Sprintf("%s left unplaced (%s open in the horizon)",
			plural(resp.Unplaced, "block", "blocks"), plural(resp.OpenSlots, "hour", "hours"))) + "\n")
	}
	writeSkipped(&b, resp.Skipped)
	return b.String()
}

// FormatConflict explains a priority tie and how to break it.
func FormatConflict(c *app.ConflictView) string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render("Scheduling conflict") + "\n")
	fmt.Fprintf(&b, "%s share priority %d and are due on %s.\n",
		Bold(strings.Join(c.Options, " and ")), c.Priority, c.Date)
	b.WriteString(Dim("Pick one with `studyplan plan --choose NAME` or let the planner decide with `studyplan plan --auto`.") + "\n")
	return b.String()
}

// FormatEntries renders a plan grouped by date.
func FormatEntries(entries []domain.PlanEntry) string {
	if len(entries) == 0 {
		return Dim("No blocks scheduled.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	last := ""
	for _, e := range sortedEntries(entries) {
		date := ""
		if e.Date != last {
			date = e.Date
			if t, err := time.Parse(domain.DateLayout, e.Date); err == nil {
				date = DayLabel(t)
			}
			last = e.Date
		}
		rows = append(rows, []string{date, ClockRange(e.Start, e.End), StyleFg.Render(e.ItemName)})
	}
	return RenderTable([]string{"DATE", "TIME", "WORK ON"}, rows)
}

// FormatSummary renders one day's summary lines.
func FormatSummary(lines []scheduler.SummaryLine) string {
	if len(lines) == 0 {
		return Dim("Nothing planned.") + "\n"
	}
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "  %s  %s\n", StyleBlue.Render(ClockRange(l.Start, l.End)), StyleFg.Render(l.Task))
	}
	return b.String()
}

// FormatDaily renders the check-in for one date.
func FormatDaily(resp *app.DailyResponse, now time.Time) string {
	var b strings.Builder
	writeWarnings(&b, resp.Warnings)

	b.WriteString(Header("Today " + resp.Date))
	b.WriteString("\n")
	if !resp.HasPlan {
		b.WriteString(Dim("No plan yet. Run `studyplan plan` first.") + "\n")
	} else {
		b.WriteString(FormatSummary(resp.Planned))
	}

	if len(resp.Classes) > 0 {
		b.WriteString("\n" + Bold("Classes") + "\n")
		for _, c := range resp.Classes {
			fmt.Fprintf(&b, "  %s  %s\n", StyleBlue.Render(ClockRange(c.Start, c.End)), c.Subject)
		}
	}

	if len(resp.DueToday) > 0 {
		b.WriteString("\n" + Bold("Due today") + "\n")
		writeDue(&b, resp.DueToday, now)
	}
	if len(resp.DueSoon) > 0 {
		b.WriteString("\n" + Bold("Due within 24 hours") + "\n")
		writeDue(&b, resp.DueSoon, now)
	}
	return b.String()
}

// FormatSuggestion renders the quick priority list.
func FormatSuggestion(resp *app.SuggestResponse) string {
	if len(resp.Items) == 0 {
		return Dim("Nothing to suggest.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("With %s free", plural(resp.AvailableHours, "hour", "hours"))))
	b.WriteString("\n")
	for i, name := range resp.Items {
		fmt.Fprintf(&b, "%s %s\n", Bold(fmt.Sprintf("%d.", i+1)), StyleFg.Render(name))
	}
	return b.String()
}

// FormatWeek renders the seven days of a week plan as plain sections.
func FormatWeek(resp *app.WeekResponse) string {
	var b strings.Builder
	b.WriteString(Header("Week of " + domain.DateKey(resp.Monday)))
	b.WriteString("\n")
	for i, lines := range resp.Days {
		b.WriteString(Bold(DayLabel(resp.Monday.AddDate(0, 0, i))) + "\n")
		b.WriteString(FormatSummary(lines))
	}
	return b.String()
}

func writeDue(b *strings.Builder, items []app.DueItem, now time.Time) {
	for _, it := range items {
		fmt.Fprintf(b, "  %s %s  %s\n",
			StyleFg.Render(it.Name), Dim("("+string(it.Kind)+")"), RelativeDueStyled(it.Deadline, now))
	}
}

func writeSkipped(b *strings.Builder, skipped []scheduler.SkippedItem) {
	if len(skipped) == 0 {
		return
	}
	b.WriteString("\n" + StyleYellow.Render("Skipped (unreadable deadline):") + "\n")
	for _, s := range skipped {
		fmt.Fprintf(b, "  %s %s\n", s.Name, Dim("("+string(s.Kind)+")"))
	}
}

func writeWarnings(b *strings.Builder, warnings []string) {
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("warning: "+w) + "\n")
	}
	if len(warnings) > 0 {
		b.WriteString("\n")
	}
}

func sortedEntries(entries []domain.PlanEntry) []domain.PlanEntry {
	out := make([]domain.PlanEntry, len(entries))
	copy(out, entries)
	slices.SortStableFunc(out, func(a, b domain.PlanEntry) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return int(a.Start) - int(b.Start)
	})
	return out
}
