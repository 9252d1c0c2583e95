package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

func FormatTasks(tasks []*domain.TaskRecord) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			itemName(t.Name, t.Done), t.Type, t.Deadline, PriorityBadge(t.Priority), blocks(t.EstimatedBlocks),
		})
	}
	return RenderTable([]string{"NAME", "TYPE", "DEADLINE", "PRIORITY", "BLOCKS"}, rows)
}

func FormatTests(tests []*domain.TestRecord) string {
	if len(tests) == 0 {
		return Dim("No tests.") + "\n"
	}
	rows := make([][]string, 0, len(tests))
	for _, t := range tests {
		rows = append(rows, []string{
			itemName(t.Name, t.Done), t.Type, t.Date, PriorityBadge(t.Priority), blocks(t.EstimatedBlocks),
		})
	}
	return RenderTable([]string{"NAME", "TYPE", "DATE", "PRIORITY", "BLOCKS"}, rows)
}

func FormatClasses(classes []domain.ClassCommitment) string {
	if len(classes) == 0 {
		return Dim("No classes.") + "\n"
	}
	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, []string{c.Weekday.String(), ClockRange(c.Start, c.End), StyleFg.Render(c.Subject)})
	}
	return RenderTable([]string{"DAY", "TIME", "SUBJECT"}, rows)
}

func FormatWindows(windows []domain.StudyWindow) string {
	if len(windows) == 0 {
		return Dim("No study windows.") + "\n"
	}
	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		rows = append(rows, []string{w.Weekday.String(), ClockRange(w.Start, w.End), FocusBadge(w.Focus)})
	}
	return RenderTable([]string{"DAY", "TIME", "FOCUS"}, rows)
}

func FormatPreferences(p *domain.Preferences) string {
	return fmt.Sprintf("%s %s\n%s %s\n",
		Dim("awake:"), StyleFg.Render(p.AwakeTime.String()),
		Dim("sleep:"), StyleFg.Render(p.SleepTime.String()))
}

// FormatOverrides lists override blocks by date.
func FormatOverrides(overrides domain.DailyOverrides) string {
	if len(overrides) == 0 {
		return Dim("No overrides.") + "\n"
	}
	dates := make([]string, 0, len(overrides))
	for d := range overrides {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var b strings.Builder
	for _, d := range dates {
		parts := make([]string, 0, len(overrides[d]))
		for _, blk := range overrides[d] {
			part := ClockRange(blk.Start, blk.End)
			if blk.Focus != domain.FocusNone {
				part += " " + FocusBadge(blk.Focus)
			}
			parts = append(parts, part)
		}
		fmt.Fprintf(&b, "%s  %s\n", Bold(d), strings.Join(parts, ", "))
	}
	return b.String()
}

func itemName(name string, done bool) string {
	if done {
		return StyleDim.Render("✔ " + name)
	}
	return StyleFg.Render(name)
}

func blocks(estimate *int) string {
	if estimate == nil {
		return Dim("-")
	}
	return strconv.Itoa(*estimate)
}
