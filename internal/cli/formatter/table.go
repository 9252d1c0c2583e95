package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table under a header separator line.
// Widths are measured on visible characters so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = StyleHeader.Render(h)
	}
	writeRow(&b, styled, widths)

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, rules, widths)

	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", max(0, w-lipgloss.Width(cell))+colGap))
		}
	}
	b.WriteString("\n")
}
