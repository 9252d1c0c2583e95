package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// AllocationBar renders how many of an item's blocks were placed, one cell
// per block: [██░░░] 2/5. Coverage under a third is red, under two thirds yellow.
func AllocationBar(allocated, needed int) string {
	if needed < 1 {
		needed = 1
	}
	allocated = min(max(allocated, 0), needed)

	bar := strings.Repeat(filledBlock, allocated) + strings.Repeat(emptyBlock, needed-allocated)
	style := StyleGreen
	switch pct := float64(allocated) / float64(needed); {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), allocated, needed)
}
