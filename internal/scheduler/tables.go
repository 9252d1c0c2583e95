package scheduler

import (
	"maps"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

const (
	// UnknownTypeScore is the priority score for types missing from the table.
	UnknownTypeScore = 99
	// UnknownTypeBlocks is the block estimate for types missing from the table.
	UnknownTypeBlocks = 1
)

// PriorityTable holds the lookup configuration used to size and rank work
// items. Values are copied in and never mutated, so one table can be shared
// across planning runs.
type PriorityTable struct {
	labels     map[domain.PriorityLabel]int
	typeScores map[string]int
	typeBlocks map[string]int
}

// DefaultPriorityTable returns the built-in scores and block estimates.
func DefaultPriorityTable() PriorityTable {
	return PriorityTable{
		labels: map[domain.PriorityLabel]int{
			domain.PriorityTop:    0,
			domain.PriorityHigh:   1,
			domain.PriorityMedium: 2,
			domain.PriorityLow:    3,
		},
		typeScores: map[string]int{
			domain.TypeExam:       1,
			domain.TypeProject:    2,
			domain.TypeQuiz:       3,
			domain.TypeAssignment: 4,
			domain.TypeSeatwork:   5,
		},
		typeBlocks: map[string]int{
			domain.TypeExam:       3,
			domain.TypeProject:    5,
			domain.TypeQuiz:       1,
			domain.TypeAssignment: 2,
			domain.TypeSeatwork:   1,
		},
	}
}

// WithTypeScores returns a copy of the table with the given type scores
// merged over the existing ones.
func (t PriorityTable) WithTypeScores(scores map[string]int) PriorityTable {
	out := t.clone()
	for k, v := range scores {
		out.typeScores[strings.ToLower(k)] = v
	}
	return out
}

// WithTypeBlocks returns a copy of the table with the given block estimates
// merged over the existing ones. Non-positive estimates are ignored.
func (t PriorityTable) WithTypeBlocks(blocks map[string]int) PriorityTable {
	out := t.clone()
	for k, v := range blocks {
		if v > 0 {
			out.typeBlocks[strings.ToLower(k)] = v
		}
	}
	return out
}

func (t PriorityTable) clone() PriorityTable {
	if t.labels == nil {
		return DefaultPriorityTable()
	}
	return PriorityTable{
		labels:     maps.Clone(t.labels),
		typeScores: maps.Clone(t.typeScores),
		typeBlocks: maps.Clone(t.typeBlocks),
	}
}

// Score returns the priority score: an explicit label wins over the type default.
func (t PriorityTable) Score(label domain.PriorityLabel, itemType string) int {
	if t.labels == nil {
		t = DefaultPriorityTable()
	}
	if s, ok := t.labels[label]; ok && label != domain.PriorityNone {
		return s
	}
	if s, ok := t.typeScores[strings.ToLower(itemType)]; ok {
		return s
	}
	return UnknownTypeScore
}

// Blocks returns the number of 1-hour blocks: an explicit estimate wins over
// the type default.
func (t PriorityTable) Blocks(estimate *int, itemType string) int {
	if t.labels == nil {
		t = DefaultPriorityTable()
	}
	fallback, ok := t.typeBlocks[strings.ToLower(itemType)]
	if !ok {
		fallback = UnknownTypeBlocks
	}
	return domain.IntFromPtrWithDefault(fallback, estimate)
}
