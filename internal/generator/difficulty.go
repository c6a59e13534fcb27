package generator

import "svw.info/sudokugen/internal/domain"

// Classification thresholds by given count.
const (
	easyMinGivens   = 30
	mediumMinGivens = 25
)

// Classify grades a puzzle by its number of givens. It is a pure function
// of the given count; no solving-path analysis is performed.
func (e *Engine) Classify(puzzle domain.Grid) domain.Difficulty {
	switch givens := puzzle.CountGivens(); {
	case givens >= easyMinGivens:
		return domain.Easy
	case givens >= mediumMinGivens:
		return domain.Medium
	default:
		return domain.Hard
	}
}
