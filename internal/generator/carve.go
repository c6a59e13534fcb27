package generator

import (
	"math/rand"

	"svw.info/sudokugen/internal/domain"
)

// carve zeroes cells of a solution copy in random order until only the
// target number of givens, drawn uniformly from [minGivens, maxGivens],
// remains. Removals are not re-checked for uniqueness, so the result may
// admit more than one solution.
func carve(rng *rand.Rand, solution domain.Grid, minGivens, maxGivens int) domain.Grid {
	puzzle := solution
	targetGivens := minGivens + rng.Intn(maxGivens-minGivens+1)
	targetRemoved := 81 - targetGivens

	removed := 0
	for _, pos := range rng.Perm(81) {
		if removed >= targetRemoved {
			break
		}
		puzzle[pos/9][pos%9] = 0
		removed++
	}
	return puzzle
}
