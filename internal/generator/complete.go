package generator

import (
	"context"
	"math/rand"

	"svw.info/sudokugen/internal/domain"
)

// seedDiagonal fills the three diagonal 3x3 boxes with independently
// shuffled permutations of 1-9. The boxes share no row, column, or box,
// so any permutation is valid without cross-checks.
func seedDiagonal(rng *rand.Rand, g *domain.Grid) {
	for box := 0; box < 9; box += 3 {
		perm := rng.Perm(9)
		for i, p := range perm {
			g[box+i/3][box+i%3] = uint8(p + 1)
		}
	}
}

// complete seeds the diagonal boxes and fills the remaining cells by
// backtracking over shuffled candidate orders. It returns the number of
// placement attempts. Exhaustion maps to ErrExhausted unless the context
// was canceled first.
func complete(ctx context.Context, rng *rand.Rand, g *domain.Grid) (int, error) {
	seedDiagonal(rng, g)

	nodes := 0
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(g)
		if !ok {
			return true
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		order := nums // deeper levels reshuffle nums in place
		for _, v := range order {
			nodes++
			if isValid(g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nodes, err
		}
		return nodes, ErrExhausted
	}
	return nodes, nil
}

// isValid reports whether v can be placed at (r, c) without conflicting
// with the cell's row, column, or containing box.
func isValid(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first zero cell in row-major order.
func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
