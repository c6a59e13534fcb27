package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/validator"
)

func TestGenerateValidSolution(t *testing.T) {
	e := New()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for seed := int64(1); seed <= 20; seed++ {
		_, solution, st, err := e.Generate(ctx, seed, 17, 35)
		if err != nil {
			t.Fatalf("Generate(seed=%d) failed: %v (nodes=%d)", seed, err, st.Nodes)
		}
		if got := solution.CountGivens(); got != 81 {
			t.Fatalf("seed=%d: solution has %d filled cells, want 81", seed, got)
		}
		ok, conf, err := validator.New().Validate(ctx, solution)
		if err != nil || !ok {
			t.Fatalf("seed=%d: invalid solution: err=%v conflicts=%v", seed, err, conf)
		}
	}
}

func TestPuzzleConsistentWithSolution(t *testing.T) {
	e := New()
	ctx := context.Background()

	puzzle, solution, _, err := e.Generate(ctx, 42, 17, 35)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if puzzle[r][c] != 0 && puzzle[r][c] != solution[r][c] {
				t.Fatalf("puzzle[%d][%d]=%d disagrees with solution %d", r, c, puzzle[r][c], solution[r][c])
			}
		}
	}
}

func TestGivensWithinBounds(t *testing.T) {
	e := New()
	ctx := context.Background()

	for seed := int64(100); seed < 130; seed++ {
		puzzle, _, _, err := e.Generate(ctx, seed, 20, 30)
		if err != nil {
			t.Fatalf("Generate(seed=%d) failed: %v", seed, err)
		}
		if g := puzzle.CountGivens(); g < 20 || g > 30 {
			t.Fatalf("seed=%d: givens=%d outside [20, 30]", seed, g)
		}
	}
}

func TestExactGivensWhenBoundsCollapse(t *testing.T) {
	e := New()
	ctx := context.Background()

	for seed := int64(7); seed < 17; seed++ {
		puzzle, _, _, err := e.Generate(ctx, seed, 30, 30)
		if err != nil {
			t.Fatalf("Generate(seed=%d) failed: %v", seed, err)
		}
		if g := puzzle.CountGivens(); g != 30 {
			t.Fatalf("seed=%d: givens=%d, want exactly 30", seed, g)
		}
	}
}

func TestBoundsRejectedBeforeUse(t *testing.T) {
	e := New()
	ctx := context.Background()

	cases := []struct {
		name     string
		min, max int
	}{
		{"inverted", 35, 17},
		{"zero min", 0, 35},
		{"negative min", -1, 35},
		{"max above 81", 17, 82},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := e.Generate(ctx, 1, tc.min, tc.max)
			if !errors.Is(err, ErrGivensRange) {
				t.Fatalf("want ErrGivensRange, got %v", err)
			}
			if !errors.Is(err, domain.ErrConfiguration) {
				t.Fatalf("ErrGivensRange should wrap domain.ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	e := New()
	ctx := context.Background()

	p1, s1, _, err := e.Generate(ctx, 12345, 17, 35)
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	p2, s2, _, err := e.Generate(ctx, 12345, 17, 35)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if p1 != p2 || s1 != s2 {
		t.Fatal("same seed produced different grids")
	}
}

func TestClassifyThresholds(t *testing.T) {
	e := New()
	cases := []struct {
		givens int
		want   domain.Difficulty
	}{
		{35, domain.Easy},
		{30, domain.Easy},
		{29, domain.Medium},
		{25, domain.Medium},
		{24, domain.Hard},
		{17, domain.Hard},
	}
	for _, tc := range cases {
		g := gridWithGivens(tc.givens)
		if got := e.Classify(g); got != tc.want {
			t.Fatalf("Classify(givens=%d)=%v, want %v", tc.givens, got, tc.want)
		}
		// pure function of given count
		if again := e.Classify(g); again != tc.want {
			t.Fatalf("Classify not idempotent for givens=%d", tc.givens)
		}
	}
}

// gridWithGivens fills the first n cells in row-major order. Classification
// only counts givens, so validity does not matter here.
func gridWithGivens(n int) domain.Grid {
	var g domain.Grid
	for i := 0; i < n; i++ {
		g[i/9][i%9] = uint8(i%9 + 1)
	}
	return g
}

func TestSeedDiagonalBoxes(t *testing.T) {
	e := New()
	ctx := context.Background()

	// Diagonal boxes are seeded as permutations; verify each box of the
	// final solution holds 1-9 exactly once.
	_, solution, _, err := e.Generate(ctx, 9, 17, 35)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for box := 0; box < 9; box += 3 {
		seen := [10]bool{}
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				v := solution[box+dr][box+dc]
				if v < 1 || v > 9 || seen[v] {
					t.Fatalf("box at (%d,%d) is not a permutation", box, box)
				}
				seen[v] = true
			}
		}
	}
}
