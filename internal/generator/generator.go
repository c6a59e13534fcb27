package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

var (
	// ErrGivensRange reports givens bounds outside 0 < min <= max <= 81.
	ErrGivensRange = fmt.Errorf("%w: givens bounds must satisfy 0 < min <= max <= 81", domain.ErrConfiguration)

	// ErrExhausted reports completion-search exhaustion on a diagonally
	// seeded grid. A valid completion always exists from such seeds, so
	// this indicates a bug in the seeding or validity checks, not an
	// unlucky draw.
	ErrExhausted = fmt.Errorf("%w: completion search exhausted", domain.ErrInvariant)
)

// Engine constructs puzzles: complete-grid generation, carving, and
// difficulty classification. Randomness comes from an explicit per-call
// seed so runs reproduce regardless of call order.
type Engine struct{}

func New() *Engine { return &Engine{} }

// Generate builds a full valid solution grid, then carves it down to a
// puzzle with a given count drawn uniformly from [minGivens, maxGivens].
// Bounds are checked before any randomness is consumed.
func (e *Engine) Generate(ctx context.Context, seed int64, minGivens, maxGivens int) (domain.Grid, domain.Grid, ports.Stats, error) {
	start := time.Now()
	if minGivens <= 0 || minGivens > maxGivens || maxGivens > 81 {
		return domain.Grid{}, domain.Grid{}, ports.Stats{}, ErrGivensRange
	}

	rng := rand.New(rand.NewSource(seed))
	var solution domain.Grid
	nodes, err := complete(ctx, rng, &solution)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return domain.Grid{}, domain.Grid{}, st, err
	}

	puzzle := carve(rng, solution, minGivens, maxGivens)
	st.Duration = time.Since(start)
	return puzzle, solution, st, nil
}

// GenerateSudoku is a convenience wrapper using a time-derived seed.
func GenerateSudoku(minGivens, maxGivens int) (puzzle, solution domain.Grid, err error) {
	puzzle, solution, _, err = New().Generate(context.Background(), time.Now().UnixNano(), minGivens, maxGivens)
	return puzzle, solution, err
}
