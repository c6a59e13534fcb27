package ports

import (
	"context"
	"image"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator constructs a (puzzle, solution) pair from an explicit seed and
// grades the result.
type Generator interface {
	Generate(ctx context.Context, seed int64, minGivens, maxGivens int) (puzzle, solution domain.Grid, st Stats, err error)
	Classify(puzzle domain.Grid) domain.Difficulty
}

// Scheduler orders the empty cells of a puzzle into a timed reveal sequence.
type Scheduler interface {
	BuildRevealSequence(seed int64, puzzle, solution domain.Grid, t domain.Timing) ([]domain.Frame, []domain.RevealStep, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Renderer draws a grid state as a raster image, optionally with one
// highlighted cell.
type Renderer interface {
	Render(g domain.Grid, highlight *domain.CellCoord) image.Image
}

// Encoder assembles rendered frames into a video file.
type Encoder interface {
	Available() bool
	Encode(ctx context.Context, frames []image.Image, fps int, path string) error
}

// Writer persists samples and the dataset index.
type Writer interface {
	SampleDir(id string) string
	WriteSample(ctx context.Context, task *domain.TaskPair, first, final image.Image, videoFile string) error
	WriteIndex(ctx context.Context, metas []domain.TaskMeta) error
}
