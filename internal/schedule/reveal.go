package schedule

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// ErrTiming reports a timing bundle with a non-positive frame rate or a
// negative duration or hold length.
var ErrTiming = fmt.Errorf("%w: fps must be positive, duration and hold frames non-negative", domain.ErrConfiguration)

// Scheduler expands a (puzzle, solution) pair into an ordered, timed
// sequence of reveal frames approximating a target video duration.
type Scheduler struct{}

func New() *Scheduler { return &Scheduler{} }

// StepFrames returns the per-cell frame count for n empty cells under t:
// frames left after the two hold segments, split evenly across cells and
// never below one. Every revealed cell is held for the same count; there
// is no per-cell difficulty weighting.
func StepFrames(t domain.Timing, n int) int {
	if n == 0 {
		return 1
	}
	targetFrames := int(math.Round(t.TargetDuration * float64(t.FPS)))
	availableFrames := targetFrames - 2*t.HoldFrames
	if availableFrames < 1 {
		availableFrames = 1
	}
	step := int(math.Round(float64(availableFrames) / float64(n)))
	if step < 1 {
		step = 1
	}
	return step
}

// BuildRevealSequence emits hold frames of the untouched puzzle, then
// fills the empty cells in a random presentation order (each filled state
// repeated StepFrames times with the filled cell highlighted), then hold
// frames of the solution. Total length is 2*hold + step*n frames; the
// rounding drift against the duration target is expected. A puzzle with
// no empty cells yields just the two hold segments.
func (s *Scheduler) BuildRevealSequence(seed int64, puzzle, solution domain.Grid, t domain.Timing) ([]domain.Frame, []domain.RevealStep, error) {
	if t.FPS <= 0 || t.TargetDuration < 0 || t.HoldFrames < 0 {
		return nil, nil, ErrTiming
	}

	rng := rand.New(rand.NewSource(seed))
	cells := puzzle.EmptyCells()
	step := StepFrames(t, len(cells))

	frames := make([]domain.Frame, 0, 2*t.HoldFrames+step*len(cells))
	for i := 0; i < t.HoldFrames; i++ {
		frames = append(frames, domain.Frame{Grid: puzzle})
	}

	// Presentation order only; unrelated to any solving order.
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	steps := make([]domain.RevealStep, 0, len(cells))
	state := puzzle
	for _, cell := range cells {
		state[cell.Row][cell.Col] = solution[cell.Row][cell.Col]
		highlight := cell
		for i := 0; i < step; i++ {
			frames = append(frames, domain.Frame{Grid: state, Highlight: &highlight})
		}
		steps = append(steps, domain.RevealStep{Cell: cell, Frames: step})
	}

	for i := 0; i < t.HoldFrames; i++ {
		frames = append(frames, domain.Frame{Grid: solution})
	}
	return frames, steps, nil
}

// BuildRevealSequence is a convenience wrapper using a time-derived seed.
func BuildRevealSequence(puzzle, solution domain.Grid, fps int, targetDuration float64, holdFrames int) ([]domain.Frame, error) {
	frames, _, err := New().BuildRevealSequence(time.Now().UnixNano(), puzzle, solution, domain.Timing{
		FPS:            fps,
		TargetDuration: targetDuration,
		HoldFrames:     holdFrames,
	})
	return frames, err
}
