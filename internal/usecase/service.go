package usecase

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudokugen/internal/config"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/prompts"
)

// Service runs the generation pipeline: puzzle engine, prompt selection,
// rendering, animation scheduling, video encoding, and dataset writing.
type Service struct {
	cfg       *config.Config
	generator ports.Generator
	scheduler ports.Scheduler
	validator ports.Validator
	renderer  ports.Renderer
	encoder   ports.Encoder
	writer    ports.Writer
	log       *logrus.Logger
}

func NewService(cfg *config.Config, g ports.Generator, sch ports.Scheduler, v ports.Validator, r ports.Renderer, e ports.Encoder, w ports.Writer, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{
		cfg:       cfg,
		generator: g,
		scheduler: sch,
		validator: v,
		renderer:  r,
		encoder:   e,
		writer:    w,
		log:       log,
	}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// GenerateSample produces, renders, and persists sample index of the run.
// The sample seed derives from the base seed and the index, so output is
// independent of generation order.
func (u *Service) GenerateSample(ctx context.Context, index int) (*domain.TaskMeta, error) {
	if u.generator == nil || u.scheduler == nil || u.validator == nil || u.renderer == nil || u.writer == nil {
		return nil, errNotConfigured
	}
	seed := u.cfg.Seed + int64(index)
	id := fmt.Sprintf("task_%06d", index)

	puzzle, solution, st, err := u.generator.Generate(ctx, seed, u.cfg.MinGivens, u.cfg.MaxGivens)
	if err != nil {
		return nil, err
	}
	if err := u.checkSolution(ctx, solution); err != nil {
		return nil, err
	}

	diff := u.generator.Classify(puzzle)
	prompt := prompts.Pick(rand.New(rand.NewSource(seed)), diff)

	frames, steps, err := u.scheduler.BuildRevealSequence(seed, puzzle, solution, u.cfg.Timing())
	if err != nil {
		return nil, err
	}

	task := &domain.TaskPair{
		ID:         id,
		Domain:     u.cfg.DomainName,
		Seed:       seed,
		Difficulty: diff,
		Prompt:     prompt,
		Puzzle:     puzzle,
		Solution:   solution,
		Steps:      steps,
		CreatedAt:  time.Now().UnixNano(),
	}

	first := u.renderer.Render(puzzle, nil)
	final := u.renderer.Render(solution, nil)

	videoFile := ""
	if u.cfg.GenerateVideos && u.encoder != nil && u.encoder.Available() {
		path := filepath.Join(u.writer.SampleDir(id), "ground_truth.mp4")
		if err := u.encoder.Encode(ctx, u.renderFrames(frames), u.cfg.VideoFPS, path); err != nil {
			u.log.WithError(err).WithField("task", id).Warn("video encoding failed, continuing without video")
		} else {
			videoFile = "ground_truth.mp4"
		}
	}

	if err := u.writer.WriteSample(ctx, task, first, final, videoFile); err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"task":       id,
		"difficulty": diff.String(),
		"givens":     puzzle.CountGivens(),
		"frames":     len(frames),
		"nodes":      st.Nodes,
		"dur":        st.Duration.Round(time.Millisecond),
	}).Debug("sample generated")

	return &domain.TaskMeta{
		ID:         id,
		Difficulty: diff,
		Givens:     puzzle.CountGivens(),
		CreatedAt:  task.CreatedAt,
	}, nil
}

// checkSolution asserts the construction-time invariant: the solution is
// fully populated and conflict-free.
func (u *Service) checkSolution(ctx context.Context, solution domain.Grid) error {
	if solution.CountGivens() != 81 {
		return fmt.Errorf("%w: solution has empty cells", domain.ErrInvariant)
	}
	ok, conflicts, err := u.validator.Validate(ctx, solution)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: solution has %d conflicts", domain.ErrInvariant, len(conflicts))
	}
	return nil
}

// renderFrames rasterizes the reveal sequence, reusing the previous image
// for runs of identical frames (each step repeats its state).
func (u *Service) renderFrames(frames []domain.Frame) []image.Image {
	imgs := make([]image.Image, len(frames))
	for i := range frames {
		if i > 0 && sameFrame(frames[i], frames[i-1]) {
			imgs[i] = imgs[i-1]
			continue
		}
		imgs[i] = u.renderer.Render(frames[i].Grid, frames[i].Highlight)
	}
	return imgs
}

func sameFrame(a, b domain.Frame) bool {
	if a.Grid != b.Grid {
		return false
	}
	if (a.Highlight == nil) != (b.Highlight == nil) {
		return false
	}
	return a.Highlight == nil || *a.Highlight == *b.Highlight
}
