package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/config"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/infrastructure/dataset"
	"svw.info/sudokugen/internal/render"
	"svw.info/sudokugen/internal/schedule"
	"svw.info/sudokugen/internal/validator"
	"svw.info/sudokugen/internal/video"
)

func testService(t *testing.T, root string, mutate func(*config.Config)) *Service {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.OutputDir = root
	cfg.Seed = 42
	cfg.NumSamples = 3
	cfg.GenerateVideos = false // no ffmpeg in CI
	cfg.ImageWidth = 128
	cfg.ImageHeight = 128
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())

	r, err := render.New(cfg.ImageWidth, cfg.ImageHeight)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewService(
		cfg,
		generator.New(),
		schedule.New(),
		validator.New(),
		r,
		video.NewEncoder(video.DefaultPreset()),
		dataset.NewFS(cfg.OutputDir, cfg.DomainName),
		log,
	)
}

func readTask(t *testing.T, svc *Service, id string) domain.TaskPair {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(svc.writer.SampleDir(id), "task.json"))
	require.NoError(t, err)
	var task domain.TaskPair
	require.NoError(t, json.Unmarshal(data, &task))
	return task
}

func TestGenerateSampleWritesArtifacts(t *testing.T) {
	root := t.TempDir()
	svc := testService(t, root, nil)

	meta, err := svc.GenerateSample(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, "task_000000", meta.ID)
	require.GreaterOrEqual(t, meta.Givens, 17)
	require.LessOrEqual(t, meta.Givens, 35)

	dir := filepath.Join(root, "sudoku_task", "task_000000")
	for _, name := range []string{"first.png", "final.png", "task.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	task := readTask(t, svc, meta.ID)
	require.Equal(t, meta.Givens, task.Puzzle.CountGivens())
	require.Equal(t, 81, task.Solution.CountGivens())
	require.NotEmpty(t, task.Prompt)
	require.Len(t, task.Steps, 81-meta.Givens)
}

func TestGenerateSampleReproduciblePerSeed(t *testing.T) {
	svcA := testService(t, t.TempDir(), nil)
	svcB := testService(t, t.TempDir(), nil)

	_, err := svcA.GenerateSample(context.Background(), 1)
	require.NoError(t, err)
	_, err = svcB.GenerateSample(context.Background(), 1)
	require.NoError(t, err)

	a := readTask(t, svcA, "task_000001")
	b := readTask(t, svcB, "task_000001")
	require.Equal(t, a.Puzzle, b.Puzzle)
	require.Equal(t, a.Solution, b.Solution)
	require.Equal(t, a.Steps, b.Steps)
	require.Equal(t, a.Prompt, b.Prompt)
}

func TestRunWritesIndex(t *testing.T) {
	root := t.TempDir()
	svc := testService(t, root, func(c *config.Config) {
		c.NumSamples = 4
		c.Workers = 2
	})

	metas, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 4)
	for i, m := range metas {
		require.Equalf(t, fmt.Sprintf("task_%06d", i), m.ID, "index order must be stable across workers")
	}

	data, err := os.ReadFile(filepath.Join(root, "sudoku_task", "index.json"))
	require.NoError(t, err)
	var got []domain.TaskMeta
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, metas, got)
}

func TestExactGivensConfig(t *testing.T) {
	svc := testService(t, t.TempDir(), func(c *config.Config) {
		c.MinGivens = 30
		c.MaxGivens = 30
		c.NumSamples = 2
	})

	metas, err := svc.Run(context.Background())
	require.NoError(t, err)
	for _, m := range metas {
		require.Equal(t, 30, m.Givens)
		require.Equal(t, domain.Easy, m.Difficulty)
	}
}

func TestSameFrame(t *testing.T) {
	var g domain.Grid
	h := domain.CellCoord{Row: 1, Col: 2}
	require.True(t, sameFrame(domain.Frame{Grid: g}, domain.Frame{Grid: g}))
	require.True(t, sameFrame(domain.Frame{Grid: g, Highlight: &h}, domain.Frame{Grid: g, Highlight: &domain.CellCoord{Row: 1, Col: 2}}))
	require.False(t, sameFrame(domain.Frame{Grid: g, Highlight: &h}, domain.Frame{Grid: g}))
	g2 := g
	g2[0][0] = 1
	require.False(t, sameFrame(domain.Frame{Grid: g}, domain.Frame{Grid: g2}))
}
