// Package dataset writes generated samples to disk in the
// <output>/<domain>_task/<id>/ layout consumed by downstream training
// pipelines.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"svw.info/sudokugen/internal/domain"
)

type FS struct {
	root       string
	domainName string
}

func NewFS(root, domainName string) *FS {
	return &FS{root: root, domainName: domainName}
}

// SampleDir returns the directory holding one sample's files.
func (s *FS) SampleDir(id string) string {
	return filepath.Join(s.root, s.domainName+"_task", id)
}

// record is the on-disk task.json shape: the task pair plus relative
// paths to the rendered artifacts.
type record struct {
	*domain.TaskPair
	FirstImage       string `json:"first_image"`
	FinalImage       string `json:"final_image"`
	GroundTruthVideo string `json:"ground_truth_video,omitempty"`
}

// WriteSample writes the rendered images and task.json for one sample.
// videoFile names an already-encoded video inside the sample directory,
// or is empty when video generation is off.
func (s *FS) WriteSample(ctx context.Context, task *domain.TaskPair, first, final image.Image, videoFile string) error {
	if task == nil || task.ID == "" {
		return errors.New("invalid task: missing ID")
	}
	dir := s.SampleDir(task.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writePNG(filepath.Join(dir, "first.png"), first); err != nil {
		return err
	}
	if err := writePNG(filepath.Join(dir, "final.png"), final); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, "task.json"), record{
		TaskPair:         task,
		FirstImage:       "first.png",
		FinalImage:       "final.png",
		GroundTruthVideo: videoFile,
	})
}

// WriteIndex rewrites the dataset index listing every generated sample.
func (s *FS) WriteIndex(ctx context.Context, metas []domain.TaskMeta) error {
	dir := filepath.Join(s.root, s.domainName+"_task")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, "index.json"), metas)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
