package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// ErrNoFrames reports an encode request with an empty frame sequence.
var ErrNoFrames = errors.New("video: no frames to encode")

// Encoder assembles rendered frames into a video file by invoking ffmpeg.
type Encoder struct {
	Binary string
	Preset Preset
}

// NewEncoder creates an encoder using the ffmpeg binary from PATH.
func NewEncoder(p Preset) *Encoder {
	return &Encoder{Binary: "ffmpeg", Preset: p}
}

// Available reports whether the encoder binary can be found.
func (e *Encoder) Available() bool {
	_, err := exec.LookPath(e.Binary)
	return err == nil
}

// Encode writes frames as numbered PNGs to a scratch directory and
// assembles them into a video at path.
func (e *Encoder) Encode(ctx context.Context, frames []image.Image, fps int, path string) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	tmp, err := os.MkdirTemp("", "sudokugen-frames-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	for i, frame := range frames {
		name := filepath.Join(tmp, fmt.Sprintf("frame_%05d.png", i))
		if err := writePNG(name, frame); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	args := []string{
		"-y",
		"-framerate", strconv.Itoa(fps),
		"-i", filepath.Join(tmp, "frame_%05d.png"),
	}
	args = append(args, e.Preset.Args()...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, e.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.Bytes()))
	}
	return nil
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

func lastLine(out []byte) string {
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	if len(lines) == 0 {
		return ""
	}
	return string(lines[len(lines)-1])
}
