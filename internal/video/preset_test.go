package video

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetArgs(t *testing.T) {
	p := Preset{
		VideoCodec:   "libx264",
		VideoBitrate: "2M",
		PixelFormat:  "yuv420p",
		ExtraArgs:    []string{"-movflags", "+faststart"},
	}
	require.Equal(t, []string{
		"-c:v", "libx264",
		"-b:v", "2M",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
	}, p.Args())
}

func TestPresetArgsSkipsEmptyFields(t *testing.T) {
	require.Empty(t, Preset{}.Args())
}

func TestDefaultPresetLibrary(t *testing.T) {
	lib := DefaultPresetLibrary()
	p, ok := lib.Get("default")
	require.True(t, ok)
	require.Equal(t, "libx264", p.VideoCodec)
	require.Equal(t, "yuv420p", p.PixelFormat)

	_, ok = lib.Get("missing")
	require.False(t, ok)
}

func TestLoadPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := `
archival:
  video_codec: ffv1
  pixel_format: rgb24
default:
  video_codec: libx265
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	lib, err := LoadPresetFile(path)
	require.NoError(t, err)

	p, ok := lib.Get("archival")
	require.True(t, ok)
	require.Equal(t, "archival", p.Name)
	require.Equal(t, "ffv1", p.VideoCodec)

	// file entries override built-ins
	p, ok = lib.Get("default")
	require.True(t, ok)
	require.Equal(t, "libx265", p.VideoCodec)
}

func TestLoadPresetFileMissing(t *testing.T) {
	_, err := LoadPresetFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
