package video

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset describes reusable FFmpeg output settings.
type Preset struct {
	Name         string   `yaml:"-"`
	VideoCodec   string   `yaml:"video_codec"`
	VideoBitrate string   `yaml:"video_bitrate"`
	PixelFormat  string   `yaml:"pixel_format"`
	ExtraArgs    []string `yaml:"extra_args"`
}

// Args returns the ffmpeg arguments encoded by the preset.
func (p Preset) Args() []string {
	args := make([]string, 0, 6+len(p.ExtraArgs))
	if p.VideoCodec != "" {
		args = append(args, "-c:v", p.VideoCodec)
	}
	if p.VideoBitrate != "" {
		args = append(args, "-b:v", p.VideoBitrate)
	}
	if p.PixelFormat != "" {
		args = append(args, "-pix_fmt", p.PixelFormat)
	}
	args = append(args, p.ExtraArgs...)
	return args
}

// DefaultPreset targets broadly playable H.264 MP4 output.
func DefaultPreset() Preset {
	return Preset{
		Name:        "default",
		VideoCodec:  "libx264",
		PixelFormat: "yuv420p",
	}
}

// PresetLibrary stores named presets.
type PresetLibrary struct {
	presets map[string]Preset
}

// NewPresetLibrary constructs a library from a map of presets.
func NewPresetLibrary(m map[string]Preset) *PresetLibrary {
	cp := make(map[string]Preset, len(m))
	for k, v := range m {
		v.Name = k
		cp[k] = v
	}
	return &PresetLibrary{presets: cp}
}

// DefaultPresetLibrary contains the built-in presets.
func DefaultPresetLibrary() *PresetLibrary {
	return NewPresetLibrary(map[string]Preset{
		"default": DefaultPreset(),
		"lossless": {
			VideoCodec:  "libx264",
			PixelFormat: "yuv444p",
			ExtraArgs:   []string{"-crf", "0"},
		},
	})
}

// LoadPresetFile reads a YAML map of named presets from disk and merges it
// over the built-in library.
func LoadPresetFile(path string) (*PresetLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]Preset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	lib := DefaultPresetLibrary()
	for k, v := range raw {
		v.Name = k
		lib.presets[k] = v
	}
	return lib, nil
}

// Get returns the named preset.
func (l *PresetLibrary) Get(name string) (Preset, bool) {
	p, ok := l.presets[name]
	return p, ok
}
