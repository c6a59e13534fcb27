// Package config loads and validates the settings of a dataset
// generation run from defaults, an optional config file, and SUDOKUGEN_*
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"svw.info/sudokugen/internal/domain"
)

// Config collects every knob of a dataset generation run.
type Config struct {
	NumSamples int    `mapstructure:"num_samples"`
	Seed       int64  `mapstructure:"seed"`
	OutputDir  string `mapstructure:"output_dir"`
	DomainName string `mapstructure:"domain"`
	Workers    int    `mapstructure:"workers"`

	ImageWidth  int `mapstructure:"image_width"`
	ImageHeight int `mapstructure:"image_height"`

	MinGivens int `mapstructure:"min_givens"`
	MaxGivens int `mapstructure:"max_givens"`

	GenerateVideos      bool    `mapstructure:"generate_videos"`
	VideoFPS            int     `mapstructure:"video_fps"`
	TargetVideoDuration float64 `mapstructure:"target_video_duration"`
	HoldFrames          int     `mapstructure:"hold_frames"`
	VideoPreset         string  `mapstructure:"video_preset"`
	PresetFile          string  `mapstructure:"preset_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("num_samples", 10)
	v.SetDefault("seed", 0) // 0 means time-derived
	v.SetDefault("output_dir", "data/questions")
	v.SetDefault("domain", "sudoku")
	v.SetDefault("workers", 1)
	v.SetDefault("image_width", 512)
	v.SetDefault("image_height", 512)
	v.SetDefault("min_givens", 17)
	v.SetDefault("max_givens", 35)
	v.SetDefault("generate_videos", true)
	v.SetDefault("video_fps", 15)
	v.SetDefault("target_video_duration", 10.0)
	v.SetDefault("hold_frames", 4)
	v.SetDefault("video_preset", "default")
}

// Load reads defaults, the optional config file at path, and environment
// overrides. It does not validate; call Validate before use.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SUDOKUGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects out-of-range settings before any generation starts.
// All reported errors wrap domain.ErrConfiguration.
func (c *Config) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", domain.ErrConfiguration, fmt.Sprintf(format, args...))
	}
	if c.NumSamples < 0 {
		return fail("num_samples must be non-negative, got %d", c.NumSamples)
	}
	if c.Workers < 1 {
		return fail("workers must be at least 1, got %d", c.Workers)
	}
	if c.MinGivens <= 0 || c.MinGivens > c.MaxGivens || c.MaxGivens > 81 {
		return fail("givens bounds must satisfy 0 < min <= max <= 81, got [%d, %d]", c.MinGivens, c.MaxGivens)
	}
	if c.ImageWidth < 90 || c.ImageHeight < 90 {
		return fail("image size must be at least 90x90, got %dx%d", c.ImageWidth, c.ImageHeight)
	}
	if c.VideoFPS <= 0 {
		return fail("video_fps must be positive, got %d", c.VideoFPS)
	}
	if c.TargetVideoDuration < 0 {
		return fail("target_video_duration must be non-negative, got %g", c.TargetVideoDuration)
	}
	if c.HoldFrames < 0 {
		return fail("hold_frames must be non-negative, got %d", c.HoldFrames)
	}
	if c.OutputDir == "" {
		return fail("output_dir must not be empty")
	}
	if c.DomainName == "" {
		return fail("domain must not be empty")
	}
	return nil
}

// Timing returns the animation timing bundle derived from the video
// settings.
func (c *Config) Timing() domain.Timing {
	return domain.Timing{
		FPS:            c.VideoFPS,
		TargetDuration: c.TargetVideoDuration,
		HoldFrames:     c.HoldFrames,
	}
}
