// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/vidstash/pkg/geometry"
	"github.com/user/vidstash/pkg/orchestrator"
	"github.com/user/vidstash/pkg/ports"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the full configuration for vidstash.
type Config struct {
	// Geometry
	BaseWidth       int `yaml:"base_width"`
	BaseHeight      int `yaml:"base_height"`
	DownscaleFactor int `yaml:"downscale_factor"`

	// Decoding
	Threshold int `yaml:"threshold"`

	// Encoding
	FPS     float64 `yaml:"frame_rate"`
	Quality int     `yaml:"quality"`
	Bitrate int     `yaml:"bitrate"`

	// Processing
	Workers      int    `yaml:"workers"`
	KeepScratch  bool   `yaml:"keep_scratch"`
	AppendOutput bool   `yaml:"append_output"`
	ScratchDir   string `yaml:"scratch_dir"`
	FFmpegPath   string `yaml:"ffmpeg_path"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		BaseWidth:       geometry.DefaultBaseWidth,
		BaseHeight:      geometry.DefaultBaseHeight,
		DownscaleFactor: geometry.DefaultFactor,

		Threshold: 128,

		FPS:     30.0,
		Quality: 12,

		DebugDir: "./debug",
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := c.Geometry(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("%w: threshold %d out of range 0-255", ErrInvalidConfig, c.Threshold)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: frame rate must be positive, got %g", ErrInvalidConfig, c.FPS)
	}
	if c.Quality < 0 || c.Quality > 63 {
		return fmt.Errorf("%w: quality %d out of range 0-63", ErrInvalidConfig, c.Quality)
	}
	if c.Bitrate < 0 {
		return fmt.Errorf("%w: negative bitrate", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error", "quiet", "silent":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// Geometry returns the frame geometry described by c.
func (c Config) Geometry() (geometry.Geometry, error) {
	return geometry.New(c.BaseWidth, c.BaseHeight, c.DownscaleFactor)
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(input, output string) orchestrator.Config {
	return orchestrator.Config{
		InputPath:  input,
		OutputPath: output,

		BaseWidth:       c.BaseWidth,
		BaseHeight:      c.BaseHeight,
		DownscaleFactor: c.DownscaleFactor,

		Threshold: uint8(c.Threshold),

		FPS:     c.FPS,
		Quality: c.Quality,
		Bitrate: c.Bitrate,

		ScratchDir:   c.ScratchDir,
		KeepScratch:  c.KeepScratch,
		AppendOutput: c.AppendOutput,
	}
}
