package config

import "fmt"

// Preset names a trade-off between frame count and robustness.
type Preset string

const (
	PresetRobust   Preset = "robust"
	PresetBalanced Preset = "balanced"
	PresetDense    Preset = "dense"
)

// PresetSettings contains the values a preset overrides.
type PresetSettings struct {
	DownscaleFactor int
	Quality         int
}

// GetPresetSettings returns settings for the given preset.
func GetPresetSettings(preset Preset) (PresetSettings, error) {
	switch preset {
	case PresetRobust:
		return PresetSettings{DownscaleFactor: 8, Quality: 18}, nil
	case PresetBalanced:
		return PresetSettings{DownscaleFactor: 4, Quality: 12}, nil
	case PresetDense:
		return PresetSettings{DownscaleFactor: 2, Quality: 1}, nil
	default:
		return PresetSettings{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, preset)
	}
}

// ApplyPreset overrides the downscale factor and quality of c.
func (c *Config) ApplyPreset(preset Preset) error {
	s, err := GetPresetSettings(preset)
	if err != nil {
		return err
	}
	c.DownscaleFactor = s.DownscaleFactor
	c.Quality = s.Quality
	return nil
}
