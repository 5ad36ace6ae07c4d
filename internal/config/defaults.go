package config

import (
	_ "embed"
)

//go:embed defaults/fitrush.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration, used when no YAML
// can be loaded at all.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  1280,
			Height: 720,
		},
		Avatar: AvatarConfig{
			Size: 60,
			X:    150,
		},
		Obstacles: ObstaclesConfig{
			Width:           60,
			PillarMinHeight: 100,
			PillarMaxHeight: 300,
			CrateSize:       80,
			CrateMargin:     100,
			GateMargin:      50,
		},
		Sparkles: SparklesConfig{
			BurstSize: 40,
			OriginX:   1100,
			OriginY:   80,
			MaxSpeed:  6,
			MinSize:   2,
			MaxSize:   6,
			Gravity:   0.15,
			MinDecay:  0.008,
			MaxDecay:  0.024,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
	}
}
