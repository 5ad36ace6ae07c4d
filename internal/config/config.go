// Package config provides YAML-based game configuration loading and the
// difficulty tuning table for FitRush.
package config

import "fmt"

// Config contains all tunable parameters for the game outside the
// difficulty table.
type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Avatar    AvatarConfig    `yaml:"avatar"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Sparkles  SparklesConfig  `yaml:"sparkles"`
	Audio     AudioConfig     `yaml:"audio"`
}

// FieldConfig defines the logical play field. Physics constants are
// tuned for this canvas at a nominal 60 Hz tick and are deliberately
// not scaled by elapsed wall-clock time.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AvatarConfig defines the player hitbox.
type AvatarConfig struct {
	Size float64 `yaml:"size"` // Square hitbox edge length
	X    float64 `yaml:"x"`    // Fixed horizontal position (left edge)
}

// ObstaclesConfig defines obstacle geometry.
type ObstaclesConfig struct {
	Width           float64 `yaml:"width"`             // Pillar and gate slot width
	PillarMinHeight float64 `yaml:"pillar_min_height"` // Inclusive
	PillarMaxHeight float64 `yaml:"pillar_max_height"` // Exclusive
	CrateSize       float64 `yaml:"crate_size"`        // Floating crate edge length
	CrateMargin     float64 `yaml:"crate_margin"`      // Excluded band near each field edge
	GateMargin      float64 `yaml:"gate_margin"`       // Minimum pillar height on each side of a gate
}

// SparklesConfig defines the milestone particle burst.
type SparklesConfig struct {
	BurstSize int     `yaml:"burst_size"`
	OriginX   float64 `yaml:"origin_x"` // Near the score display
	OriginY   float64 `yaml:"origin_y"`
	MaxSpeed  float64 `yaml:"max_speed"` // Velocity uniform in [-max, max] per axis
	MinSize   float64 `yaml:"min_size"`
	MaxSize   float64 `yaml:"max_size"`
	Gravity   float64 `yaml:"gravity"` // Downward acceleration per frame
	MinDecay  float64 `yaml:"min_decay"`
	MaxDecay  float64 `yaml:"max_decay"`
}

// AudioConfig controls cue playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Difficulty names one of the three fixed tuning presets. Selected
// during the tutorial; immutable once a run starts.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty resolves a CLI difficulty identifier.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// Tuning is the tuple of physics and spawn constants a difficulty maps
// to. The exact values define the feel of each difficulty and gameplay
// tests depend on them, so they live in code rather than YAML.
type Tuning struct {
	Gravity        float64 // Downward acceleration per frame
	LiftMultiplier float64 // Upward force per unit of intensity
	SpawnPeriod    int     // Frames between obstacle spawn events
	SpeedIncrement float64 // Scroll speed gain per spawn event
	InitialSpeed   float64 // Scroll speed at run start
	GateGap        float64 // Vertical gap of a gate obstacle
}

// tunings is the fixed difficulty table.
var tunings = map[Difficulty]Tuning{
	DifficultyEasy: {
		Gravity:        0.12,
		LiftMultiplier: 4.0,
		SpawnPeriod:    300,
		SpeedIncrement: 0.002,
		InitialSpeed:   3,
		GateGap:        300,
	},
	DifficultyMedium: {
		Gravity:        0.5,
		LiftMultiplier: 1.8,
		SpawnPeriod:    100,
		SpeedIncrement: 0.05,
		InitialSpeed:   6,
		GateGap:        180,
	},
	DifficultyHard: {
		Gravity:        1.1,
		LiftMultiplier: 1.1,
		SpawnPeriod:    40,
		SpeedIncrement: 0.15,
		InitialSpeed:   10,
		GateGap:        150,
	},
}

// TuningFor returns the tuning tuple for a difficulty. Unknown values
// fall back to medium.
func TuningFor(d Difficulty) Tuning {
	if t, ok := tunings[d]; ok {
		return t
	}
	return tunings[DifficultyMedium]
}
