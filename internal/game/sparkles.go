package game

import (
	"math/rand"

	"github.com/fitrush/fitrush/internal/config"
	"github.com/fitrush/fitrush/internal/core"
)

// SparkleShape varies how a particle is drawn.
type SparkleShape int

const (
	ShapeDot SparkleShape = iota
	ShapeStar
)

// Sparkle is one decorative particle from a score-milestone burst.
// Purely visual; no interaction with gameplay.
type Sparkle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Alpha  float64
	Decay  float64
	Color  core.Color
	Shape  SparkleShape
}

// sparklePalette is the fixed set of burst colors.
var sparklePalette = []core.Color{
	core.ColorBrightYellow,
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
	core.ColorBrightGreen,
	core.ColorOrange,
}

// SparkleField simulates the live particle set.
type SparkleField struct {
	sparkles []Sparkle
	rng      *rand.Rand
	cfg      config.SparklesConfig
}

// NewSparkleField creates an empty field with the given RNG seed.
func NewSparkleField(cfg config.SparklesConfig, seed int64) *SparkleField {
	return &SparkleField{
		sparkles: make([]Sparkle, 0, cfg.BurstSize*2),
		rng:      rand.New(rand.NewSource(seed)),
		cfg:      cfg,
	}
}

// Clear removes all live particles.
func (f *SparkleField) Clear() {
	f.sparkles = f.sparkles[:0]
}

// Burst spawns a full burst at the configured origin near the score
// display: randomized symmetric velocity, size, palette color, full
// alpha, randomized decay.
func (f *SparkleField) Burst() {
	for i := 0; i < f.cfg.BurstSize; i++ {
		shape := ShapeDot
		if f.rng.Intn(2) == 1 {
			shape = ShapeStar
		}
		f.sparkles = append(f.sparkles, Sparkle{
			X:     f.cfg.OriginX,
			Y:     f.cfg.OriginY,
			VX:    (f.rng.Float64()*2 - 1) * f.cfg.MaxSpeed,
			VY:    (f.rng.Float64()*2 - 1) * f.cfg.MaxSpeed,
			Size:  f.cfg.MinSize + f.rng.Float64()*(f.cfg.MaxSize-f.cfg.MinSize),
			Alpha: 1.0,
			Decay: f.cfg.MinDecay + f.rng.Float64()*(f.cfg.MaxDecay-f.cfg.MinDecay),
			Color: sparklePalette[f.rng.Intn(len(sparklePalette))],
			Shape: shape,
		})
	}
}

// Update advances one frame: ballistic integration with a small constant
// downward pull, alpha fading, and removal of burnt-out particles.
func (f *SparkleField) Update() {
	live := f.sparkles[:0]
	for _, s := range f.sparkles {
		s.X += s.VX
		s.Y += s.VY
		s.VY += f.cfg.Gravity
		s.Alpha -= s.Decay
		if s.Alpha <= 0 {
			continue
		}
		live = append(live, s)
	}
	f.sparkles = live
}

// Sparkles returns the live particle slice for rendering.
func (f *SparkleField) Sparkles() []Sparkle {
	return f.sparkles
}

// Count returns the number of live particles.
func (f *SparkleField) Count() int {
	return len(f.sparkles)
}
