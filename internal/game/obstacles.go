package game

import (
	"math/rand"

	"github.com/fitrush/fitrush/internal/config"
	"github.com/fitrush/fitrush/internal/core"
)

// Archetype tags the shape class of an obstacle.
type Archetype int

const (
	ArchetypePillar Archetype = iota // Single rect anchored to an edge
	ArchetypeGate                    // Two rects with a gap to fly through
	ArchetypeCrate                   // Free-floating square
)

// String returns a human-readable archetype name.
func (a Archetype) String() string {
	switch a {
	case ArchetypePillar:
		return "Pillar"
	case ArchetypeGate:
		return "Gate"
	case ArchetypeCrate:
		return "FloatingCrate"
	default:
		return "Unknown"
	}
}

// Obstacle is one scrolling rectangle. A gate spawns as two Obstacle
// records sharing the archetype tag. The color is presentational only.
type Obstacle struct {
	Rect  core.Rect
	Kind  Archetype
	Color core.Color
}

// pillarColors is the palette pillars cycle through.
var pillarColors = []core.Color{
	core.ColorGreen,
	core.ColorBrightGreen,
	core.ColorCyan,
}

// ChooseArchetype decides which obstacle class a spawn event produces,
// as a pure function of the score and a uniform draw r in [0,1). Gates
// and crates only appear once the player has proven themselves past a
// score of 10.
func ChooseArchetype(score int, r float64) Archetype {
	if score >= 10 && r > 0.6 {
		return ArchetypeGate
	}
	if score >= 10 && r > 0.4 {
		return ArchetypeCrate
	}
	return ArchetypePillar
}

// ObstacleField owns the live obstacle collection: spawning, scrolling,
// retiring. Spawn order is kept so retirement stays a cheap front-biased
// filter; ordering carries no gameplay meaning.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.Config
}

// NewObstacleField creates an empty field with the given RNG seed.
func NewObstacleField(cfg config.Config, seed int64) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
}

// Clear removes all live obstacles. The RNG keeps its stream so retries
// within one session see fresh layouts.
func (f *ObstacleField) Clear() {
	f.obstacles = f.obstacles[:0]
}

// Reseed resets the RNG, for deterministic replays.
func (f *ObstacleField) Reseed(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
}

// Spawn fires one spawn event: chooses an archetype for the current
// score and appends the obstacle(s) at the right edge of the field.
func (f *ObstacleField) Spawn(score int, gateGap float64) {
	switch ChooseArchetype(score, f.rng.Float64()) {
	case ArchetypeGate:
		f.spawnGate(gateGap)
	case ArchetypeCrate:
		f.spawnCrate()
	default:
		f.spawnPillar()
	}
}

// spawnPillar creates a single rectangle of random height anchored to
// the top or bottom edge.
func (f *ObstacleField) spawnPillar() {
	ob := f.cfg.Obstacles
	height := ob.PillarMinHeight + f.rng.Float64()*(ob.PillarMaxHeight-ob.PillarMinHeight)

	y := 0.0
	if f.rng.Intn(2) == 1 {
		y = f.cfg.Field.Height - height
	}

	f.obstacles = append(f.obstacles, Obstacle{
		Rect:  core.NewRect(f.cfg.Field.Width, y, ob.Width, height),
		Kind:  ArchetypePillar,
		Color: pillarColors[f.rng.Intn(len(pillarColors))],
	})
}

// spawnGate creates a top and a bottom pillar separated by a gap at a
// uniformly random position. The margin guarantees both pillars get
// nonzero height.
func (f *ObstacleField) spawnGate(gap float64) {
	ob := f.cfg.Obstacles
	fieldH := f.cfg.Field.Height

	gapTop := ob.GateMargin + f.rng.Float64()*(fieldH-2*ob.GateMargin-gap)
	gapBottom := gapTop + gap

	f.obstacles = append(f.obstacles,
		Obstacle{
			Rect:  core.NewRect(f.cfg.Field.Width, 0, ob.Width, gapTop),
			Kind:  ArchetypeGate,
			Color: core.ColorBrightMagenta,
		},
		Obstacle{
			Rect:  core.NewRect(f.cfg.Field.Width, gapBottom, ob.Width, fieldH-gapBottom),
			Kind:  ArchetypeGate,
			Color: core.ColorBrightMagenta,
		},
	)
}

// spawnCrate creates a floating square in the middle band of the field,
// excluding a margin near each edge.
func (f *ObstacleField) spawnCrate() {
	ob := f.cfg.Obstacles
	y := ob.CrateMargin + f.rng.Float64()*(f.cfg.Field.Height-2*ob.CrateMargin-ob.CrateSize)

	f.obstacles = append(f.obstacles, Obstacle{
		Rect:  core.NewRect(f.cfg.Field.Width, y, ob.CrateSize, ob.CrateSize),
		Kind:  ArchetypeCrate,
		Color: core.ColorOrange,
	})
}

// Advance scrolls every live obstacle left by speed and retires the ones
// fully past the left edge. Returns how many were retired, each of which
// counts as passed for scoring.
func (f *ObstacleField) Advance(speed float64) int {
	removed := 0
	live := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.Rect.X -= speed
		if o.Rect.Right() <= 0 {
			removed++
			continue
		}
		live = append(live, o)
	}
	f.obstacles = live
	return removed
}

// Collides tests the avatar hitbox against every live obstacle.
func (f *ObstacleField) Collides(hitbox core.Rect) bool {
	for _, o := range f.obstacles {
		if hitbox.Intersects(o.Rect) {
			return true
		}
	}
	return false
}

// Obstacles returns the live obstacle slice for rendering.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}
