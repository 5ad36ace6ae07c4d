// Package game implements the motion-driven FitRush engine: avatar
// physics fed by the smoothed exertion signal, procedural obstacle
// generation, collision and scoring, milestone sparkles, and the
// tutorial/playing/game-over state machine. The package is pure logic
// with no rendering, audio, or I/O dependencies; each tick it consumes
// an input frame and returns a snapshot plus requested sound cues.
package game

import (
	"github.com/fitrush/fitrush/internal/config"
	"github.com/fitrush/fitrush/internal/core"
	"github.com/fitrush/fitrush/internal/signal"
)

// Game holds one full session: the exercise mode is fixed for the
// session, the difficulty locks when a run starts, and the high score
// survives across retries until the session ends.
type Game struct {
	cfg        config.Config
	mode       signal.Mode
	difficulty config.Difficulty
	tuning     config.Tuning

	phase       core.Phase
	smoother    signal.Smoother
	avatar      Avatar
	obstacles   *ObstacleField
	sparkles    *SparkleField
	score       int
	highScore   int
	frameCount  int
	scrollSpeed float64
}

// New creates a session for the given exercise mode and starting
// difficulty. Reset must be called before stepping.
func New(mode signal.Mode, difficulty config.Difficulty, cfg config.Config) *Game {
	return &Game{
		cfg:        cfg,
		mode:       mode,
		difficulty: difficulty,
	}
}

// Mode returns the session's exercise mode.
func (g *Game) Mode() signal.Mode {
	return g.mode
}

// Difficulty returns the currently selected difficulty.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// Field returns the logical play field dimensions.
func (g *Game) Field() (w, h float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Reset initializes or restarts the whole session: back to the tutorial,
// high score cleared, RNG reseeded for deterministic playback.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.obstacles = NewObstacleField(g.cfg, rt.Seed)
	g.sparkles = NewSparkleField(g.cfg.Sparkles, rt.Seed+1)
	g.smoother.Reset()
	g.phase = core.PhaseTutorial
	g.score = 0
	g.highScore = 0
	g.frameCount = 0
	g.tuning = config.TuningFor(g.difficulty)
	g.scrollSpeed = g.tuning.InitialSpeed
	g.avatar = Avatar{Y: (g.cfg.Field.Height - g.cfg.Avatar.Size) / 2}
}

// Step advances the simulation by one fixed tick. The interpreter has
// already reduced the pose sample to a raw intensity; smoothing, edge
// detection, and everything the active phase permits happen here.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var cues []core.Cue

	raw := in.Intensity
	if in.Has(core.ActionExert) {
		raw = 1 // Keyboard fallback counts as full exertion
	}
	_, exerted := g.smoother.Update(raw)
	if exerted {
		cues = append(cues, core.CueJump)
	}

	switch g.phase {
	case core.PhaseTutorial:
		g.stepTutorial(in, &cues)
	case core.PhasePlaying:
		g.stepPlaying(&cues)
	case core.PhaseGameOver:
		g.stepGameOver(in, &cues)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// stepTutorial handles difficulty selection and run start. Physics and
// spawning stay frozen here.
func (g *Game) stepTutorial(in core.InputFrame, cues *[]core.Cue) {
	switch {
	case in.Has(core.ActionEasy):
		g.difficulty = config.DifficultyEasy
	case in.Has(core.ActionMedium):
		g.difficulty = config.DifficultyMedium
	case in.Has(core.ActionHard):
		g.difficulty = config.DifficultyHard
	}

	if in.Has(core.ActionConfirm) && g.transition(core.PhasePlaying) {
		g.startRun()
		*cues = append(*cues, core.CueStart)
	}
}

// stepPlaying runs one live frame: physics, spawning, scrolling,
// scoring, collision, effects.
func (g *Game) stepPlaying(cues *[]core.Cue) {
	g.frameCount++

	g.avatar.Update(
		g.smoother.Value(),
		g.tuning.Gravity,
		g.tuning.LiftMultiplier,
		g.cfg.Field.Height,
		g.cfg.Avatar.Size,
	)

	// Spawn events fire on the period boundary; each one also nudges the
	// scroll speed up.
	if g.frameCount%g.tuning.SpawnPeriod == 0 {
		g.obstacles.Spawn(g.score, g.tuning.GateGap)
		g.scrollSpeed += g.tuning.SpeedIncrement
	}

	passed := g.obstacles.Advance(g.scrollSpeed)
	for i := 0; i < passed; i++ {
		g.score++
		if g.score%10 == 0 {
			*cues = append(*cues, core.CueScore)
			g.sparkles.Burst()
		}
	}

	hitbox := g.avatar.Hitbox(g.cfg.Avatar.X, g.cfg.Avatar.Size)
	if g.obstacles.Collides(hitbox) {
		if g.score > g.highScore {
			g.highScore = g.score
		}
		g.transition(core.PhaseGameOver)
		// The run's obstacles die with the run; sparkles fade on their own.
		g.obstacles.Clear()
		*cues = append(*cues, core.CueGameOver)
	}

	g.sparkles.Update()
}

// stepGameOver keeps the leftover sparkles animating and waits for a
// retry.
func (g *Game) stepGameOver(in core.InputFrame, cues *[]core.Cue) {
	g.sparkles.Update()

	if in.Has(core.ActionRestart) && g.transition(core.PhasePlaying) {
		g.startRun()
		*cues = append(*cues, core.CueStart)
	}
}

// startRun re-initializes everything a fresh run needs. Calling it twice
// in a row yields the same state as calling it once.
func (g *Game) startRun() {
	g.tuning = config.TuningFor(g.difficulty)
	g.score = 0
	g.frameCount = 0
	g.scrollSpeed = g.tuning.InitialSpeed
	g.avatar = Avatar{Y: (g.cfg.Field.Height - g.cfg.Avatar.Size) / 2}
	g.obstacles.Clear()
	g.sparkles.Clear()
}

// transition applies a phase change if it is one of the legal edges:
// Tutorial->Playing, Playing->GameOver, GameOver->Playing. Anything else
// is silently ignored.
func (g *Game) transition(to core.Phase) bool {
	valid := false
	switch g.phase {
	case core.PhaseTutorial:
		valid = to == core.PhasePlaying
	case core.PhasePlaying:
		valid = to == core.PhaseGameOver
	case core.PhaseGameOver:
		valid = to == core.PhasePlaying
	}

	if !valid {
		return false
	}
	g.phase = to
	return true
}

// State returns the current snapshot for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Intensity: g.smoother.Value(),
		Exerting:  g.smoother.Exerting(),
	}
}
