package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for deterministic simulation; screen dimensions belong
// to the platform layer, which projects the logical field onto them.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase identifies which screen of a session is active. Exactly one phase
// is active at a time; phase transitions are the only way state-dependent
// subsystems activate.
type Phase int

const (
	PhaseTutorial Phase = iota // Instructional overlay, physics frozen
	PhasePlaying               // Live run
	PhaseGameOver              // Terminal for the run, retry available
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTutorial:
		return "Tutorial"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Cue names a sound effect the engine wants played. Playback is
// fire-and-forget; a cue that cannot be honored never reaches game logic.
type Cue string

const (
	CueStart    Cue = "start"
	CueJump     Cue = "jump"
	CueScore    Cue = "score"
	CueGameOver Cue = "gameover"
)

// GameState is a snapshot of the session visible to the platform layer.
type GameState struct {
	Phase     Phase
	Score     int
	HighScore int     // Best score this session; never decreases
	Intensity float64 // Smoothed exertion signal, for the HUD meter
	Exerting  bool    // Hysteresis latch state
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Sound cues requested this frame, in order
}
