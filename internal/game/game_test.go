package game

import (
	"math"
	"testing"

	"github.com/fitrush/fitrush/internal/config"
	"github.com/fitrush/fitrush/internal/core"
	"github.com/fitrush/fitrush/internal/signal"
)

func newTestGame(seed int64) *Game {
	g := New(signal.ModeSquat, config.DifficultyMedium, config.DefaultConfig())
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func hasCue(cues []core.Cue, want core.Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}

func TestTutorialConfirmStartsRun(t *testing.T) {
	g := newTestGame(1)

	if g.State().Phase != core.PhaseTutorial {
		t.Fatalf("fresh session should be in tutorial, got %v", g.State().Phase)
	}

	// Frames without confirm keep the tutorial frozen.
	for i := 0; i < 10; i++ {
		res := g.Step(core.NewInputFrame())
		if res.State.Phase != core.PhaseTutorial {
			t.Fatalf("tutorial advanced without confirm on frame %d", i)
		}
	}
	if g.frameCount != 0 {
		t.Errorf("frame counter ran during tutorial: %d", g.frameCount)
	}

	res := g.Step(press(core.ActionConfirm))
	if res.State.Phase != core.PhasePlaying {
		t.Errorf("confirm should start the run, phase = %v", res.State.Phase)
	}
	if !hasCue(res.Cues, core.CueStart) {
		t.Errorf("run start should request the start cue, got %v", res.Cues)
	}
}

func TestTutorialDifficultySelection(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected config.Difficulty
	}{
		{core.ActionEasy, config.DifficultyEasy},
		{core.ActionMedium, config.DifficultyMedium},
		{core.ActionHard, config.DifficultyHard},
	}

	for _, tc := range tests {
		g := newTestGame(1)
		g.Step(press(tc.action))
		if g.Difficulty() != tc.expected {
			t.Errorf("%v selected %v, expected %v", tc.action, g.Difficulty(), tc.expected)
		}

		g.Step(press(core.ActionConfirm))
		want := config.TuningFor(tc.expected)
		if g.scrollSpeed != want.InitialSpeed {
			t.Errorf("%v run started at speed %v, expected %v", tc.action, g.scrollSpeed, want.InitialSpeed)
		}
	}
}

func TestDifficultyLockedDuringRun(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))

	g.Step(press(core.ActionHard))
	if g.Difficulty() != config.DifficultyMedium {
		t.Errorf("difficulty changed mid-run to %v", g.Difficulty())
	}
}

func TestInvalidTransitionsIgnored(t *testing.T) {
	g := newTestGame(1)

	// Restart from the tutorial is not a legal edge.
	res := g.Step(press(core.ActionRestart))
	if res.State.Phase != core.PhaseTutorial {
		t.Errorf("restart escaped the tutorial: %v", res.State.Phase)
	}

	if g.transition(core.PhaseGameOver) {
		t.Error("tutorial -> game over should be rejected")
	}
	if g.transition(core.PhaseTutorial) {
		t.Error("tutorial -> tutorial should be rejected")
	}

	g.Step(press(core.ActionConfirm))
	if g.transition(core.PhasePlaying) {
		t.Error("playing -> playing should be rejected")
	}
	if g.transition(core.PhaseTutorial) {
		t.Error("playing -> tutorial should be rejected")
	}
}

// TestMediumRunSpawnCadence plays 1000 live frames on medium and checks
// the spawn schedule: one event per 100 frames, each adding 0.05 to the
// scroll speed. The avatar is re-centered every frame so pillar collisions
// cannot cut the run short.
func TestMediumRunSpawnCadence(t *testing.T) {
	g := newTestGame(5)
	g.Step(press(core.ActionConfirm))

	for i := 0; i < 1000; i++ {
		g.Step(core.NewInputFrame())
		g.avatar.Y = 330
		g.avatar.Vel = 0
	}

	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("run ended early in phase %v at frame %d", g.State().Phase, g.frameCount)
	}
	if g.frameCount != 1000 {
		t.Errorf("frame counter = %d, expected 1000", g.frameCount)
	}

	want := 6.0 + 10*0.05
	if math.Abs(g.scrollSpeed-want) > 1e-9 {
		t.Errorf("scroll speed after 10 spawn events = %v, expected %v", g.scrollSpeed, want)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.score = 12

	// A wall covering the avatar's column guarantees the hit.
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{
		Rect: core.NewRect(g.cfg.Avatar.X, 0, 60, g.cfg.Field.Height),
		Kind: ArchetypePillar,
	})

	res := g.Step(core.NewInputFrame())
	if res.State.Phase != core.PhaseGameOver {
		t.Fatalf("collision should end the run, phase = %v", res.State.Phase)
	}
	if !hasCue(res.Cues, core.CueGameOver) {
		t.Errorf("game over should request its cue, got %v", res.Cues)
	}
	if res.State.HighScore != 12 {
		t.Errorf("high score = %d, expected 12", res.State.HighScore)
	}
	if n := len(g.obstacles.Obstacles()); n != 0 {
		t.Errorf("obstacles should die with the run, %d remain", n)
	}
}

func TestRestartKeepsHighScore(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.score = 25
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{
		Rect: core.NewRect(g.cfg.Avatar.X, 0, 60, g.cfg.Field.Height),
	})
	g.Step(core.NewInputFrame())

	res := g.Step(press(core.ActionRestart))
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("restart should resume play, phase = %v", res.State.Phase)
	}
	if !hasCue(res.Cues, core.CueStart) {
		t.Errorf("restart should request the start cue, got %v", res.Cues)
	}
	if res.State.Score != 0 {
		t.Errorf("restart should zero the score, got %d", res.State.Score)
	}
	if res.State.HighScore != 25 {
		t.Errorf("high score should survive the retry, got %d", res.State.HighScore)
	}
	if len(g.obstacles.Obstacles()) != 0 {
		t.Errorf("restart should clear obstacles, %d remain", len(g.obstacles.Obstacles()))
	}
}

func TestStartRunIdempotent(t *testing.T) {
	g := newTestGame(1)
	g.startRun()
	once := struct {
		avatar Avatar
		score  int
		frames int
		speed  float64
	}{g.avatar, g.score, g.frameCount, g.scrollSpeed}

	g.startRun()
	if g.avatar != once.avatar || g.score != once.score || g.frameCount != once.frames || g.scrollSpeed != once.speed {
		t.Error("calling startRun twice should match calling it once")
	}
}

func TestScoreMilestoneFiresCueAndBurst(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.score = 9

	// An obstacle a hair from the left edge exits on the next advance.
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{
		Rect: core.NewRect(-58, 600, 60, 100),
		Kind: ArchetypePillar,
	})

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 10 {
		t.Fatalf("score = %d, expected 10", res.State.Score)
	}
	if !hasCue(res.Cues, core.CueScore) {
		t.Errorf("milestone should request the score cue, got %v", res.Cues)
	}
	if g.sparkles.Count() == 0 {
		t.Error("milestone should burst sparkles")
	}
}

func TestSingleJumpCuePerExertion(t *testing.T) {
	g := newTestGame(1)

	high := core.NewInputFrame()
	high.Intensity = 1.0

	jumps := 0
	for i := 0; i < 60; i++ {
		if hasCue(g.Step(high).Cues, core.CueJump) {
			jumps++
		}
	}
	if jumps != 1 {
		t.Fatalf("sustained exertion fired %d jump cues, expected 1", jumps)
	}

	// Drop below the release level, then ramp back up.
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	for i := 0; i < 60; i++ {
		if hasCue(g.Step(high).Cues, core.CueJump) {
			jumps++
		}
	}
	if jumps != 2 {
		t.Errorf("second ramp fired %d total jump cues, expected 2", jumps)
	}
}

func TestKeyboardExertCountsAsFullIntensity(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < 60; i++ {
		g.Step(press(core.ActionExert))
	}
	st := g.State()
	if !st.Exerting {
		t.Error("held exert key should latch the exertion state")
	}
	if st.Intensity < 0.9 {
		t.Errorf("smoothed intensity = %v, expected near 1", st.Intensity)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() []core.GameState {
		g := newTestGame(77)
		g.Step(press(core.ActionConfirm))

		states := make([]core.GameState, 0, 500)
		for i := 0; i < 500; i++ {
			in := core.NewInputFrame()
			in.Intensity = float64(i%7) / 7.0
			states = append(states, g.Step(in).State)
		}
		return states
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("states diverge at frame %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestResetClearsHighScore(t *testing.T) {
	g := newTestGame(1)
	g.highScore = 99

	rt := core.DefaultConfig()
	rt.Seed = 1
	g.Reset(rt)

	if g.State().HighScore != 0 {
		t.Errorf("reset should clear the session high score, got %d", g.State().HighScore)
	}
	if g.State().Phase != core.PhaseTutorial {
		t.Errorf("reset should return to the tutorial, got %v", g.State().Phase)
	}
}
