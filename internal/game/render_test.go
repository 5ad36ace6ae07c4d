package game

import (
	"strings"
	"testing"

	"github.com/fitrush/fitrush/internal/core"
)

// recordingCanvas captures draw directives for assertions.
type recordingCanvas struct {
	cleared bool
	rects   int
	circles int
	texts   []string
}

func (c *recordingCanvas) Clear()                                    { c.cleared = true }
func (c *recordingCanvas) FillGradient(top, bottom core.Color)       {}
func (c *recordingCanvas) FillRect(r core.Rect, col core.Color)      { c.rects++ }
func (c *recordingCanvas) DrawText(x, y float64, s string, col core.Color) {
	c.texts = append(c.texts, s)
}
func (c *recordingCanvas) DrawTextCentered(y float64, s string, col core.Color) {
	c.texts = append(c.texts, s)
}
func (c *recordingCanvas) FillCircle(cx, cy, r float64, col core.Color, alpha float64) {
	c.circles++
}

func (c *recordingCanvas) hasText(substr string) bool {
	for _, s := range c.texts {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestRenderTutorialOverlay(t *testing.T) {
	g := newTestGame(1)
	var dst recordingCanvas
	g.Render(&dst)

	if !dst.cleared {
		t.Error("render should clear the canvas first")
	}
	if !dst.hasText("FITRUSH") {
		t.Error("tutorial should show the title")
	}
	if !dst.hasText("[1] Easy") {
		t.Error("tutorial should show the difficulty selector")
	}
	if dst.circles == 0 {
		t.Error("avatar should be drawn in every phase")
	}
}

func TestRenderPlayingFrame(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	for i := 0; i < 150; i++ {
		g.Step(core.NewInputFrame())
		g.avatar.Y = 330
		g.avatar.Vel = 0
	}

	var dst recordingCanvas
	g.Render(&dst)

	if dst.rects == 0 {
		t.Error("live obstacles should be drawn")
	}
	if !dst.hasText("SCORE 0") {
		t.Errorf("HUD should show the score, texts: %v", dst.texts)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.transition(core.PhaseGameOver)

	var dst recordingCanvas
	g.Render(&dst)

	if !dst.hasText("GAME OVER") {
		t.Error("game over overlay missing")
	}
	if !dst.hasText("retry") {
		t.Error("retry hint missing")
	}
}
