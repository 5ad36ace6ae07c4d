package game

import (
	"fmt"
	"strings"

	"github.com/fitrush/fitrush/internal/core"
	"github.com/fitrush/fitrush/internal/signal"
)

// Render emits the frame's draw directives against the logical canvas.
// Styling decisions stay here; the canvas decides how they look on the
// actual display.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()
	dst.FillGradient(core.ColorSkyTop, core.ColorSkyBottom)

	for _, o := range g.obstacles.Obstacles() {
		dst.FillRect(o.Rect, o.Color)
	}

	for _, s := range g.sparkles.Sparkles() {
		switch s.Shape {
		case ShapeStar:
			dst.DrawText(s.X, s.Y, "+", s.Color)
		default:
			dst.FillCircle(s.X, s.Y, s.Size/2, s.Color, s.Alpha)
		}
	}

	// Avatar, drawn as a filled circle inside its square hitbox.
	half := g.cfg.Avatar.Size / 2
	dst.FillCircle(g.cfg.Avatar.X+half, g.avatar.Y+half, half, core.ColorBrightYellow, 1)

	g.renderHUD(dst)

	switch g.phase {
	case core.PhaseTutorial:
		g.renderTutorial(dst)
	case core.PhaseGameOver:
		g.renderGameOver(dst)
	}
}

// renderHUD draws the score line and the exertion meter.
func (g *Game) renderHUD(dst core.Canvas) {
	dst.DrawText(20, 16, fmt.Sprintf("SCORE %d   BEST %d", g.score, g.highScore), core.ColorBrightWhite)

	meter := intensityMeter(g.smoother.Value(), 20)
	color := core.ColorGray
	if g.smoother.Exerting() {
		color = core.ColorBrightGreen
	}
	dst.DrawText(20, 48, meter, color)
	dst.DrawText(20, 80, fmt.Sprintf("%s | %s", g.mode.Title(), strings.ToUpper(string(g.difficulty))), core.ColorGray)
}

// intensityMeter renders the smoothed signal as a fixed-width bar.
func intensityMeter(value float64, width int) string {
	filled := int(value * float64(width))
	filled = core.Clamp(filled, 0, width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// tutorialLines returns the per-mode instruction overlay.
func tutorialLines(mode signal.Mode) []string {
	switch mode {
	case signal.ModeArmRaise:
		return []string{
			"Raise BOTH arms above your head to lift the avatar.",
			"One arm gives half lift. Lower your arms to descend.",
		}
	case signal.ModeLunge:
		return []string{
			"Step into a lunge and bend either knee to lift the avatar.",
			"The deeper the bend, the stronger the lift.",
		}
	default:
		return []string{
			"Squat deep to lift the avatar, stand up to let it fall.",
			"Keep your whole body in view of the camera.",
		}
	}
}

// renderTutorial draws the instructional overlay with the difficulty
// selector.
func (g *Game) renderTutorial(dst core.Canvas) {
	centerY := g.cfg.Field.Height / 2

	dst.DrawTextCentered(centerY-120, "FITRUSH - "+strings.ToUpper(g.mode.Title()), core.ColorBrightYellow)

	for i, line := range tutorialLines(g.mode) {
		dst.DrawTextCentered(centerY-40+float64(i)*32, line, core.ColorBrightWhite)
	}

	dst.DrawTextCentered(centerY+60, "Difficulty: [1] Easy  [2] Medium  [3] Hard", core.ColorBrightCyan)
	dst.DrawTextCentered(centerY+92, fmt.Sprintf("Selected: %s", strings.ToUpper(string(g.difficulty))), core.ColorBrightCyan)
	dst.DrawTextCentered(centerY+156, "Press ENTER to start  |  ESC to leave", core.ColorGray)
}

// renderGameOver draws the terminal overlay for the run.
func (g *Game) renderGameOver(dst core.Canvas) {
	centerY := g.cfg.Field.Height / 2

	dst.DrawTextCentered(centerY-60, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(centerY, fmt.Sprintf("Score %d   Best %d", g.score, g.highScore), core.ColorBrightWhite)
	dst.DrawTextCentered(centerY+60, "Press R to retry  |  ESC to leave", core.ColorGray)
}
