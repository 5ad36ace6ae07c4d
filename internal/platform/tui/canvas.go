package tui

import (
	"github.com/fitrush/fitrush/internal/core"
)

// cellCanvas projects the logical play field onto a terminal cell
// buffer. The engine draws in field coordinates; all scaling lives
// here, recomputed per call so terminal resizes need no bookkeeping.
type cellCanvas struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
}

// NewCanvas wraps a screen buffer as a core.Canvas for the given
// logical field size.
func NewCanvas(screen *core.Screen, fieldW, fieldH float64) core.Canvas {
	return &cellCanvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// toCell maps a field coordinate to a cell coordinate.
func (c *cellCanvas) toCell(x, y float64) (int, int) {
	cx := int(x / c.fieldW * float64(c.screen.Width()))
	cy := int(y / c.fieldH * float64(c.screen.Height()))
	return cx, cy
}

func (c *cellCanvas) Clear() {
	c.screen.Clear()
}

// FillGradient paints the sky backdrop: the top color over the upper
// half of the screen, the bottom color below. Terminal cells carry only
// a foreground color, so the wash shows as faint shade characters.
func (c *cellCanvas) FillGradient(top, bottom core.Color) {
	h := c.screen.Height()
	for y := 0; y < h; y++ {
		color := top
		if y >= h/2 {
			color = bottom
		}
		for x := 0; x < c.screen.Width(); x++ {
			if (x+y)%4 == 0 {
				c.screen.SetCell(x, y, core.Cell{Rune: '·', Color: color})
			}
		}
	}
}

func (c *cellCanvas) FillRect(r core.Rect, color core.Color) {
	x0, y0 := c.toCell(r.X, r.Y)
	x1, y1 := c.toCell(r.Right(), r.Bottom())
	// A rect with any area covers at least one cell.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.FillRegion(x0, y0, x1-x0, y1-y0, '█', color)
}

// FillCircle rasterizes a field-space circle. Alpha picks the cell
// rune, fading from solid to a faint dot.
func (c *cellCanvas) FillCircle(cx, cy, radius float64, color core.Color, alpha float64) {
	r := circleRune(alpha)

	x0, y0 := c.toCell(cx-radius, cy-radius)
	x1, y1 := c.toCell(cx+radius, cy+radius)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	// Test each covered cell's center against the circle in field space.
	cellW := c.fieldW / float64(c.screen.Width())
	cellH := c.fieldH / float64(c.screen.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fx := (float64(x) + 0.5) * cellW
			fy := (float64(y) + 0.5) * cellH
			dx := (fx - cx) / radius
			dy := (fy - cy) / radius
			if dx*dx+dy*dy <= 1 {
				c.screen.SetCell(x, y, core.Cell{Rune: r, Color: color})
			}
		}
	}
}

func circleRune(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return '●'
	case alpha > 0.33:
		return 'o'
	default:
		return '·'
	}
}

func (c *cellCanvas) DrawText(x, y float64, text string, color core.Color) {
	cx, cy := c.toCell(x, y)
	c.screen.DrawText(cx, cy, text, color)
}

func (c *cellCanvas) DrawTextCentered(y float64, text string, color core.Color) {
	_, cy := c.toCell(0, y)
	c.screen.DrawTextCentered(cy, text, color)
}
