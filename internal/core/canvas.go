package core

// Canvas is the drawing surface the engine renders against. It works in
// logical play-field coordinates; implementations project those onto
// whatever display they own (terminal cells, pixels, a test recorder).
// The engine only ever emits these primitives and never learns how they
// end up on screen.
type Canvas interface {
	// Clear erases the whole surface.
	Clear()

	// FillGradient paints the background as a vertical gradient from the
	// top color to the bottom color.
	FillGradient(top, bottom Color)

	// FillRect fills a rectangle with a solid color.
	FillRect(r Rect, c Color)

	// FillCircle fills a circle centered at (cx, cy). Alpha is in [0,1];
	// implementations may approximate translucency.
	FillCircle(cx, cy, radius float64, c Color, alpha float64)

	// DrawText writes a text string with its top-left anchor at (x, y).
	DrawText(x, y float64, text string, c Color)

	// DrawTextCentered writes a text string centered horizontally at y.
	DrawTextCentered(y float64, text string, c Color)
}
