package core

// Renderer accepts primitive draw calls in world coordinates.
// Screens call it once per entity per frame and never read from it.
type Renderer interface {
	// Clear fills the whole frame with a background color.
	Clear(bg Color)

	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)

	// StrokePolygon draws the closed outline through the given points.
	StrokePolygon(points []Vector2, c Color)

	// FillCircle draws a filled circle.
	FillCircle(center Vector2, radius float64, c Color)

	// Text draws a single line of text with its top-left corner at (x, y).
	Text(x, y float64, s string, c Color)

	// MeasureText returns the size a line of text occupies in world units.
	MeasureText(s string) (w, h float64)

	// Size returns the logical dimensions of the frame.
	Size() Size
}

// TextCentered draws text centered on the point (cx, cy).
func TextCentered(r Renderer, cx, cy float64, s string, c Color) {
	w, h := r.MeasureText(s)
	r.Text(cx-w/2, cy-h/2, s, c)
}

// LineHeight returns the vertical step between stacked lines of text.
// It never drops below minStep so layouts stay close to the window design,
// but grows when the renderer's glyphs are taller (terminal cells).
func LineHeight(r Renderer, minStep float64) float64 {
	_, h := r.MeasureText("Hg")
	return max(minStep, h*1.2)
}
