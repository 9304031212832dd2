package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/space-miner/internal/core"
)

// Glyphs used for shapes.
const (
	outlineRune = '*'
	dotRune     = '•'
	fillRune    = '●'
)

// Renderer rasterizes world-space draw calls into a Screen by scaling the
// logical play area onto the available cells.
type Renderer struct {
	screen  *core.Screen
	logical core.Size
	sx, sy  float64 // cells per world unit
}

// NewRenderer creates a renderer drawing the logical area onto a
// cols x rows screen.
func NewRenderer(logical core.Size, cols, rows int) *Renderer {
	r := &Renderer{
		screen:  core.NewScreen(cols, rows),
		logical: logical,
	}
	r.updateScale()
	return r
}

// Resize changes the number of cells the area is drawn onto.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
	r.updateScale()
}

func (r *Renderer) updateScale() {
	r.sx = float64(r.screen.Width()) / r.logical.W
	r.sy = float64(r.screen.Height()) / r.logical.H
}

// Screen returns the cell buffer.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// cell converts a world point to the cell containing it.
func (r *Renderer) cell(p core.Vector2) (int, int) {
	return int(math.Floor(p.X * r.sx)), int(math.Floor(p.Y * r.sy))
}

// Clear fills the whole frame with a background color.
func (r *Renderer) Clear(bg core.Color) {
	r.screen.ClearWith(bg)
}

// FillRect paints the background of the covered cells.
func (r *Renderer) FillRect(x, y, w, h float64, c core.Color) {
	x0 := int(math.Round(x * r.sx))
	y0 := int(math.Round(y * r.sy))
	x1 := int(math.Round((x + w) * r.sx))
	y1 := int(math.Round((y + h) * r.sy))
	// Keep thin rects visible
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	r.screen.FillBackground(core.NewRect(x0, y0, x1-x0, y1-y0), c)
}

// StrokePolygon draws the closed outline through the points.
func (r *Renderer) StrokePolygon(points []core.Vector2, c core.Color) {
	for i, p := range points {
		q := points[(i+1)%len(points)]
		x0, y0 := r.cell(p)
		x1, y1 := r.cell(q)
		r.screen.DrawLine(x0, y0, x1, y1, outlineRune, c)
	}
}

// FillCircle fills the cells whose centers fall inside the circle. Circles
// smaller than a cell become a single dot.
func (r *Renderer) FillCircle(center core.Vector2, radius float64, c core.Color) {
	if radius*r.sx < 1 || radius*r.sy < 1 {
		x, y := r.cell(center)
		r.screen.SetColored(x, y, dotRune, c)
		return
	}

	minX, minY := r.cell(core.Vec(center.X-radius, center.Y-radius))
	maxX, maxY := r.cell(core.Vec(center.X+radius, center.Y+radius))
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			mid := core.Vec((float64(cx)+0.5)/r.sx, (float64(cy)+0.5)/r.sy)
			if mid.DistanceTo(center) <= radius {
				r.screen.SetColored(cx, cy, fillRune, c)
			}
		}
	}
}

// Text writes a line of text starting in the cell containing (x, y).
func (r *Renderer) Text(x, y float64, s string, c core.Color) {
	cx, cy := r.cell(core.Vec(x, y))
	r.screen.DrawColoredText(cx, cy, s, c)
}

// MeasureText returns the world size of one cell row of text.
func (r *Renderer) MeasureText(s string) (w, h float64) {
	return float64(utf8.RuneCountInString(s)) / r.sx, 1 / r.sy
}

// Size returns the logical play area.
func (r *Renderer) Size() core.Size {
	return r.logical
}
