package window

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/space-miner/internal/core"
)

// Text metrics of basicfont.Face7x13 drawn at textScale.
const (
	textScale   = 2
	glyphWidth  = 7
	glyphHeight = 13
	glyphAscent = 11
	strokeWidth = 2
)

// Renderer draws onto an *ebiten.Image in logical coordinates.
type Renderer struct {
	target  *ebiten.Image
	logical core.Size
}

// NewRenderer creates a renderer for the logical area.
func NewRenderer(logical core.Size) *Renderer {
	return &Renderer{logical: logical}
}

// SetTarget sets the image the next draw calls go to.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Clear fills the whole frame with a background color.
func (r *Renderer) Clear(bg core.Color) {
	r.target.Fill(rgba(bg))
}

// FillRect draws a filled rectangle.
func (r *Renderer) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(r.target, float32(x), float32(y), float32(w), float32(h), rgba(c), true)
}

// StrokePolygon draws the closed outline through the points.
func (r *Renderer) StrokePolygon(points []core.Vector2, c core.Color) {
	clr := rgba(c)
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(r.target, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), strokeWidth, clr, true)
	}
}

// FillCircle draws a filled circle.
func (r *Renderer) FillCircle(center core.Vector2, radius float64, c core.Color) {
	vector.DrawFilledCircle(r.target, float32(center.X), float32(center.Y), float32(radius), rgba(c), true)
}

// Text draws a line with its top-left corner at (x, y).
func (r *Renderer) Text(x, y float64, s string, c core.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	// text draws relative to the baseline
	op.GeoM.Translate(x, y+glyphAscent*textScale)
	op.ColorScale.ScaleWithColor(rgba(c))
	text.DrawWithOptions(r.target, s, basicfont.Face7x13, op)
}

// MeasureText returns the size of a line of text.
func (r *Renderer) MeasureText(s string) (w, h float64) {
	return float64(utf8.RuneCountInString(s) * glyphWidth * textScale), glyphHeight * textScale
}

// Size returns the logical play area.
func (r *Renderer) Size() core.Size {
	return r.logical
}

func rgba(c core.Color) color.RGBA {
	red, green, blue := c.RGB()
	return color.RGBA{R: red, G: green, B: blue, A: 0xff}
}
