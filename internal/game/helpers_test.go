package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func testBounds() core.Size {
	cfg := config.Default()
	return core.Size{W: cfg.Screen.Width, H: cfg.Screen.Height}
}

// recordingRenderer collects draw calls for inspection.
type recordingRenderer struct {
	size     core.Size
	texts    []string
	colors   map[string]core.Color
	polygons int
	circles  int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{size: testBounds(), colors: make(map[string]core.Color)}
}

func (r *recordingRenderer) Clear(core.Color) {}
func (r *recordingRenderer) FillRect(x, y, w, h float64, c core.Color) {}
func (r *recordingRenderer) StrokePolygon(points []core.Vector2, c core.Color) { r.polygons++ }
func (r *recordingRenderer) FillCircle(core.Vector2, float64, core.Color) { r.circles++ }
func (r *recordingRenderer) Size() core.Size { return r.size }

func (r *recordingRenderer) Text(x, y float64, s string, c core.Color) {
	r.texts = append(r.texts, s)
	r.colors[s] = c
}

func (r *recordingRenderer) MeasureText(s string) (float64, float64) {
	return float64(len(s)) * 14, 26
}
