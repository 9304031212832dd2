// Package window runs the game in a desktop window with Ebitengine.
package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-miner/internal/app"
	"github.com/vovakirdan/space-miner/internal/core"
)

// Title is the window caption.
const Title = "Space Miner"

// keyBindings maps physical keys to game keys.
var keyBindings = []struct {
	key  ebiten.Key
	game core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyR, core.KeyReload},
	{ebiten.KeyEscape, core.KeyEscape},
	{ebiten.KeyEnter, core.KeyEnter},
	{ebiten.KeyNumpadEnter, core.KeyEnter},
}

// Game adapts the app to ebiten.Game.
type Game struct {
	app      *app.App
	renderer *Renderer
	clock    *core.Clock
	logical  core.Size
}

// NewGame creates the ebiten adapter for the app.
func NewGame(a *app.App, logical core.Size, tickRate int) *Game {
	return &Game{
		app:      a,
		renderer: NewRenderer(logical),
		clock:    core.NewClock(tickRate),
		logical:  logical,
	}
}

// Update steps the app once per tick.
func (g *Game) Update() error {
	dt, now := g.clock.Tick(time.Now())
	g.app.Step(g.pollInput(), dt, now)

	if !g.app.Running() {
		return ebiten.Termination
	}
	return nil
}

// pollInput reads the keyboard into an input frame.
func (g *Game) pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			in.Press(b.game)
		} else if ebiten.IsKeyPressed(b.key) {
			in.Hold(b.game)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		in.Press(core.KeyQuit)
	}
	return in
}

// Draw renders the active screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.app.Draw(g.renderer)
}

// Layout keeps the logical play area and lets Ebitengine scale it to the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.logical.W), int(g.logical.H)
}

// Run opens the window and blocks until the app quits or the window closes.
func Run(a *app.App, logical core.Size, tickRate int) error {
	if tickRate <= 0 {
		tickRate = 60
	}

	ebiten.SetWindowSize(int(logical.W), int(logical.H))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tickRate)

	return ebiten.RunGame(NewGame(a, logical, tickRate))
}
