package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/space-miner/internal/core"
)

// HUD layout in world units.
const (
	hudX         = 10
	hudTop       = 10
	hudStep      = 30
	hudBottomGap = 50
	blinkRate    = 8 // ship blinks per second while invulnerable
)

// Draw renders the field and the HUD.
func (g *Game) Draw(r core.Renderer) {
	r.Clear(core.ColorBlueDarker)

	if !g.gameOver {
		for _, a := range g.asteroids {
			r.StrokePolygon(a.Outline(), core.ColorAsteroid)
		}
		for _, b := range g.ship.Bullets() {
			r.FillCircle(b.Pos, b.Radius, core.ColorYellow)
		}
		if g.shipVisible() {
			r.StrokePolygon(g.ship.Outline(), core.ColorWhite)
		}
	}

	g.drawHUD(r)
}

// shipVisible blinks the ship during the invulnerability window.
func (g *Game) shipVisible() bool {
	since := g.now - g.shipSpawnedAt
	if since > g.cfg.Ship.Invulnerability {
		return true
	}
	return int(since*blinkRate)%2 == 0
}

func (g *Game) drawHUD(r core.Renderer) {
	step := core.LineHeight(r, hudStep)

	r.Text(hudX, hudTop, fmt.Sprintf("Level: %d", g.stats.Level), core.ColorWhite)
	r.Text(hudX, hudTop+step, fmt.Sprintf("Credits: %d", g.stats.Credits), core.ColorWhite)
	r.Text(hudX, hudTop+2*step, fmt.Sprintf("Lives: %d", g.stats.Lives), core.ColorWhite)

	y := r.Size().H - max(hudBottomGap, step)
	if g.ship.Reloading() {
		r.Text(hudX, y, "Bullets: RELOADING...", core.ColorRed)
		return
	}
	r.Text(hudX, y, bulletsLine(g.ship.CurBullets, g.stats.MaxBullets), core.ColorWhite)
}

// bulletsLine formats the magazine as "Bullets: [cur / max] |||".
func bulletsLine(cur, maxBullets int) string {
	return fmt.Sprintf("Bullets: [%d / %d] %s", cur, maxBullets, strings.Repeat("|", max(cur, 0)))
}
