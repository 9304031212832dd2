package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
	"github.com/vovakirdan/space-miner/internal/session"
)

// RunRecorder stores the result of a finished run.
type RunRecorder interface {
	RecordRun(level, credits int) error
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used for spawning and splitting.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger for gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithRecorder sets where finished runs are recorded.
func WithRecorder(r RunRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// Game is the gameplay screen.
type Game struct {
	cfg      config.Config
	stats    *session.Stats
	bounds   core.Size
	rng      *rand.Rand
	log      *log.Logger
	recorder RunRecorder

	ship          *Ship
	shipSpawnedAt float64
	asteroids     []*Asteroid
	asteroidsGoal int

	currentLevel int
	gameOver     bool
	now          float64
	event        core.Event
}

// New creates a game screen and generates the first asteroid field.
// The session stats are reset to their defaults.
func New(cfg config.Config, stats *session.Stats, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		stats:  stats,
		bounds: core.Size{W: cfg.Screen.Width, H: cfg.Screen.Height},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	g.restart()
	return g
}

// HandleInput applies held keys to the ship's controls and reacts to
// reload and pause presses.
func (g *Game) HandleInput(in core.InputFrame) {
	switch {
	case in.IsHeld(core.KeyLeft):
		g.ship.RotationSpeed = -g.cfg.Ship.RotationSpeed
	case in.IsHeld(core.KeyRight):
		g.ship.RotationSpeed = g.cfg.Ship.RotationSpeed
	default:
		g.ship.RotationSpeed = 0
	}

	if in.IsHeld(core.KeyUp) {
		g.ship.Thrust = g.cfg.Ship.Thrust
	} else {
		g.ship.Thrust = 0
	}

	if in.IsHeld(core.KeySpace) {
		g.ship.Shoot()
	}

	if in.WasPressed(core.KeyReload) {
		g.ship.StartReloading()
	}

	if in.WasPressed(core.KeyEscape) {
		g.event = core.EventGoToPauseMenu
	}
}

// Update advances the simulation to now.
func (g *Game) Update(dt, now float64) {
	g.now = now

	if g.gameOver {
		g.recordRun()
		g.restart()
		g.event = core.EventGoToMainMenu
		return
	}

	if g.currentLevel != g.stats.Level {
		g.startNewLevel()
	}

	g.ship.Update(dt, now, g.bounds)
	for _, a := range g.asteroids {
		a.Update(dt, g.bounds)
	}

	g.checkBulletCollisions()
	g.checkShipCollisions()
	if !g.gameOver {
		g.checkForWin()
	}
}

// TakeEvent returns the pending transition request and clears it.
func (g *Game) TakeEvent() core.Event {
	ev := g.event
	g.event = core.EventNone
	return ev
}

// Ship returns the player's ship.
func (g *Game) Ship() *Ship {
	return g.ship
}

// Asteroids returns the asteroids currently on the field.
func (g *Game) Asteroids() []*Asteroid {
	return g.asteroids
}

// GameOver reports whether the run has ended and will restart on the next
// update.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// checkBulletCollisions destroys every asteroid hit by a bullet, replaces it
// with its fragments and pays out credits. A bullet hits at most one asteroid.
func (g *Game) checkBulletCollisions() {
	for _, b := range g.ship.Bullets() {
		for i, a := range g.asteroids {
			if !b.CollidesWith(a.Body) {
				continue
			}

			b.Alive = false
			g.stats.AddCredits(a.Credits())

			g.asteroids = append(g.asteroids[:i], g.asteroids[i+1:]...)
			g.asteroids = append(g.asteroids, a.Split(g.rng)...)
			break
		}
	}
	g.ship.removeDeadBullets()
}

// checkShipCollisions costs a life for touching an asteroid once the
// invulnerability window after the last spawn has passed.
func (g *Game) checkShipCollisions() {
	for _, a := range g.asteroids {
		if !g.ship.CollidesWith(a.Body) || g.now <= g.shipSpawnedAt+g.cfg.Ship.Invulnerability {
			continue
		}

		g.generateShip()
		noneLeft := g.stats.LoseLife()
		g.log.Info("life lost", "lives", g.stats.Lives, "level", g.stats.Level)
		if noneLeft {
			break
		}
	}

	if g.stats.Lives < 1 && !g.gameOver {
		g.stats.Lives = 0
		g.gameOver = true
		g.log.Info("game over", "level", g.stats.Level, "credits", g.stats.Credits)
	}
}

// checkForWin sends the player to the shop once the field is cleared.
func (g *Game) checkForWin() {
	if len(g.asteroids) == 0 {
		g.event = core.EventGoToShopMenu
	}
}

// startNewLevel rebuilds the field after the shop advanced the level.
func (g *Game) startNewLevel() {
	g.currentLevel = g.stats.Level

	g.generateShip()
	g.ship.CurBullets = g.stats.MaxBullets

	g.asteroidsGoal = g.cfg.Field.AsteroidsPerLevel * g.stats.Level
	g.generateAsteroids()
	g.log.Info("level started", "level", g.currentLevel, "asteroids", len(g.asteroids))
}

// generateShip places a fresh ship at rest in the center of the field.
func (g *Game) generateShip() {
	g.ship = NewShip(g.bounds.Center(), g.stats, g.cfg.Ship)
	g.shipSpawnedAt = g.now
}

// generateAsteroids adds asteroids until the goal is reached, keeping them
// away from the ship. After SpawnAttempts failed tries an asteroid is placed
// at the last sampled point regardless of distance.
func (g *Game) generateAsteroids() {
	for len(g.asteroids) < g.asteroidsGoal {
		var pos core.Vector2
		placed := false
		for range g.cfg.Field.SpawnAttempts {
			pos = core.Vec(g.rng.Float64()*g.bounds.W, g.rng.Float64()*g.bounds.H)
			if pos.DistanceTo(g.ship.Pos) > g.cfg.Field.SafeDistance {
				placed = true
				break
			}
		}
		if !placed {
			g.log.Warn("no safe spawn point, placing asteroid near the ship",
				"attempts", g.cfg.Field.SpawnAttempts, "x", pos.X, "y", pos.Y)
		}

		g.asteroids = append(g.asteroids, NewAsteroid(g.rng, pos, g.cfg.Asteroid.DefaultSize, g.cfg.Asteroid))
	}
}

// restart resets the session and builds a fresh first level.
func (g *Game) restart() {
	g.stats.Reset()

	g.asteroids = nil
	g.asteroidsGoal = g.cfg.Field.StartAsteroids
	g.currentLevel = g.stats.Level
	g.gameOver = false

	g.generateShip()
	g.generateAsteroids()
}

// recordRun stores the finished run. Failures are logged, not fatal.
func (g *Game) recordRun() {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.RecordRun(g.stats.Level, g.stats.Credits); err != nil {
		g.log.Error("failed to record run", "err", err)
	}
}
