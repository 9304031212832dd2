// Package app is the application shell: it owns every screen, routes input to
// the active one and switches screens on the events they emit.
package app

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
	"github.com/vovakirdan/space-miner/internal/game"
	"github.com/vovakirdan/space-miner/internal/menu"
	"github.com/vovakirdan/space-miner/internal/session"
	"github.com/vovakirdan/space-miner/internal/storage"
)

// Screen is implemented by the gameplay screen and every menu.
type Screen interface {
	HandleInput(in core.InputFrame)
	Update(dt, now float64)
	Draw(r core.Renderer)
	// TakeEvent returns the transition requested by the last update, if any,
	// and clears it.
	TakeEvent() core.Event
}

// ScreenID identifies one of the app's screens.
type ScreenID int

const (
	ScreenMainMenu ScreenID = iota
	ScreenGame
	ScreenPauseMenu
	ScreenShopMenu
)

// String returns the screen name.
func (id ScreenID) String() string {
	switch id {
	case ScreenMainMenu:
		return "main_menu"
	case ScreenGame:
		return "game"
	case ScreenPauseMenu:
		return "pause_menu"
	case ScreenShopMenu:
		return "shop_menu"
	default:
		return "unknown"
	}
}

// History stores finished runs and reports the best one.
type History interface {
	game.RunRecorder
	BestRun() (storage.Run, bool, error)
}

// Option configures an App.
type Option func(*App)

// WithRand sets the random source passed to the game.
func WithRand(rng *rand.Rand) Option {
	return func(a *App) { a.rng = rng }
}

// WithLogger sets the logger shared by every screen.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithHistory enables run recording and the best-run line on the main menu.
func WithHistory(h History) Option {
	return func(a *App) { a.history = h }
}

// App owns the screens and the active-screen pointer.
type App struct {
	stats   *session.Stats
	rng     *rand.Rand
	log     *log.Logger
	history History

	mainMenu  *menu.Menu
	pauseMenu *menu.Menu
	shopMenu  *menu.Shop
	game      *game.Game
	screens   map[ScreenID]Screen

	current ScreenID
	running bool
}

// New creates the app with every screen built and the main menu active.
func New(cfg config.Config, stats *session.Stats, opts ...Option) *App {
	a := &App{stats: stats, running: true}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = log.New(io.Discard)
	}

	gameOpts := []game.Option{game.WithLogger(a.log)}
	if a.rng != nil {
		gameOpts = append(gameOpts, game.WithRand(a.rng))
	}
	if a.history != nil {
		gameOpts = append(gameOpts, game.WithRecorder(a.history))
	}

	a.mainMenu = menu.NewMain(stats, a.log)
	a.pauseMenu = menu.NewPause(stats, a.log)
	a.shopMenu = menu.NewShop(stats, cfg, a.log)
	a.game = game.New(cfg, stats, gameOpts...)

	a.screens = map[ScreenID]Screen{
		ScreenMainMenu:  a.mainMenu,
		ScreenGame:      a.game,
		ScreenPauseMenu: a.pauseMenu,
		ScreenShopMenu:  a.shopMenu,
	}
	a.current = ScreenMainMenu
	return a
}

// Step runs one frame: the active screen handles input and updates, then the
// event it emitted, if any, switches screens. Draw is called separately.
func (a *App) Step(in core.InputFrame, dt, now float64) {
	if !a.running {
		return
	}
	if in.IsHeld(core.KeyQuit) {
		a.log.Info("quit requested")
		a.running = false
		return
	}

	s := a.screens[a.current]
	s.HandleInput(in)
	s.Update(dt, now)
	a.handleEvent(s.TakeEvent())
}

// Draw renders the active screen.
func (a *App) Draw(r core.Renderer) {
	a.screens[a.current].Draw(r)
}

// Running reports whether the app should keep looping.
func (a *App) Running() bool {
	return a.running
}

// Current returns the active screen.
func (a *App) Current() ScreenID {
	return a.current
}

// Stats returns the session stats.
func (a *App) Stats() *session.Stats {
	return a.stats
}

func (a *App) handleEvent(ev core.Event) {
	switch ev {
	case core.EventNone:
		return
	case core.EventQuit:
		a.log.Info("quit selected")
		a.running = false
		return
	case core.EventGoToGame:
		a.switchTo(ScreenGame)
	case core.EventGoToMainMenu:
		a.refreshBestRun()
		a.switchTo(ScreenMainMenu)
	case core.EventGoToPauseMenu:
		a.switchTo(ScreenPauseMenu)
	case core.EventGoToShopMenu:
		a.switchTo(ScreenShopMenu)
	}
}

func (a *App) switchTo(id ScreenID) {
	a.log.Debug("screen transition", "from", a.current, "to", id)
	a.current = id
}

// refreshBestRun updates the best-run line on the main menu.
func (a *App) refreshBestRun() {
	if a.history == nil {
		return
	}
	best, ok, err := a.history.BestRun()
	if err != nil {
		a.log.Error("failed to read run history", "err", err)
		return
	}
	if ok {
		a.mainMenu.SetNote(fmt.Sprintf("Best this session: level %d, %d cr.", best.Level, best.Credits))
	}
}
