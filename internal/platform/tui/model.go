package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-miner/internal/app"
	"github.com/vovakirdan/space-miner/internal/core"
)

// Minimum terminal size the game is drawn at.
const (
	MinWidth  = 40
	MinHeight = 16
)

// footerHeight is the row reserved for the key help.
const footerHeight = 1

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model driving the app.
type Model struct {
	app      *app.App
	renderer *Renderer
	keys     KeyMap
	tracker  *KeyTracker
	clock    *core.Clock
	help     help.Model
	tickRate int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model drawing the app's logical area into a terminal of
// the size given in cfg.
func NewModel(a *app.App, logical core.Size, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		app:      a,
		renderer: NewRenderer(logical, cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		keys:     DefaultKeyMap(),
		tracker:  NewKeyTracker(DefaultHoldWindow),
		clock:    core.NewClock(cfg.TickRate),
		help:     h,
		tickRate: cfg.TickRate,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next tick. Quit is applied at once.
func (m Model) handleKey(msg tea.KeyMsg, at time.Time) (tea.Model, tea.Cmd) {
	k := m.keys.Map(msg)
	if k == core.KeyQuit {
		in := core.NewInputFrame()
		in.Press(core.KeyQuit)
		m.app.Step(in, 0, 0)
		m.quitting = true
		return m, tea.Quit
	}

	m.tracker.Observe(k, at)
	return m, nil
}

// handleResize fits the drawing area to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.renderer.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	return m, nil
}

// handleTick steps the app with the keyboard state at the tick time.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	in := m.tracker.Frame(at)
	dt, now := m.clock.Tick(at)

	m.app.Step(in, dt, now)
	if !m.app.Running() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// TooSmall reports whether the terminal is below the minimum size.
func (m Model) TooSmall() bool {
	return m.width < MinWidth || m.height < MinHeight
}

// View renders the active screen and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.TooSmall() {
		hint := fmt.Sprintf("Terminal too small: %dx%d, need at least %dx%d", m.width, m.height, MinWidth, MinHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, hintStyle.Render(hint))
	}

	m.app.Draw(m.renderer)
	return RenderScreen(m.renderer.Screen()) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the app quits.
func Run(a *app.App, logical core.Size, cfg core.RuntimeConfig) error {
	model := NewModel(a, logical, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
