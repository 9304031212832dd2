package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-miner/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// or repeat.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Shoot   key.Binding
	Reload  key.Binding
	Pause   key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Shoot, k.Reload, k.Pause, k.Confirm, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Shoot, k.Reload, k.Pause},
		{k.Confirm, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "rotate left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "rotate right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "menu down"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "shoot"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Map translates a key message to a game key. Unbound keys yield KeyNone.
func (k KeyMap) Map(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyQuit
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Shoot):
		return core.KeySpace
	case key.Matches(msg, k.Reload):
		return core.KeyReload
	case key.Matches(msg, k.Pause):
		return core.KeyEscape
	case key.Matches(msg, k.Confirm):
		return core.KeyEnter
	}
	return core.KeyNone
}

// KeyTracker turns the terminal's stream of key presses into per-frame
// held and just-pressed sets.
//
// Terminals report presses and auto-repeats but no releases, so a key is
// considered held while its events keep arriving within the hold window.
// Every event, auto-repeats included, is also reported as a press.
type KeyTracker struct {
	window   time.Duration
	lastSeen map[core.Key]time.Time
	pressed  map[core.Key]bool
}

// NewKeyTracker creates a tracker. A non-positive window uses
// DefaultHoldWindow.
func NewKeyTracker(window time.Duration) *KeyTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyTracker{
		window:   window,
		lastSeen: make(map[core.Key]time.Time),
		pressed:  make(map[core.Key]bool),
	}
}

// Observe records a key event received at the given time.
func (t *KeyTracker) Observe(k core.Key, at time.Time) {
	if k == core.KeyNone {
		return
	}
	t.pressed[k] = true
	t.lastSeen[k] = at
}

// Frame returns the keyboard state at the given time and starts a new frame
// of just-pressed keys.
func (t *KeyTracker) Frame(at time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for k := range t.lastSeen {
		if t.heldAt(k, at) {
			in.Hold(k)
		} else {
			delete(t.lastSeen, k)
		}
	}
	for k := range t.pressed {
		in.Press(k)
	}
	clear(t.pressed)
	return in
}

func (t *KeyTracker) heldAt(k core.Key, at time.Time) bool {
	seen, ok := t.lastSeen[k]
	return ok && at.Sub(seen) <= t.window
}
