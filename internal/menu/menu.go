// Package menu implements the list menus shown between gameplay: the main
// menu, the pause menu and the shop.
package menu

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-miner/internal/core"
	"github.com/vovakirdan/space-miner/internal/session"
)

// Layout in world units.
const (
	titleY      = 120
	itemHeight  = 60
	itemGap     = itemHeight / 2
	itemPadding = itemHeight / 3
	footerGap   = 50
	statsX      = 10
	statsTop    = 10
	statsStep   = 30
	helpWidth   = 600
	helpHeight  = 400
	helpTop     = 50
	helpStep    = 22
)

// Footer is the navigation hint shown at the bottom of every menu.
const Footer = `Press "UP" or "DOWN" to select, "ENTER" to activate`

var helpLines = []string{
	"Shoot asteroids, yearn credits, buy upgrades.",
	"",
	`"Left arrow" and "Right arrow" to rotate the ship.`,
	`"Up arrow" to accelerate.`,
	`"Space" to shoot.`,
	`"R" to reload.`,
	`"ESC" to pause the game`,
	"",
	"Have fun!",
	"",
	"",
	"",
	`Press "Enter" to close this window.`,
}

// Item is a labelled menu entry.
type Item struct {
	Label  string
	Action func()
}

// Menu is a vertical list of items with one selected entry.
type Menu struct {
	title     string
	items     []Item
	selected  int
	itemWidth float64
	showStats bool
	showHelp  bool
	note      string

	stats *session.Stats
	log   *log.Logger
	event core.Event
}

func newMenu(title string, stats *session.Stats, logger *log.Logger) *Menu {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Menu{
		title:     title,
		itemWidth: 400,
		stats:     stats,
		log:       logger,
	}
}

// NewMain creates the main menu.
func NewMain(stats *session.Stats, logger *log.Logger) *Menu {
	m := newMenu("Space Miner", stats, logger)
	m.items = []Item{
		{Label: "Start new game", Action: m.emit(core.EventGoToGame)},
		{Label: "How to play", Action: m.ToggleHelp},
		{Label: "Quit", Action: m.emit(core.EventQuit)},
	}
	return m
}

// NewPause creates the pause menu. It shows the session stats.
func NewPause(stats *session.Stats, logger *log.Logger) *Menu {
	m := newMenu("Space Miner", stats, logger)
	m.items = []Item{
		{Label: "Resume your game", Action: m.emit(core.EventGoToGame)},
		{Label: "How to play", Action: m.ToggleHelp},
		{Label: "Quit", Action: m.emit(core.EventQuit)},
	}
	m.showStats = true
	return m
}

func (m *Menu) emit(ev core.Event) func() {
	return func() { m.event = ev }
}

// HandleInput activates the selected item on Enter and moves the selection
// on Up/Down.
func (m *Menu) HandleInput(in core.InputFrame) {
	if in.WasPressed(core.KeyEnter) {
		m.Activate()
	}

	if in.WasPressed(core.KeyUp) {
		m.SelectPrev()
	} else if in.WasPressed(core.KeyDown) {
		m.SelectNext()
	}
}

// Activate runs the selected item's action.
func (m *Menu) Activate() {
	if len(m.items) == 0 {
		return
	}
	m.items[m.selected].Action()
}

// SelectNext moves the selection down, wrapping to the first item.
func (m *Menu) SelectNext() {
	if len(m.items) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.items)
}

// SelectPrev moves the selection up, wrapping to the last item.
func (m *Menu) SelectPrev() {
	if len(m.items) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
}

// Selected returns the index of the selected item.
func (m *Menu) Selected() int {
	return m.selected
}

// Items returns the menu entries.
func (m *Menu) Items() []Item {
	return m.items
}

// ToggleHelp shows or hides the how-to-play overlay.
func (m *Menu) ToggleHelp() {
	m.showHelp = !m.showHelp
}

// HelpVisible reports whether the how-to-play overlay is shown.
func (m *Menu) HelpVisible() bool {
	return m.showHelp
}

// SetNote sets a line of text shown under the item list. Empty hides it.
func (m *Menu) SetNote(note string) {
	m.note = note
}

// Note returns the line shown under the item list.
func (m *Menu) Note() string {
	return m.note
}

// Update is a no-op. Menus have no simulation.
func (m *Menu) Update(dt, now float64) {}

// TakeEvent returns the pending transition request and clears it.
func (m *Menu) TakeEvent() core.Event {
	ev := m.event
	m.event = core.EventNone
	return ev
}

// Draw renders the menu.
func (m *Menu) Draw(r core.Renderer) {
	size := r.Size()
	center := size.Center()

	r.Clear(core.ColorBlueDarker)
	core.TextCentered(r, center.X, titleY, m.title, core.ColorGreenAcidic)

	m.drawItems(r, center)
	core.TextCentered(r, center.X, size.H-footerGap, Footer, core.ColorGray)

	if m.showStats {
		m.drawStats(r)
	}
	if m.showHelp {
		m.drawHelp(r, center)
	}
}

func (m *Menu) drawItems(r core.Renderer, center core.Vector2) {
	n := float64(len(m.items))

	// Grow with the labels so long text stays inside its box.
	width := m.itemWidth
	for _, it := range m.items {
		w, _ := r.MeasureText(it.Label)
		width = max(width, w+2*itemPadding)
	}
	width += 2 * itemGap
	height := itemHeight*n + itemGap*(n+1)

	x0 := center.X - width/2
	y0 := center.Y - height/2
	r.FillRect(x0, y0, width, height, core.ColorBlueDark)

	for i, it := range m.items {
		color := core.ColorBlue
		if i == m.selected {
			color = core.ColorGreenDark
		}

		x := x0 + itemPadding
		y := y0 + itemGap + float64(i)*(itemGap+itemHeight)
		w := width - 2*itemPadding
		r.FillRect(x, y, w, itemHeight, color)
		core.TextCentered(r, x+w/2, y+itemHeight/2, it.Label, core.ColorGray)
	}

	if m.note != "" {
		core.TextCentered(r, center.X, y0+height+itemGap, m.note, core.ColorGray)
	}
}

func (m *Menu) drawStats(r core.Renderer) {
	step := core.LineHeight(r, statsStep)
	lines := []string{
		fmt.Sprintf("Level: %d", m.stats.Level),
		fmt.Sprintf("Credits: %d", m.stats.Credits),
		fmt.Sprintf("Lives: %d", m.stats.Lives),
		fmt.Sprintf("Bullets: %d", m.stats.MaxBullets),
	}
	for i, line := range lines {
		r.Text(statsX, statsTop+float64(i)*step, line, core.ColorWhite)
	}
}

func (m *Menu) drawHelp(r core.Renderer, center core.Vector2) {
	step := core.LineHeight(r, helpStep)

	width := float64(helpWidth)
	for _, line := range helpLines {
		w, _ := r.MeasureText(line)
		width = max(width, w+2*itemGap)
	}
	height := max(helpHeight, 2*helpTop+float64(len(helpLines))*step)

	x0 := center.X - width/2
	y0 := center.Y - height/2
	r.FillRect(x0, y0, width, height, core.ColorBlueDark)

	for i, line := range helpLines {
		if line == "" {
			continue
		}
		core.TextCentered(r, center.X, y0+helpTop+float64(i)*step, line, core.ColorGray)
	}
}
