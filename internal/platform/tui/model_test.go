package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-miner/internal/app"
	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
	"github.com/vovakirdan/space-miner/internal/session"
	"github.com/vovakirdan/space-miner/internal/storage"
)

func newTestModel(t *testing.T, w, h int) (Model, *app.App) {
	t.Helper()
	cfg := config.Default()
	stats := session.New(cfg.Defaults)
	a := app.New(cfg, stats, app.WithRand(rand.New(rand.NewSource(1))))

	logical := core.Size{W: cfg.Screen.Width, H: cfg.Screen.Height}
	rc := core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60}
	return NewModel(a, logical, rc), a
}

func TestModelEnterStartsGame(t *testing.T) {
	m, a := newTestModel(t, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, cmd := next.Update(TickMsg(time.Now()))

	if a.Current() != app.ScreenGame {
		t.Errorf("Current() = %v, expected game", a.Current())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if view := next.View(); !strings.Contains(view, "Level: 1") {
		t.Errorf("game view missing HUD:\n%s", view)
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m, a := newTestModel(t, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if a.Running() {
		t.Error("app should stop on ctrl+c")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelMenuView(t *testing.T) {
	m, _ := newTestModel(t, 100, 30)

	view := m.View()

	for _, want := range []string{"Space Miner", "Start new game", "How to play", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _ := newTestModel(t, 80, 24)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	if !next.(Model).TooSmall() {
		t.Fatal("30x10 should be too small")
	}
	if view := next.View(); !strings.Contains(view, "too small") {
		t.Errorf("expected size hint, got:\n%s", view)
	}
}

func TestSessionSummary(t *testing.T) {
	if got := SessionSummary(nil); got != "" {
		t.Errorf("SessionSummary(nil) = %q, expected empty", got)
	}

	runs := []storage.Run{
		{ID: 1, Level: 5, Credits: 1200, CreatedAt: time.Now()},
		{ID: 2, Level: 2, Credits: 300, CreatedAt: time.Now()},
	}
	out := SessionSummary(runs)

	for _, want := range []string{"Runs this session", "Level", "#1", "1200"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
