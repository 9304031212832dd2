package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-miner/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per fg/bg combination.
var styleCache = map[colorPair]lipgloss.Style{}

// styleFor returns the style for a color pair. ColorDefault leaves the
// terminal's own color in place.
func styleFor(p colorPair) lipgloss.Style {
	if style, ok := styleCache[p]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if p.fg != core.ColorDefault {
		style = style.Foreground(lipglossColor(p.fg))
	}
	if p.bg != core.ColorDefault {
		style = style.Background(lipglossColor(p.bg))
	}
	styleCache[p] = style
	return style
}

func lipglossColor(c core.Color) lipgloss.Color {
	r, g, b := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
