package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-miner/internal/storage"
)

var summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#64ff00"))

// SessionSummary renders the runs finished this session as a table, best
// first. Returns an empty string when there are none.
func SessionSummary(runs []storage.Run) string {
	if len(runs) == 0 {
		return ""
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Level", Width: 7},
		{Title: "Credits", Width: 10},
		{Title: "Finished", Width: 10},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.Credits),
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // rows plus the bordered header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Not focused: no row highlight
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return summaryTitleStyle.Render("Runs this session") + "\n" + t.View() + "\n"
}
