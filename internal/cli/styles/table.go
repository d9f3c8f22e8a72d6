package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed, unfocused table model for static output.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)
	// No row is selected in static output.
	s.Selected = lipgloss.NewStyle()

	t.SetStyles(s)
	return t
}

// SimulationTableColumns returns columns for replayed drag steps.
func SimulationTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Event", Width: 14},
		{Title: "Accepted", Width: 8},
		{Title: "Panel", Width: 12},
		{Title: "Edge", Width: 8},
		{Title: "Distance", Width: 8},
	}
}

// SnapshotTableColumns returns columns for recorded dock snapshots.
func SnapshotTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Edge", Width: 8},
		{Title: "Offset", Width: 12},
		{Title: "Panel", Width: 12},
		{Title: "Host", Width: 22},
		{Title: "Recorded", Width: 19},
	}
}
