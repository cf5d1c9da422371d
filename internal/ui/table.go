package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a Bubbles table styled from s.
// height is the number of visible rows; zero shows every row.
func NewTable(s Styles, columns []TableColumn, rows []table.Row, height int) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	if height <= 0 {
		height = len(rows)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height+1), // +1 for header
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.Palette.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(s.Palette.Primary)
	st.Cell = st.Cell.
		Foreground(s.Palette.Primary)
	st.Selected = st.Selected.
		Foreground(s.Palette.Primary).
		Background(s.Palette.AccentDim).
		Bold(false)

	t.SetStyles(st)
	return t
}

// PadRight pads a string to the visible width, ignoring ANSI codes.
func PadRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	for i := 0; i < width-visibleLen; i++ {
		s += " "
	}
	return s
}
