package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	width := m.calculateCardWidth()
	cards := make([]string, len(cardDefs))
	for i, c := range cardDefs {
		cards[i] = m.renderCard(c, width)
	}
	b.WriteString(m.layoutCards(cards, width))

	if m.LayoutMode() != LayoutMinimal {
		b.WriteString("\n")
		b.WriteString(m.renderInventory())
	}

	if m.ShowFooter() {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

// renderHeader renders the title bar with the user type and filter.
func (m Model) renderHeader() string {
	st := m.skin.Styles()

	category := m.Category()
	if category == "" {
		category = "all categories"
	}

	state := "counting"
	if m.board.Settled() {
		state = "up to date"
	}

	title := st.Title.Render("medstock dashboard")
	stats := st.Label.Render(fmt.Sprintf(" | %s | %s | %s",
		st.Palette.Name.Label(), category, state))

	return st.Header.Render(title + stats)
}

// renderInventory renders the product table.
func (m Model) renderInventory() string {
	st := m.skin.Styles()
	title := st.Title.Render("Inventory") + st.Muted.Render("  most urgent first")
	return title + "\n" + m.table.View()
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	st := m.skin.Styles()
	return st.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	st := m.skin.Styles()

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Palette.Accent).
		Padding(1, 2)

	content := strings.Join([]string{
		st.Title.Render("Keyboard Shortcuts"),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		st.Muted.Render("Press ? to close"),
	}, "\n")

	if m.width == 0 || m.height == 0 {
		return box.Render(content)
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box.Render(content),
		lipgloss.WithWhitespaceChars(" "),
	)
}
