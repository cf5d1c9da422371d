package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/medstock/internal/inventory"
	"github.com/rileyhilliard/medstock/internal/ui"
)

// Card layout constants
const (
	cardWidth       = 28 // inner width of a card
	cardMinBarWidth = 10
)

// renderCard renders one metric card. The value is whatever frame the board
// last emitted; the detail line comes from the settled seed data.
func (m Model) renderCard(c cardDef, width int) string {
	st := m.skin.Styles()

	frame := m.board.Frame(c.key)
	value := st.Value.Render(m.board.Text(c.key))
	if !frame.Final {
		value = st.Accent.Render(m.board.Text(c.key))
	}

	lines := []string{
		st.Label.Render(c.label),
		value,
		m.cardDetail(c.key, width),
	}
	if c.key == CardHealth && m.history.Count(CardHealth) > 1 {
		trend := ui.RenderSparkline(m.history.Get(CardHealth, width-8), width-8, st.Palette)
		lines = append(lines, st.Muted.Render("trend ")+trend)
	}

	style := st.Card
	if frame.Final {
		style = st.CardFocus
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// cardDetail renders the secondary line under a card's value.
func (m Model) cardDetail(key string, width int) string {
	st := m.skin.Styles()
	sum := m.seed.Summary()

	switch key {
	case CardProducts:
		return st.Muted.Render(humanize.Comma(int64(sum.Units)) + " units on hand")

	case CardLowStock:
		if sum.LowStock == 0 {
			return st.Success.Render(ui.SymbolSuccess + " all above reorder level")
		}
		return st.Warning.Render(ui.SymbolWarning + " at or below reorder level")

	case CardExpiring:
		return st.Muted.Render(fmt.Sprintf("within %d days", inventory.ExpiringWindowDays))

	case CardHealth:
		barWidth := width - 2
		if barWidth < cardMinBarWidth {
			barWidth = cardMinBarWidth
		}
		// The bar follows the animated value so it fills with the number.
		return ui.RenderBar(m.board.Frame(key).Value, ui.BarConfig{
			Width:     barWidth,
			ColorFunc: ui.HealthColor(st.Palette),
		})

	case CardRevenue:
		series := m.seed.RevenueSeries()
		trend := ui.TrendPercent(series)
		trendStyle := st.Success
		if trend < 0 {
			trendStyle = st.Warning
		}
		spark := ui.RenderSparkline(series, width-10, st.Palette)
		return spark + " " + trendStyle.Render(fmt.Sprintf("%+.1f%%", trend))
	}

	return ""
}

// calculateCardWidth determines the card width based on terminal width.
func (m Model) calculateCardWidth() int {
	if m.LayoutMode() == LayoutMinimal && m.width > 0 {
		w := m.width - 4
		if w < cardMinBarWidth+2 {
			w = cardMinBarWidth + 2
		}
		return w
	}
	return cardWidth
}

// layoutCards arranges cards in rows based on terminal width.
func (m Model) layoutCards(cards []string, width int) string {
	if len(cards) == 0 {
		return ""
	}

	cardsPerRow := len(cards)
	if m.width > 0 {
		// Account for card margins and borders
		effective := width + 5
		cardsPerRow = m.width / effective
		if cardsPerRow < 1 {
			cardsPerRow = 1
		}
	}

	var rows []string
	for i := 0; i < len(cards); i += cardsPerRow {
		end := i + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
