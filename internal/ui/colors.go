package ui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/medstock/internal/theme"
)

// Styles is the set of lipgloss styles every view renders with.
type Styles struct {
	Palette theme.Palette

	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Accent    lipgloss.Style
	Card      lipgloss.Style
	CardFocus lipgloss.Style
	Header    lipgloss.Style
	Footer    lipgloss.Style
}

// NewStyles builds styles from a palette.
func NewStyles(p theme.Palette) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		MarginRight(1).
		MarginBottom(1)

	return Styles{
		Palette: p,

		Title:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(p.Secondary),
		Value:   lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
		Success: lipgloss.NewStyle().Foreground(p.Success),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),
		Error:   lipgloss.NewStyle().Foreground(p.Error),
		Accent:  lipgloss.NewStyle().Foreground(p.Accent),

		Card:      card,
		CardFocus: card.BorderForeground(p.Accent),

		Header: lipgloss.NewStyle().
			Foreground(p.Primary).
			Background(p.Surface).
			Bold(true).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
	}
}

// DefaultStyles uses the default user type's palette.
func DefaultStyles() Styles {
	p, _ := theme.Lookup(theme.DefaultUserType)
	return NewStyles(p)
}

// Skin is a theme.Surface that keeps a Styles in step with the active palette.
// Bubble Tea models are values, so they hold a *Skin and read Styles at render time.
type Skin struct {
	mu     sync.RWMutex
	styles Styles
}

// NewSkin starts on p.
func NewSkin(p theme.Palette) *Skin {
	return &Skin{styles: NewStyles(p)}
}

// ApplyPalette implements theme.Surface.
func (s *Skin) ApplyPalette(p theme.Palette) {
	st := NewStyles(p)
	s.mu.Lock()
	s.styles = st
	s.mu.Unlock()
}

// Styles returns the current styles.
func (s *Skin) Styles() Styles {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.styles
}
