package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/medstock/internal/theme"
	"github.com/stretchr/testify/assert"
)

func TestNewStylesFollowsPalette(t *testing.T) {
	for _, u := range theme.UserTypes() {
		t.Run(string(u), func(t *testing.T) {
			p, err := theme.Lookup(u)
			assert.NoError(t, err)

			s := NewStyles(p)
			assert.Equal(t, p, s.Palette)
			assert.Equal(t, lipgloss.TerminalColor(p.Accent), s.Title.GetForeground())
			assert.Equal(t, lipgloss.TerminalColor(p.Error), s.Error.GetForeground())
			assert.Equal(t, lipgloss.TerminalColor(p.Accent), s.CardFocus.GetBorderTopForeground())
			assert.Equal(t, lipgloss.TerminalColor(p.Border), s.Card.GetBorderTopForeground())
		})
	}
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()
	assert.Equal(t, theme.DefaultUserType, s.Palette.Name)
}

func TestCardRendersContent(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	out := DefaultStyles().Card.Render("12 products")
	assert.Contains(t, out, "12 products")
	assert.Contains(t, out, "╭")
}

func TestSkinFollowsSwitcher(t *testing.T) {
	sw := theme.NewSwitcher()
	skin := NewSkin(theme.Palette{})

	detach := sw.Attach(skin)
	assert.Equal(t, theme.DefaultUserType, skin.Styles().Palette.Name)

	_, err := sw.Select(theme.Clinic)
	assert.NoError(t, err)
	assert.Equal(t, theme.Clinic, skin.Styles().Palette.Name)

	detach()
	_, err = sw.Select(theme.Distributor)
	assert.NoError(t, err)
	assert.Equal(t, theme.Clinic, skin.Styles().Palette.Name, "detached skin keeps its last palette")
}
