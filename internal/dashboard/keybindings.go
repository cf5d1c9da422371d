package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/medstock/internal/theme"
)

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Quit     key.Binding
	Reseed   key.Binding
	Category key.Binding
	Theme    key.Binding
	Up       key.Binding
	Down     key.Binding
	Help     key.Binding
	Close    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Reseed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reseed stock"),
		),
		Category: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "switch user type"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous product"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next product"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Reseed, k.Category, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Category},
		{k.Reseed, k.Theme},
		{k.Help, k.Close, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key.Matches(msg, m.keys.Close) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return true, tea.Quit

	case key.Matches(msg, m.keys.Reseed):
		m.reseed()
		return true, nil

	case key.Matches(msg, m.keys.Category):
		m.category = (m.category + 1) % (len(m.categories) + 1)
		m.refreshTable()
		return true, nil

	case key.Matches(msg, m.keys.Theme):
		m.nextTheme()
		return true, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return true, cmd
	}

	return false, nil
}

// nextTheme selects the user type after the active one.
func (m *Model) nextTheme() {
	types := theme.UserTypes()
	current := m.switcher.Active().Name

	next := types[0]
	for i, t := range types {
		if t == current {
			next = types[(i+1)%len(types)]
			break
		}
	}

	if _, err := m.switcher.Select(next); err != nil {
		m.log.Warn("theme switch failed: %v", err)
		return
	}
	m.refreshTable()
}
