package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/medstock/internal/errors"
	"github.com/rileyhilliard/medstock/internal/register"
	"github.com/rileyhilliard/medstock/internal/theme"
	"github.com/rileyhilliard/medstock/internal/ui"
)

// registerCommand runs the registration wizard and prints the reference of
// a submitted application.
func registerCommand(out io.Writer, s *settings) error {
	model, err := register.NewModel(register.Options{})
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Registration stopped unexpectedly",
			"Check terminal compatibility and try again.")
	}

	m, ok := final.(register.Model)
	if !ok || !m.Submitted() {
		return nil
	}

	app := m.Application()
	styles := ui.NewStyles(theme.Global().Active())
	s.log.Debug("registered %s account %q", app.UserType, app.BusinessName)
	_, err = fmt.Fprintf(out, "%s Registration received. Reference: %s\n",
		styles.Success.Render(ui.SymbolSuccess), styles.Value.Render(app.Reference))
	return err
}
