package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/medstock/internal/animate"
	"github.com/rileyhilliard/medstock/internal/dashboard"
	"github.com/rileyhilliard/medstock/internal/errors"
)

// dashboardCommand runs the inventory dashboard until the user quits.
func dashboardCommand(s *settings) error {
	model, err := dashboard.NewModel(dashboard.Options{
		Scheduler: animate.TickerScheduler{},
		Animation: s.cfg.Animation.Animate(),
		Seed:      s.seed,
		SeedValue: s.cfg.Data.Seed,
	})
	if err != nil {
		return err
	}
	// Timers must not outlive the program, even if it exits on an error.
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard stopped unexpectedly",
			"Check that your terminal supports full-screen mode.")
	}
	return nil
}
