package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/rileyhilliard/medstock/internal/animate"
	"github.com/rileyhilliard/medstock/internal/landing"
	"golang.org/x/term"
)

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// statsCommand prints the landing statistics, counting up when animated.
// Interrupting the count leaves the partial line and exits cleanly.
func statsCommand(ctx context.Context, out io.Writer, s *settings, animated bool) error {
	stats := s.seed.Landing
	if !animated {
		return landing.Print(out, stats, s.styles)
	}

	err := landing.Run(ctx, out, stats, landing.Options{
		Scheduler: animate.TickerScheduler{},
		Animation: s.cfg.Animation.Animate(),
		Styles:    s.styles,
		Logger:    s.log,
	})
	if stderrors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
