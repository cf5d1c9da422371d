// Package landing prints the headline statistics counting up on one line.
package landing

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/medstock/internal/animate"
	"github.com/rileyhilliard/medstock/internal/inventory"
	"github.com/rileyhilliard/medstock/internal/logger"
	"github.com/rileyhilliard/medstock/internal/ui"
)

const separator = "  ·  "

// Options configures Run.
type Options struct {
	Scheduler animate.Scheduler
	Animation animate.Config
	Styles    ui.Styles
	Logger    logger.Logger
}

// FormatFor returns the display format of a stat.
func FormatFor(s inventory.LandingStat) animate.Format {
	return animate.Format{Decimals: s.Decimals, Prefix: s.Prefix, Suffix: s.Suffix}
}

// Run animates every stat toward its value, redrawing a single line on w
// after each batch of frames. It returns nil once every stat has landed, or
// ctx.Err() if ctx is cancelled first. Timers are released either way.
func Run(ctx context.Context, w io.Writer, stats []inventory.LandingStat, opts Options) error {
	if len(stats) == 0 {
		return nil
	}
	if opts.Scheduler == nil {
		opts.Scheduler = animate.TickerScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	board, err := animate.NewBoard(opts.Scheduler, opts.Animation)
	if err != nil {
		return err
	}
	defer board.Close()

	for _, s := range stats {
		if err := board.Add(s.Key, FormatFor(s)); err != nil {
			return err
		}
	}

	r := &redrawer{w: w}
	for _, s := range stats {
		if err := board.SetTarget(s.Key, s.Value); err != nil {
			return err
		}
	}
	opts.Logger.Debug("animating %d landing stats over %s", len(stats), opts.Animation.Duration)

	for {
		if board.Settled() {
			r.draw(renderLine(board, stats, opts.Styles))
			r.finish()
			return nil
		}

		select {
		case <-ctx.Done():
			board.Close()
			r.draw(renderLine(board, stats, opts.Styles))
			r.finish()
			return ctx.Err()
		case <-board.Updates():
			r.draw(renderLine(board, stats, opts.Styles))
		}
	}
}

// Print writes the final values without animating, for pipes and --no-animate.
func Print(w io.Writer, stats []inventory.LandingStat, styles ui.Styles) error {
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = renderStat(s.Label, FormatFor(s).Render(s.Value), styles)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, separator))
	return err
}

func renderLine(b *animate.Board, stats []inventory.LandingStat, styles ui.Styles) string {
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = renderStat(s.Label, b.Text(s.Key), styles)
	}
	return strings.Join(parts, separator)
}

func renderStat(label, value string, styles ui.Styles) string {
	return styles.Value.Render(value) + " " + styles.Label.Render(label)
}

// redrawer rewrites one terminal line in place.
type redrawer struct {
	w    io.Writer
	last string
}

func (r *redrawer) draw(line string) {
	if line == r.last {
		return
	}
	if r.last != "" {
		fmt.Fprintf(r.w, "\r%s\r", strings.Repeat(" ", lipgloss.Width(r.last)))
	}
	fmt.Fprint(r.w, line)
	r.last = line
}

func (r *redrawer) finish() {
	fmt.Fprintln(r.w)
}
