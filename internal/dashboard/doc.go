// Package dashboard provides the interactive inventory dashboard TUI.
//
// The dashboard shows animated metric cards for the seeded inventory, a
// revenue trend, a stock health bar and an inventory table sorted by stock
// pressure. Cards count up from zero on mount and again whenever their
// target changes (pressing r reseeds stock levels).
//
// # Architecture
//
// Model owns an animate.Board. Scheduler goroutines emit frames into the
// board, which coalesces them into a single Updates signal. waitForFrames
// turns that signal into a frameMsg so Bubble Tea re-renders; View reads
// the latest frame of each card from the board. Quitting closes the board,
// which stops every timer and releases the waiting command.
//
// # Layout Modes
//
//	LayoutMinimal   - < 80 cols, one card per row, no table
//	LayoutCompact   - 80-119 cols
//	LayoutStandard  - 120-159 cols
//	LayoutWide      - 160+ cols, widest card rows
package dashboard
