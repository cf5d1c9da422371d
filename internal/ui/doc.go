// Package ui provides the terminal building blocks shared by medstock's views.
//
// Everything here is styled from a theme.Palette so the active user type
// recolors every view at once.
//
// # Components Overview
//
//	Styles      - lipgloss styles derived from a palette
//	RenderBar   - block-character percentage bar
//	Sparkline   - one-line trend chart for monthly revenue
//	NewTable    - Bubbles table with palette styling
//	Symbols     - status glyphs for steps and stock levels
package ui
