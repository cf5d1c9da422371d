package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/medstock/internal/theme"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ProgressColorFunc returns a bar color for a percentage.
type ProgressColorFunc func(percent float64) lipgloss.Color

// HealthColor colors a bar where higher is better: 0-50% error,
// 50-80% warning, 80%+ success.
func HealthColor(p theme.Palette) ProgressColorFunc {
	return func(percent float64) lipgloss.Color {
		switch {
		case percent >= 80:
			return p.Success
		case percent >= 50:
			return p.Warning
		default:
			return p.Error
		}
	}
}

// BarConfig configures progress bar rendering.
type BarConfig struct {
	Width     int               // Width of the bar in characters
	Brackets  bool              // Whether to wrap bar in [ ]
	ColorFunc ProgressColorFunc // Function to determine bar color
}

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// BuildBarString builds the raw bar string (without styling) from filled/empty counts.
func BuildBarString(filledCount, emptyCount int, brackets bool) string {
	var sb strings.Builder
	capacity := filledCount + emptyCount
	if brackets {
		capacity += 2
	}
	sb.Grow(capacity)

	if brackets {
		sb.WriteRune('[')
	}
	for i := 0; i < filledCount; i++ {
		sb.WriteRune(BarFilled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(BarEmpty)
	}
	if brackets {
		sb.WriteRune(']')
	}

	return sb.String()
}

// CalculateBarCounts returns the number of filled and empty characters for a bar.
// Percent should be 0-100, width is the total bar width.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	filled = int((percent / 100.0) * float64(width))
	empty = width - filled
	return
}

// RenderBar renders a progress bar with the given configuration.
// Percent should be 0-100.
func RenderBar(percent float64, config BarConfig) string {
	if config.Width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := CalculateBarCounts(percent, config.Width)
	bar := BuildBarString(filled, empty, config.Brackets)

	if config.ColorFunc != nil {
		style := lipgloss.NewStyle().Foreground(config.ColorFunc(percent))
		bar = style.Render(bar)
	}

	return bar
}
