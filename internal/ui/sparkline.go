package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/medstock/internal/theme"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// SparklineRunes maps data to block characters without styling.
// Only the most recent width points are used.
func SparklineRunes(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		level := numLevels / 2
		if valueRange != 0 {
			level = int((v - minVal) / valueRange * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	return sb.String()
}

// RenderSparkline renders a trend line colored by direction: success when the
// last point is at or above the first, warning otherwise.
func RenderSparkline(data []float64, width int, p theme.Palette) string {
	line := SparklineRunes(data, width)
	if line == "" {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}
	color := p.Success
	if data[len(data)-1] < data[0] {
		color = p.Warning
	}

	return lipgloss.NewStyle().Foreground(color).Render(line)
}

// TrendPercent is the change from the first to the last point, in percent.
func TrendPercent(data []float64) float64 {
	if len(data) < 2 || data[0] == 0 {
		return 0
	}
	return (data[len(data)-1] - data[0]) / data[0] * 100
}
