package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkRunes are the eight vertical block levels, lowest to highest.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the most recent values as a single row of block
// characters. Values are scaled against max; pass 0 to scale against
// the window's own peak (useful for rates with no natural ceiling).
func Sparkline(data []float64, width int, max float64, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	if max <= 0 {
		for _, v := range data {
			if v > max {
				max = v
			}
		}
	}

	var b strings.Builder
	b.Grow(width * 3)
	for i := len(data); i < width; i++ {
		b.WriteByte(' ')
	}
	levels := len(sparkRunes)
	for _, v := range data {
		level := 0
		if max > 0 {
			level = int(v / max * float64(levels-1))
		}
		if level < 0 {
			level = 0
		}
		if level >= levels {
			level = levels - 1
		}
		b.WriteRune(sparkRunes[level])
	}

	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}
