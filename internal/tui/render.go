package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal control sequences used by the frame writer.
const (
	escClearScreen = "\x1b[2J"
	escClearEOL    = "\x1b[K"
	escClearEOS    = "\x1b[J"
	escCursorHome  = "\x1b[H"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
)

// Box renders a bordered panel with a title using rounded Unicode corners.
// Content is padded to fill width×height (including borders).
func Box(title, content string, width, height int, theme *Theme) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	innerW := width - 2 // subtract left+right border chars
	borderStyle := lipgloss.NewStyle().Foreground(theme.Border)

	// Top border with embedded title.
	var top string
	if title != "" {
		titleStr := " " + title + " "
		titleLen := lipgloss.Width(titleStr)
		if titleLen > innerW-2 {
			titleStr = Truncate(titleStr, innerW-2)
			titleLen = lipgloss.Width(titleStr)
		}
		styled := accentStyle(theme).Render(titleStr)
		trailing := innerW - 1 - titleLen
		if trailing < 0 {
			trailing = 0
		}
		top = borderStyle.Render("╭─") + styled + borderStyle.Render(strings.Repeat("─", trailing)+"╮")
	} else {
		top = borderStyle.Render("╭" + strings.Repeat("─", innerW) + "╮")
	}

	lines := strings.Split(content, "\n")
	innerH := height - 2
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	var b strings.Builder
	b.WriteString(top)
	b.WriteByte('\n')
	for _, line := range lines {
		lineW := lipgloss.Width(line)
		pad := innerW - lineW
		if pad < 0 {
			pad = 0
		}
		b.WriteString(borderStyle.Render("│"))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(borderStyle.Render("│"))
		b.WriteByte('\n')
	}
	b.WriteString(borderStyle.Render("╰" + strings.Repeat("─", innerW) + "╯"))

	return b.String()
}

// Bar renders a labeled usage bar like "CPU  [████░░░░░░]  42.0%".
// The fill is colored by the theme's usage thresholds.
func Bar(label string, percent float64, width int, theme *Theme) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	value := fmt.Sprintf("%5.1f%%", percent)
	barW := width - len([]rune(label)) - len(value) - 4
	if barW < 4 {
		barW = 4
	}
	filled := int(percent / 100 * float64(barW))
	if filled > barW {
		filled = barW
	}

	fill := lipgloss.NewStyle().Foreground(theme.UsageColor(percent))
	empty := dimStyle(theme)
	return fgStyle(theme).Render(label) + " [" +
		fill.Render(strings.Repeat("█", filled)) +
		empty.Render(strings.Repeat("░", barW-filled)) +
		"] " + brightStyle(theme).Render(value)
}

// keyValue renders a dim label and a normal value as one line.
func keyValue(label, value string, labelW int, theme *Theme) string {
	return dimStyle(theme).Render(padRight(label, labelW)) + fgStyle(theme).Render(value)
}
