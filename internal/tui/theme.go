package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors used by the dashboard. Panels reference theme
// fields, never raw color values.
type Theme struct {
	Fg       lipgloss.Color // normal text
	FgDim    lipgloss.Color // secondary text
	FgBright lipgloss.Color // emphasized text
	Border   lipgloss.Color // panel borders
	Accent   lipgloss.Color // titles, selected tab
	Healthy  lipgloss.Color // green
	Warning  lipgloss.Color // yellow
	Critical lipgloss.Color // red
	Graph    lipgloss.Color // sparkline default
	Cursor   lipgloss.Color // browser selection background
}

// TerminalTheme returns the default theme using standard ANSI colors so
// the dashboard inherits the terminal's palette.
func TerminalTheme() Theme {
	return Theme{
		Fg:       lipgloss.Color("7"),
		FgDim:    lipgloss.Color("8"),
		FgBright: lipgloss.Color("15"),
		Border:   lipgloss.Color("8"),
		Accent:   lipgloss.Color("6"),
		Healthy:  lipgloss.Color("2"),
		Warning:  lipgloss.Color("3"),
		Critical: lipgloss.Color("1"),
		Graph:    lipgloss.Color("12"),
		Cursor:   lipgloss.Color("4"),
	}
}

// UsageColor returns green/yellow/red based on a usage percentage.
func (t Theme) UsageColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 90:
		return t.Critical
	case percent >= 70:
		return t.Warning
	default:
		return t.Healthy
	}
}

// BatteryColor returns a color for a battery charge percentage. Low
// charge is the alarming direction, so the thresholds run opposite to
// UsageColor.
func (t Theme) BatteryColor(percent float64) lipgloss.Color {
	switch {
	case percent <= 15:
		return t.Critical
	case percent <= 30:
		return t.Warning
	default:
		return t.Healthy
	}
}

func fgStyle(t *Theme) lipgloss.Style     { return lipgloss.NewStyle().Foreground(t.Fg) }
func dimStyle(t *Theme) lipgloss.Style    { return lipgloss.NewStyle().Foreground(t.FgDim) }
func brightStyle(t *Theme) lipgloss.Style { return lipgloss.NewStyle().Foreground(t.FgBright) }
func accentStyle(t *Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}
