package widgets

import (
	"github.com/charmbracelet/lipgloss"
)

// StatusLevel represents the severity or state of a status indicator.
type StatusLevel int

const (
	// StatusOK indicates a healthy state.
	StatusOK StatusLevel = iota
	// StatusWarning indicates a degraded state.
	StatusWarning
	// StatusCritical indicates an error or critical failure.
	StatusCritical
	// StatusUnknown indicates an indeterminate state.
	StatusUnknown
)

// StatusConfig holds the configuration for rendering a status indicator.
type StatusConfig struct {
	// Level determines the color and icon.
	Level StatusLevel
	// Text is the label shown next to the indicator.
	Text string
	// ShowIcon controls whether the colored dot is shown.
	ShowIcon bool
}

// statusIcons maps each status level to its display icon.
var statusIcons = map[StatusLevel]string{
	StatusOK:       "●", // ● green dot
	StatusWarning:  "●", // ● yellow dot
	StatusCritical: "●", // ● red dot
	StatusUnknown:  "○", // ○ gray outline
}

// statusColors maps each status level to its display color.
var statusColors = map[StatusLevel]lipgloss.Color{
	StatusOK:       lipgloss.Color("#22C55E"),
	StatusWarning:  lipgloss.Color("#EAB308"),
	StatusCritical: lipgloss.Color("#EF4444"),
	StatusUnknown:  lipgloss.Color("#6B7280"),
}

// RenderStatus renders a status indicator with an optional colored icon and text.
func RenderStatus(cfg StatusConfig) string {
	style := lipgloss.NewStyle().Foreground(statusColors[cfg.Level])

	if cfg.ShowIcon {
		icon := style.Render(statusIcons[cfg.Level])
		if cfg.Text == "" {
			return icon
		}
		return icon + " " + cfg.Text
	}

	return style.Render(cfg.Text)
}

// LevelForPercent maps a usage percentage to a status level using the
// given thresholds.
func LevelForPercent(percent, warnAt, critAt float64) StatusLevel {
	switch {
	case percent >= critAt:
		return StatusCritical
	case percent >= warnAt:
		return StatusWarning
	default:
		return StatusOK
	}
}

// RenderConnectivity renders a connection indicator: a green dot with the
// label when connected, a gray outline otherwise.
func RenderConnectivity(connected bool, label string) string {
	level := StatusOK
	if !connected {
		level = StatusUnknown
	}
	return RenderStatus(StatusConfig{Level: level, Text: label, ShowIcon: true})
}
