// Package widgets provides the rendering primitives for the sysdeck
// dashboard: gauges, sparklines, tables, and status indicators. All
// widgets render to plain strings styled with lipgloss.
package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GaugeConfig controls the appearance and behavior of a horizontal bar gauge.
type GaugeConfig struct {
	// Width is the total character width of the gauge bar.
	Width int
	// Percent is the value from 0 to 100.
	Percent float64
	// Label is optional text shown to the left of the bar.
	Label string
	// ShowPercent controls whether "XX%" is shown to the right.
	ShowPercent bool
	// WarnAt is the % at which the bar turns yellow (default: 70).
	WarnAt float64
	// CritAt is the % at which the bar turns red (default: 90).
	CritAt float64
	// FilledChar is the character for the filled portion (default: "█").
	FilledChar string
	// EmptyChar is the character for the empty portion (default: "░").
	EmptyChar string
}

// DefaultGaugeConfig returns a GaugeConfig with sensible defaults.
func DefaultGaugeConfig() GaugeConfig {
	return GaugeConfig{
		Width:       20,
		ShowPercent: true,
		WarnAt:      70,
		CritAt:      90,
		FilledChar:  "█",
		EmptyChar:   "░",
	}
}

// gaugeColor returns the lipgloss color for the given percentage based on thresholds.
func gaugeColor(percent, warnAt, critAt float64) lipgloss.Color {
	switch {
	case percent >= critAt:
		return lipgloss.Color("#EF4444")
	case percent >= warnAt:
		return lipgloss.Color("#EAB308")
	default:
		return lipgloss.Color("#22C55E")
	}
}

// RenderGauge renders a horizontal bar gauge with optional label and percentage.
// Format: [Label] [████████░░░░] [XX%]
func RenderGauge(cfg GaugeConfig) string {
	percent := math.Max(0, math.Min(100, cfg.Percent))

	filledChar := cfg.FilledChar
	if filledChar == "" {
		filledChar = "█"
	}
	emptyChar := cfg.EmptyChar
	if emptyChar == "" {
		emptyChar = "░"
	}

	width := cfg.Width
	if width <= 0 {
		width = 20
	}

	warnAt := cfg.WarnAt
	if warnAt <= 0 {
		warnAt = 70
	}
	critAt := cfg.CritAt
	if critAt <= 0 {
		critAt = 90
	}

	filledCount := int(math.Round(percent / 100.0 * float64(width)))
	emptyCount := width - filledCount

	style := lipgloss.NewStyle().Foreground(gaugeColor(percent, warnAt, critAt))
	bar := style.Render(strings.Repeat(filledChar, filledCount)) +
		strings.Repeat(emptyChar, emptyCount)

	var sb strings.Builder
	if cfg.Label != "" {
		sb.WriteString(cfg.Label)
		sb.WriteString(" ")
	}
	sb.WriteString(bar)
	if cfg.ShowPercent {
		sb.WriteString(fmt.Sprintf(" %3.0f%%", percent))
	}

	return sb.String()
}

// RenderMiniGauge renders a compact gauge bar with no label or percentage text.
// Uses the default color thresholds.
func RenderMiniGauge(percent float64, width int) string {
	return RenderGauge(GaugeConfig{
		Width:       width,
		Percent:     percent,
		ShowPercent: false,
	})
}
