package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/sysdeck/display/widgets"
)

// renderGPUTab renders the display adapter. Temperature and utilization
// are fabricated values and are labeled as such.
func (m Model) renderGPUTab(width, height int) string {
	if m.snap == nil {
		return m.waitingView()
	}
	gpu := m.snap.GPU

	row := func(label, value string) string {
		return m.theme.Label.Render(label+":") + " " + m.theme.Value.Render(value)
	}

	sections := []string{
		m.theme.Title.Render("Display Adapter"),
		"",
		row("Name", gpu.Name),
		row("Memory", gpu.Memory),
		"",
		widgets.RenderGauge(widgets.GaugeConfig{
			Width:       detailGaugeWidth(width),
			Percent:     gpu.SimulatedUsagePercent,
			Label:       m.theme.Label.Render("Usage"),
			ShowPercent: true,
			WarnAt:      m.warnAt,
			CritAt:      m.critAt,
		}),
		row("Temp", fmt.Sprintf("%.0f°C", gpu.SimulatedTemperatureC)),
		"",
		m.theme.Dimmed.Render("usage and temperature are simulated; no GPU sensor is read"),
	}

	return strings.Join(sections, "\n")
}
