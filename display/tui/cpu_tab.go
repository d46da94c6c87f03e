package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/sysdeck/display/widgets"
)

// renderCPUTab renders processor identity, the usage gauge, the derived
// temperature, and the full history sparkline.
func (m Model) renderCPUTab(width, height int) string {
	if m.snap == nil {
		return m.waitingView()
	}
	cpu := m.snap.CPU

	row := func(label, value string) string {
		return m.theme.Label.Render(label+":") + " " + m.theme.Value.Render(value)
	}

	var sections []string
	sections = append(sections,
		m.theme.Title.Render("Processor"),
		"",
		row("Model", truncateText(cpu.Model, width-10)),
		row("Cores", fmt.Sprintf("%d", cpu.Cores)),
	)
	if cpu.SpeedMhz > 0 {
		sections = append(sections, row("Clock", fmt.Sprintf("%.0f MHz", cpu.SpeedMhz)))
	}

	sections = append(sections, "",
		widgets.RenderGauge(widgets.GaugeConfig{
			Width:       detailGaugeWidth(width),
			Percent:     cpu.UsagePercent,
			Label:       m.theme.Label.Render("Usage"),
			ShowPercent: true,
			WarnAt:      m.warnAt,
			CritAt:      m.critAt,
		}),
		row("Temp", fmt.Sprintf("%.0f°C", cpu.EstimatedTemperatureC))+
			m.theme.Dimmed.Render(" (estimated)"),
		"",
	)

	sparkWidth := sparklineWidth(width, 4)
	if sparkWidth > 0 {
		sections = append(sections,
			m.theme.Dimmed.Render("last 2 minutes"),
			widgets.RenderPercentSparkline(m.snap.History.CPU, sparkWidth, colorSuccess),
		)
	}

	return strings.Join(sections, "\n")
}
