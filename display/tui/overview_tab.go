package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/sysdeck/display/widgets"
)

// renderOverviewTab renders the summary tab: one gauge per resource, the
// CPU history strip, and the connection line.
func (m Model) renderOverviewTab(width, height int) string {
	if m.snap == nil {
		return m.waitingView()
	}
	snap := m.snap

	gaugeWidth := summaryGaugeWidth(width)

	gauge := func(label string, percent float64) string {
		return widgets.RenderGauge(widgets.GaugeConfig{
			Width:       gaugeWidth,
			Percent:     percent,
			Label:       m.theme.Label.Render(fmt.Sprintf("%-4s", label)),
			ShowPercent: true,
			WarnAt:      m.warnAt,
			CritAt:      m.critAt,
		})
	}

	var sections []string
	sections = append(sections,
		m.theme.Title.Render(fmt.Sprintf("%s  %s %s", snap.Host.Hostname, snap.Host.OSType, snap.Host.OSRelease)),
		"",
		gauge("CPU", snap.CPU.UsagePercent),
		gauge("MEM", snap.Memory.UsagePercent),
		gauge("DISK", snap.Storage.UsagePercent),
		gauge("GPU", snap.GPU.SimulatedUsagePercent)+m.theme.Dimmed.Render(" sim"),
		"",
	)

	sparkWidth := sparklineWidth(width, 12)
	if sparkWidth > 0 {
		sections = append(sections,
			widgets.RenderPercentSparkline(snap.History.CPU, sparkWidth, colorSuccess)+
				m.theme.Dimmed.Render(" cpu"),
			widgets.RenderPercentSparkline(snap.History.Memory, sparkWidth, colorWarning)+
				m.theme.Dimmed.Render(" mem"),
			"",
		)
	}

	net := widgets.RenderConnectivity(snap.Network.Connected, snap.Network.Label)
	if snap.Network.Connected && snap.Network.Type == "wifi" {
		net += m.theme.Dimmed.Render(fmt.Sprintf("  signal %d%%", snap.Network.SignalPercent))
	}
	sections = append(sections, net)

	sections = append(sections, m.theme.Dimmed.Render(
		fmt.Sprintf("up %s  load %.2f %.2f %.2f",
			snap.Host.Uptime, snap.Host.Load1, snap.Host.Load5, snap.Host.Load15)))

	if len(snap.Warnings) > 0 {
		sections = append(sections, "",
			m.theme.Warning.Render("degraded: "+strings.Join(snap.Warnings, "; ")))
	}

	return strings.Join(sections, "\n")
}

func (m Model) waitingView() string {
	return m.theme.Dimmed.Render("Waiting for first sample...")
}
