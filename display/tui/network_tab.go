package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/sysdeck/display/widgets"
)

// renderNetworkTab renders the active connection. Throughput figures are
// fabricated and labeled as such.
func (m Model) renderNetworkTab(width, height int) string {
	if m.snap == nil {
		return m.waitingView()
	}
	net := m.snap.Network

	row := func(label, value string) string {
		return m.theme.Label.Render(label+":") + " " + m.theme.Value.Render(value)
	}

	sections := []string{
		m.theme.Title.Render("Network"),
		"",
		widgets.RenderConnectivity(net.Connected, net.Label),
		row("Type", net.Type),
	}

	if !net.Connected {
		sections = append(sections, "", m.theme.Dimmed.Render("no active connection"))
		return strings.Join(sections, "\n")
	}

	if net.Type == "wifi" {
		sections = append(sections,
			widgets.RenderGauge(widgets.GaugeConfig{
				Width:       summaryGaugeWidth(width),
				Percent:     float64(net.SignalPercent),
				Label:       m.theme.Label.Render("Signal"),
				ShowPercent: true,
				// Signal strength reads the other way around: low is bad.
				WarnAt: 101,
				CritAt: 102,
			}),
		)
	}

	sections = append(sections, "",
		row("Down", fmt.Sprintf("%.0f Mbps", net.SimulatedDownloadMbps)),
		row("Up", fmt.Sprintf("%.0f Mbps", net.SimulatedUploadMbps)),
		"",
		m.theme.Dimmed.Render("speeds are simulated; no throughput is measured"),
	)

	return strings.Join(sections, "\n")
}
