package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/sysdeck/config"
	"gitlab.com/tinyland/lab/sysdeck/display/widgets"
	"gitlab.com/tinyland/lab/sysdeck/internal/format"
	"gitlab.com/tinyland/lab/sysdeck/snapshot"
)

// reportGaugeWidth picks a gauge width from the terminal size, falling
// back to 40 columns when stdout is not a TTY.
func reportGaugeWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 40
	}

	width := w - 30
	if width < 20 {
		width = 20
	}
	if width > 60 {
		width = 60
	}
	return width
}

// renderReport formats a snapshot as a plain text report for -once mode.
func renderReport(snap *snapshot.Snapshot, cfg *config.Config) string {
	var b strings.Builder
	width := reportGaugeWidth()

	gauge := func(label string, percent float64) string {
		return widgets.RenderGauge(widgets.GaugeConfig{
			Width:       width,
			Percent:     percent,
			Label:       label,
			ShowPercent: true,
			WarnAt:      cfg.Display.WarnPercent,
			CritAt:      cfg.Display.CritPercent,
		})
	}

	fmt.Fprintf(&b, "%s (%s %s)\n", snap.Host.Hostname, snap.Host.Platform, snap.Host.Arch)
	fmt.Fprintf(&b, "up %s, load %.2f %.2f %.2f\n\n",
		format.FormatUptime(snap.Host.UptimeSeconds),
		snap.Host.Load1, snap.Host.Load5, snap.Host.Load15)

	fmt.Fprintln(&b, gauge("CPU ", snap.CPU.UsagePercent))
	fmt.Fprintln(&b, gauge("MEM ", snap.Memory.UsagePercent))
	fmt.Fprintln(&b, gauge("DISK", snap.Storage.UsagePercent))
	b.WriteString("\n")

	fmt.Fprintf(&b, "CPU:     %s (%d cores)\n", snap.CPU.Model, snap.CPU.Cores)
	fmt.Fprintf(&b, "Memory:  %.1f / %.1f GB\n", snap.Memory.UsedGB, snap.Memory.TotalGB)
	fmt.Fprintf(&b, "Disk:    %s, %.1f GB free\n", snap.Storage.Volume, snap.Storage.FreeGB)
	fmt.Fprintf(&b, "GPU:     %s (%s)\n", snap.GPU.Name, snap.GPU.Memory)

	if snap.Network.Connected {
		fmt.Fprintf(&b, "Network: %s (%s", snap.Network.Label, snap.Network.Type)
		if snap.Network.Type == "wifi" {
			fmt.Fprintf(&b, ", signal %d%%", snap.Network.SignalPercent)
		}
		b.WriteString(")\n")
	} else {
		fmt.Fprintln(&b, "Network: disconnected")
	}

	if len(snap.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range snap.Warnings {
			fmt.Fprintf(&b, "degraded: %s\n", w)
		}
	}

	return b.String()
}
