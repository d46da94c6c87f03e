package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/sysdeck/display/widgets"
)

// renderHardwareTab renders motherboard identity, CPU detail, and the
// populated memory slot table.
func (m Model) renderHardwareTab(width, height int) string {
	if m.snap == nil {
		return m.waitingView()
	}
	hw := m.snap.Hardware
	host := m.snap.Host

	row := func(label, value string) string {
		return m.theme.Label.Render(label+":") + " " + m.theme.Value.Render(value)
	}

	titleWidth := clampWidth(width-4, 20, 44)
	title := func(s string) string {
		return m.theme.Title.Render(sectionTitle(s, titleWidth))
	}

	var sections []string
	sections = append(sections,
		title("Motherboard"),
		"",
		row("Vendor", hw.BoardVendor),
		row("Product", hw.BoardProduct),
		"",
		title("Processor"),
		"",
		row("Architecture", hw.CPUArchitecture),
		row("Cache", hw.CPUCache),
		row("Max clock", hw.CPUClock),
		"",
		title("Memory Modules"),
		"",
	)

	if len(hw.MemorySlots) == 0 {
		sections = append(sections, m.theme.Dimmed.Render("no module data (dmidecode unavailable?)"))
	} else {
		tbl := widgets.DefaultTableConfig()
		tbl.HeaderStyle = m.theme.Label
		tbl.Columns = []widgets.Column{
			{Title: "Size"},
			{Title: "Type"},
			{Title: "Speed"},
		}
		for _, slot := range hw.MemorySlots {
			tbl.Rows = append(tbl.Rows, []string{slot.Size, slot.Type, slot.Speed})
		}
		sections = append(sections, widgets.RenderTable(tbl))
	}

	sections = append(sections, "",
		m.theme.Dimmed.Render(fmt.Sprintf("%s %s  %s", host.Platform, host.OSRelease, host.Arch)))

	return strings.Join(sections, "\n")
}
