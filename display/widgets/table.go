package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment controls text alignment within a table column.
type Alignment int

const (
	// AlignLeft aligns text to the left (default).
	AlignLeft Alignment = iota
	// AlignRight aligns text to the right.
	AlignRight
)

// Column defines a single table column.
type Column struct {
	// Title is the header text.
	Title string
	// Width is the fixed character width. If 0, auto-calculated from content.
	Width int
	// Align controls text alignment within the column.
	Align Alignment
}

// TableConfig holds the configuration for rendering a table.
type TableConfig struct {
	// Columns defines the table structure.
	Columns []Column
	// Rows is the table data. Each row is a slice of cell strings.
	Rows [][]string
	// ShowHeader controls whether the header row is displayed.
	ShowHeader bool
	// HeaderStyle is the lipgloss style for the header row.
	HeaderStyle lipgloss.Style
	// Separator is the column separator string (default: "  ").
	Separator string
}

// DefaultTableConfig returns a TableConfig with sensible defaults.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		ShowHeader:  true,
		Separator:   "  ",
		HeaderStyle: lipgloss.NewStyle().Bold(true),
	}
}

// RenderTable renders a formatted text table from the given configuration.
func RenderTable(cfg TableConfig) string {
	if len(cfg.Columns) == 0 {
		return ""
	}

	if cfg.Separator == "" {
		cfg.Separator = "  "
	}

	widths := columnWidths(cfg.Columns, cfg.Rows)

	var lines []string

	if cfg.ShowHeader {
		cells := make([]string, len(cfg.Columns))
		for i, col := range cfg.Columns {
			cells[i] = padOrTruncate(col.Title, widths[i], AlignLeft)
		}
		lines = append(lines, cfg.HeaderStyle.Render(strings.Join(cells, cfg.Separator)))

		seps := make([]string, len(cfg.Columns))
		for i := range cfg.Columns {
			seps[i] = strings.Repeat("─", widths[i])
		}
		lines = append(lines, strings.Join(seps, cfg.Separator))
	}

	for _, row := range cfg.Rows {
		cells := make([]string, len(cfg.Columns))
		for i := range cfg.Columns {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			cells[i] = padOrTruncate(text, widths[i], cfg.Columns[i].Align)
		}
		lines = append(lines, strings.Join(cells, cfg.Separator))
	}

	return strings.Join(lines, "\n")
}

// padOrTruncate pads or truncates a string to the given width with the
// specified alignment. Truncation appends an ellipsis when room allows.
func padOrTruncate(s string, width int, align Alignment) string {
	if width <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}

	padding := strings.Repeat(" ", width-len(runes))
	if align == AlignRight {
		return padding + s
	}
	return s + padding
}

// columnWidths determines each column's width: the fixed Width when set,
// otherwise the widest of the header and all cell values.
func columnWidths(cols []Column, rows [][]string) []int {
	widths := make([]int, len(cols))

	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		w := len([]rune(col.Title))
		for _, row := range rows {
			if i < len(row) {
				if l := len([]rune(row[i])); l > w {
					w = l
				}
			}
		}
		if w == 0 {
			w = 1
		}
		widths[i] = w
	}

	return widths
}
