package widgets

import (
	"strings"
	"testing"
)

func TestRenderTable_Basic(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.Columns = []Column{
		{Title: "Slot"},
		{Title: "Size"},
		{Title: "Speed"},
	}
	cfg.Rows = [][]string{
		{"DIMM_A1", "16 GB", "3200 MT/s"},
		{"DIMM_B1", "16 GB", "3200 MT/s"},
	}

	result := RenderTable(cfg)

	for _, want := range []string{"Slot", "Size", "Speed", "DIMM_A1", "3200 MT/s"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected %q in output:\n%s", want, result)
		}
	}
	if !strings.Contains(result, "─") {
		t.Error("expected a separator line under the header")
	}
}

func TestRenderTable_NoColumns(t *testing.T) {
	if got := RenderTable(TableConfig{}); got != "" {
		t.Errorf("expected empty output, got: %q", got)
	}
}

func TestRenderTable_NoHeader(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.ShowHeader = false
	cfg.Columns = []Column{{Title: "Hidden"}}
	cfg.Rows = [][]string{{"value"}}

	result := RenderTable(cfg)

	if strings.Contains(result, "Hidden") {
		t.Errorf("expected no header, got:\n%s", result)
	}
	if !strings.Contains(result, "value") {
		t.Errorf("expected row data, got:\n%s", result)
	}
}

func TestRenderTable_ShortRows(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.Columns = []Column{{Title: "A"}, {Title: "B"}}
	cfg.Rows = [][]string{{"only-a"}}

	result := RenderTable(cfg)

	if !strings.Contains(result, "only-a") {
		t.Errorf("expected short row to render, got:\n%s", result)
	}
}

func TestPadOrTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		align Alignment
		want  string
	}{
		{"abc", 5, AlignLeft, "abc  "},
		{"abc", 5, AlignRight, "  abc"},
		{"abcdef", 4, AlignLeft, "abc…"},
		{"abc", 0, AlignLeft, ""},
		{"abc", 1, AlignLeft, "a"},
	}

	for _, tt := range tests {
		if got := padOrTruncate(tt.in, tt.width, tt.align); got != tt.want {
			t.Errorf("padOrTruncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestColumnWidths_Auto(t *testing.T) {
	cols := []Column{{Title: "Name"}, {Title: "V", Width: 8}}
	rows := [][]string{{"longer-name", "x"}}

	widths := columnWidths(cols, rows)

	if widths[0] != len("longer-name") {
		t.Errorf("auto width = %d, want %d", widths[0], len("longer-name"))
	}
	if widths[1] != 8 {
		t.Errorf("fixed width = %d, want 8", widths[1])
	}
}
