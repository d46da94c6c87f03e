package tui

import (
	"strings"
	"testing"
)

func TestSummaryGaugeWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{20, 10},  // clamped to minimum
		{90, 30},  // width / 3
		{200, 40}, // clamped to maximum
	}

	for _, tt := range tests {
		if got := summaryGaugeWidth(tt.width); got != tt.want {
			t.Errorf("summaryGaugeWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestDetailGaugeWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{10, 10},
		{80, 40},
		{200, 50},
	}

	for _, tt := range tests {
		if got := detailGaugeWidth(tt.width); got != tt.want {
			t.Errorf("detailGaugeWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestSparklineWidth(t *testing.T) {
	tests := []struct {
		width  int
		margin int
		want   int
	}{
		{80, 12, 60},  // capped at max
		{40, 12, 28},  // width minus margin
		{10, 12, 0},   // too narrow
		{200, 4, 60},  // wide terminals still cap
	}

	for _, tt := range tests {
		if got := sparklineWidth(tt.width, tt.margin); got != tt.want {
			t.Errorf("sparklineWidth(%d, %d) = %d, want %d", tt.width, tt.margin, got, tt.want)
		}
	}
}

func TestSectionTitle(t *testing.T) {
	got := sectionTitle("CPU", 11)
	if got != "─── CPU ───" {
		t.Errorf("sectionTitle = %q", got)
	}
	if !strings.Contains(got, "CPU") {
		t.Errorf("title text missing from %q", got)
	}

	// Too narrow for decoration: return the bare title.
	if got := sectionTitle("Motherboard", 8); got != "Motherboard" {
		t.Errorf("narrow sectionTitle = %q, want bare title", got)
	}
	if got := sectionTitle("X", 0); got != "X" {
		t.Errorf("zero-width sectionTitle = %q, want bare title", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("Intel Core i7-7700K CPU @ 4.20GHz", 20); got != "Intel Core i7-770..." {
		t.Errorf("truncateText = %q", got)
	}
	if got := truncateText("short", 20); got != "short" {
		t.Errorf("truncateText = %q, want unchanged", got)
	}
}
