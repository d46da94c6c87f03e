package tui

import (
	"strings"

	"gitlab.com/tinyland/lab/sysdeck/internal/format"
)

// Width budgets for the dashboard widgets. Gauges scale with the
// terminal but stay readable at both extremes; sparklines cap at 60
// columns so history stays one-sample-per-cell on wide terminals.
const (
	minGaugeWidth    = 10
	summaryGaugeMax  = 40
	detailGaugeMax   = 50
	sparklineMaxCols = 60
)

// summaryGaugeWidth sizes the stacked gauges on the overview tab.
func summaryGaugeWidth(width int) int {
	return clampWidth(width/3, minGaugeWidth, summaryGaugeMax)
}

// detailGaugeWidth sizes the single large gauge on a detail tab.
func detailGaugeWidth(width int) int {
	return clampWidth(width/2, minGaugeWidth, detailGaugeMax)
}

// sparklineWidth sizes a history sparkline, leaving margin columns for
// the trailing label. Returns 0 when the terminal is too narrow.
func sparklineWidth(width, margin int) int {
	w := width - margin
	if w > sparklineMaxCols {
		w = sparklineMaxCols
	}
	if w < 0 {
		w = 0
	}
	return w
}

func clampWidth(w, min, max int) int {
	if w < min {
		return min
	}
	if w > max {
		return max
	}
	return w
}

// truncateText is a convenience wrapper for format.TruncateWithEllipsis.
func truncateText(s string, maxWidth int) string {
	return format.TruncateWithEllipsis(s, maxWidth)
}

// sectionTitle renders a centered title with horizontal rules on either
// side: "---- Title ----".
func sectionTitle(title string, width int) string {
	if width <= 0 {
		return title
	}

	titleLen := len([]rune(title))
	decorLen := titleLen + 2
	if decorLen >= width {
		return title
	}

	remaining := width - decorLen
	leftLen := remaining / 2
	rightLen := remaining - leftLen

	left := strings.Repeat("─", leftLen)
	right := strings.Repeat("─", rightLen)

	return left + " " + title + " " + right
}
