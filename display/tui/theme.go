package tui

import "github.com/charmbracelet/lipgloss"

// Core palette shared by both themes.
const (
	colorSuccess = lipgloss.Color("#22C55E")
	colorWarning = lipgloss.Color("#EAB308")
	colorDanger  = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Theme bundles the lipgloss styles used by the dashboard chrome.
type Theme struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Content     lipgloss.Style
	Title       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Dimmed      lipgloss.Style
	Warning     lipgloss.Style
}

func makeTheme(accent, secondary, text lipgloss.Color) Theme {
	return Theme{
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2),
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorMuted).
			MarginBottom(1),
		Footer: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
		Content: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Value: lipgloss.NewStyle().
			Foreground(text),
		Dimmed: lipgloss.NewStyle().
			Foreground(colorMuted),
		Warning: lipgloss.NewStyle().
			Foreground(colorWarning),
	}
}

// darkTheme is the default palette.
var darkTheme = makeTheme(
	lipgloss.Color("#2563EB"), // blue accent
	lipgloss.Color("#06B6D4"), // cyan titles
	lipgloss.Color("#FFFFFF"),
)

var lightTheme = makeTheme(
	lipgloss.Color("#1D4ED8"),
	lipgloss.Color("#0E7490"),
	lipgloss.Color("#111827"),
)

// ThemeByName returns the theme for a config theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return lightTheme
	}
	return darkTheme
}
