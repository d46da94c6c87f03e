package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the dashboard.
type keyMap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	Tab5    key.Binding
	Pause   key.Binding
	Refresh key.Binding
	Monitor key.Binding
	Suspend key.Binding
}

// ShortHelp returns the compact set of keybindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Pause, k.Refresh, k.Quit}
}

// FullHelp returns the expanded keybinding groups.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab5},
		{k.Pause, k.Refresh, k.Monitor, k.Quit},
	}
}

// keys holds the default key bindings used by the application.
var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextTab: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev tab")),
	Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
	Tab2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "cpu")),
	Tab3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "gpu")),
	Tab4:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "network")),
	Tab5:    key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "hardware")),
	Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause polling")),
	Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh caches")),
	Monitor: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open monitor")),
	Suspend: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "suspend")),
}
