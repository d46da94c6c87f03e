// Package tui implements the sysdeck terminal dashboard: a tabbed
// bubbletea application polling the snapshot pipeline on a fixed tick.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysdeck/launcher"
	"gitlab.com/tinyland/lab/sysdeck/snapshot"
)

// Tab identifies which tab is currently active.
type Tab int

const (
	TabOverview Tab = iota
	TabCPU
	TabGPU
	TabNetwork
	TabHardware
	tabCount // sentinel for wrapping
)

// tabNames maps each Tab value to its display label.
var tabNames = map[Tab]string{
	TabOverview: "Overview",
	TabCPU:      "CPU",
	TabGPU:      "GPU",
	TabNetwork:  "Network",
	TabHardware: "Hardware",
}

// Poller produces snapshots for the dashboard.
type Poller interface {
	Poll(ctx context.Context) *snapshot.Snapshot
	RefreshCaches()
}

// MonitorLauncher starts an external system monitor.
type MonitorLauncher interface {
	Launch() launcher.Result
}

// Messages passed through the bubbletea runtime.
type (
	tickMsg     time.Time
	snapshotMsg *snapshot.Snapshot
	monitorMsg  launcher.Result
)

// Model is the top-level bubbletea model for the sysdeck dashboard.
type Model struct {
	activeTab Tab
	width     int
	height    int
	ready     bool

	poller   Poller
	launcher MonitorLauncher
	interval time.Duration
	theme    Theme
	warnAt   float64
	critAt   float64

	snap        *snapshot.Snapshot
	lastUpdated time.Time
	paused      bool

	// inFlight guards against overlapping polls: ticks arriving while a
	// poll is still running are dropped.
	inFlight bool

	statusMsg string
}

// ModelOptions configures a dashboard model.
type ModelOptions struct {
	Poller   Poller
	Launcher MonitorLauncher
	// Interval is the poll tick period. Defaults to 2s.
	Interval time.Duration
	// Theme selects the color palette, "dark" or "light".
	Theme string
	// WarnAt and CritAt are the gauge color thresholds.
	WarnAt float64
	CritAt float64
}

// NewModel returns an initialized Model with the Overview tab active.
func NewModel(opts ModelOptions) Model {
	if opts.Interval <= 0 {
		opts.Interval = 2 * time.Second
	}
	if opts.WarnAt <= 0 {
		opts.WarnAt = 70
	}
	if opts.CritAt <= 0 {
		opts.CritAt = 90
	}

	return Model{
		activeTab: TabOverview,
		poller:    opts.Poller,
		launcher:  opts.Launcher,
		interval:  opts.Interval,
		theme:     ThemeByName(opts.Theme),
		warnAt:    opts.WarnAt,
		critAt:    opts.CritAt,
	}
}

// Init implements tea.Model. The first poll runs immediately so the
// dashboard opens with data instead of waiting a full tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.tickCmd())
}

// pollCmd runs one poll off the UI goroutine and delivers the snapshot.
func (m Model) pollCmd() tea.Cmd {
	poller := m.poller
	return func() tea.Msg {
		return snapshotMsg(poller.Poll(context.Background()))
	}
}

// tickCmd schedules the next poll tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// launchCmd starts the external monitor off the UI goroutine.
func (m Model) launchCmd() tea.Cmd {
	l := m.launcher
	return func() tea.Msg {
		return monitorMsg(l.Launch())
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Always reschedule; skip the poll while paused or one is
		// already running.
		if m.paused || m.inFlight {
			return m, m.tickCmd()
		}
		m.inFlight = true
		return m, tea.Batch(m.pollCmd(), m.tickCmd())

	case snapshotMsg:
		m.inFlight = false
		m.snap = msg
		m.lastUpdated = time.Now()
		return m, nil

	case monitorMsg:
		m.statusMsg = msg.Message
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Suspend):
		return m, tea.Suspend
	case key.Matches(msg, keys.NextTab):
		m.activeTab = (m.activeTab + 1) % tabCount
	case key.Matches(msg, keys.PrevTab):
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
	case key.Matches(msg, keys.Tab1):
		m.activeTab = TabOverview
	case key.Matches(msg, keys.Tab2):
		m.activeTab = TabCPU
	case key.Matches(msg, keys.Tab3):
		m.activeTab = TabGPU
	case key.Matches(msg, keys.Tab4):
		m.activeTab = TabNetwork
	case key.Matches(msg, keys.Tab5):
		m.activeTab = TabHardware
	case key.Matches(msg, keys.Pause):
		m.paused = !m.paused
		if m.paused {
			m.statusMsg = "paused"
		} else {
			m.statusMsg = ""
		}
	case key.Matches(msg, keys.Refresh):
		m.poller.RefreshCaches()
		if !m.inFlight {
			m.inFlight = true
			m.statusMsg = "refreshing"
			return m, m.pollCmd()
		}
	case key.Matches(msg, keys.Monitor):
		if m.launcher != nil {
			return m, m.launchCmd()
		}
	}

	return m, nil
}

// View implements tea.Model. It renders the header, active tab content, and footer.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	content := m.renderTabContent()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// renderHeader renders the tab bar with the active tab highlighted.
func (m Model) renderHeader() string {
	var tabs []string
	for i := Tab(0); i < tabCount; i++ {
		name := tabNames[i]
		if i == m.activeTab {
			tabs = append(tabs, m.theme.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, m.theme.InactiveTab.Render(name))
		}
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return m.theme.Header.Width(m.width).Render(tabBar)
}

// renderTabContent delegates to the appropriate tab renderer.
func (m Model) renderTabContent() string {
	contentHeight := m.height - 6
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch m.activeTab {
	case TabOverview:
		content = m.renderOverviewTab(m.width, contentHeight)
	case TabCPU:
		content = m.renderCPUTab(m.width, contentHeight)
	case TabGPU:
		content = m.renderGPUTab(m.width, contentHeight)
	case TabNetwork:
		content = m.renderNetworkTab(m.width, contentHeight)
	case TabHardware:
		content = m.renderHardwareTab(m.width, contentHeight)
	}

	return m.theme.Content.Width(m.width).Render(content)
}

// renderFooter renders the help text, status message, and last poll time.
func (m Model) renderFooter() string {
	help := "q: quit | tab: switch | p: pause | r: refresh | o: monitor"

	var extra string
	if m.statusMsg != "" {
		extra = "  [" + m.statusMsg + "]"
	}
	if !m.lastUpdated.IsZero() {
		extra += fmt.Sprintf("  Updated: %s", m.lastUpdated.Format("15:04:05"))
	}

	return m.theme.Footer.Width(m.width).Render(help + extra)
}
