package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/sysdeck/launcher"
	"gitlab.com/tinyland/lab/sysdeck/snapshot"
)

// fakePoller implements Poller without touching the OS.
type fakePoller struct {
	snap      *snapshot.Snapshot
	polls     int
	refreshes int
}

func (p *fakePoller) Poll(ctx context.Context) *snapshot.Snapshot {
	p.polls++
	return p.snap
}

func (p *fakePoller) RefreshCaches() {
	p.refreshes++
}

// fakeLauncher implements MonitorLauncher.
type fakeLauncher struct {
	result launcher.Result
	calls  int
}

func (l *fakeLauncher) Launch() launcher.Result {
	l.calls++
	return l.result
}

func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		CPU:    snapshot.CPUStatus{UsagePercent: 42, Model: "i7-7700K", Cores: 8},
		Memory: snapshot.MemoryStatus{UsagePercent: 50, TotalGB: 16},
		GPU:    snapshot.GPUStatus{Name: "HD Graphics 630", Memory: "Unknown"},
		Network: snapshot.NetworkStatus{
			Label: "HomeNet", Connected: true, Type: "wifi", SignalPercent: 87,
		},
		Storage: snapshot.StorageStatus{Volume: "/", UsagePercent: 40},
		History: snapshot.HistoryData{CPU: []float64{10, 42}, Memory: []float64{48, 50}},
		Host:    snapshot.HostData{Hostname: "workbench", OSType: "linux", Uptime: "1h 2m"},
		Hardware: snapshot.HardwareData{
			BoardVendor: "ASUS", BoardProduct: "PRIME Z390",
			CPUArchitecture: "x86_64", CPUCache: "8 MiB L3", CPUClock: "4500 MHz",
		},
	}
}

func testModel() (Model, *fakePoller) {
	poller := &fakePoller{snap: testSnapshot()}
	m := NewModel(ModelOptions{Poller: poller})
	return m, poller
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := testModel()
	if m.activeTab != TabOverview {
		t.Errorf("activeTab = %v, want TabOverview", m.activeTab)
	}
	if m.interval.Seconds() != 2 {
		t.Errorf("interval = %v, want 2s", m.interval)
	}
	if m.warnAt != 70 || m.critAt != 90 {
		t.Errorf("thresholds = %g/%g, want 70/90", m.warnAt, m.critAt)
	}
}

func TestTabSwitching(t *testing.T) {
	m, _ := testModel()

	next := tea.KeyMsg{Type: tea.KeyTab}
	updated, _ := m.Update(next)
	m = updated.(Model)
	if m.activeTab != TabCPU {
		t.Errorf("after tab: activeTab = %v, want TabCPU", m.activeTab)
	}

	// Wrap backwards from the first tab.
	m.activeTab = TabOverview
	prev := tea.KeyMsg{Type: tea.KeyShiftTab}
	updated, _ = m.Update(prev)
	m = updated.(Model)
	if m.activeTab != TabHardware {
		t.Errorf("after shift+tab: activeTab = %v, want TabHardware", m.activeTab)
	}
}

func TestNumberKeysJumpToTabs(t *testing.T) {
	m, _ := testModel()

	tests := []struct {
		digit string
		want  Tab
	}{
		{"1", TabOverview},
		{"2", TabCPU},
		{"3", TabGPU},
		{"4", TabNetwork},
		{"5", TabHardware},
	}

	for _, tt := range tests {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.digit)}
		updated, _ := m.Update(msg)
		m = updated.(Model)
		if m.activeTab != tt.want {
			t.Errorf("key %s: activeTab = %v, want %v", tt.digit, m.activeTab, tt.want)
		}
	}
}

func TestSnapshotMsgUpdatesModel(t *testing.T) {
	m, _ := testModel()
	m.inFlight = true

	updated, _ := m.Update(snapshotMsg(testSnapshot()))
	m = updated.(Model)

	if m.inFlight {
		t.Error("inFlight should clear after a snapshot arrives")
	}
	if m.snap == nil {
		t.Fatal("snapshot not stored")
	}
	if m.lastUpdated.IsZero() {
		t.Error("lastUpdated should be set")
	}
}

func TestTickSkippedWhileInFlight(t *testing.T) {
	m, _ := testModel()
	m.inFlight = true

	updated, cmd := m.Update(tickMsg{})
	m = updated.(Model)

	if !m.inFlight {
		t.Error("inFlight should stay set when the tick is skipped")
	}
	// The tick must still reschedule so polling resumes later.
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
}

func TestTickSkippedWhilePaused(t *testing.T) {
	m, poller := testModel()
	m.paused = true

	updated, _ := m.Update(tickMsg{})
	m = updated.(Model)

	if m.inFlight {
		t.Error("paused tick should not start a poll")
	}
	if poller.polls != 0 {
		t.Errorf("polls = %d, want 0 while paused", poller.polls)
	}
}

func TestTickStartsPoll(t *testing.T) {
	m, poller := testModel()

	updated, cmd := m.Update(tickMsg{})
	m = updated.(Model)

	if !m.inFlight {
		t.Error("tick should mark a poll in flight")
	}
	if cmd == nil {
		t.Fatal("expected poll and tick commands")
	}

	// Drain the batched commands; one of them runs the poll.
	drainCmds(cmd)
	if poller.polls != 1 {
		t.Errorf("polls = %d, want 1", poller.polls)
	}
}

// drainCmds executes a command tree, following batches one level deep.
func drainCmds(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}
}

func TestPauseToggle(t *testing.T) {
	m, _ := testModel()

	pause := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}
	updated, _ := m.Update(pause)
	m = updated.(Model)
	if !m.paused {
		t.Error("p should pause polling")
	}
	if m.statusMsg != "paused" {
		t.Errorf("statusMsg = %q, want paused", m.statusMsg)
	}

	updated, _ = m.Update(pause)
	m = updated.(Model)
	if m.paused {
		t.Error("p again should resume polling")
	}
}

func TestRefreshInvalidatesCaches(t *testing.T) {
	m, poller := testModel()

	refresh := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}
	updated, cmd := m.Update(refresh)
	m = updated.(Model)

	if poller.refreshes != 1 {
		t.Errorf("refreshes = %d, want 1", poller.refreshes)
	}
	if !m.inFlight {
		t.Error("refresh should start an immediate poll")
	}
	if cmd == nil {
		t.Error("expected a poll command")
	}
}

func TestRefreshWhileInFlight(t *testing.T) {
	m, poller := testModel()
	m.inFlight = true

	refresh := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}
	updated, cmd := m.Update(refresh)
	m = updated.(Model)

	// Caches are still invalidated but no second poll starts.
	if poller.refreshes != 1 {
		t.Errorf("refreshes = %d, want 1", poller.refreshes)
	}
	if cmd != nil {
		t.Error("no poll should start while one is in flight")
	}
}

func TestMonitorKeyLaunches(t *testing.T) {
	poller := &fakePoller{snap: testSnapshot()}
	launch := &fakeLauncher{result: launcher.Result{Launched: true, Message: "launched btop"}}
	m := NewModel(ModelOptions{Poller: poller, Launcher: launch})

	open := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")}
	updated, cmd := m.Update(open)
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected a launch command")
	}

	msg := cmd()
	updated, _ = m.Update(msg)
	m = updated.(Model)

	if launch.calls != 1 {
		t.Errorf("launch calls = %d, want 1", launch.calls)
	}
	if m.statusMsg != "launched btop" {
		t.Errorf("statusMsg = %q, want launch message", m.statusMsg)
	}
}

func TestViewBeforeReady(t *testing.T) {
	m, _ := testModel()
	if got := m.View(); !strings.Contains(got, "Initializing") {
		t.Errorf("View before resize = %q", got)
	}
}

func TestViewRendersTabs(t *testing.T) {
	m, _ := testModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	updated, _ = m.Update(snapshotMsg(testSnapshot()))
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"Overview", "CPU", "GPU", "Network", "Hardware", "workbench"} {
		if !strings.Contains(view, want) {
			t.Errorf("overview view missing %q", want)
		}
	}

	m.activeTab = TabHardware
	view = m.View()
	for _, want := range []string{"ASUS", "PRIME Z390", "x86_64"} {
		if !strings.Contains(view, want) {
			t.Errorf("hardware view missing %q", want)
		}
	}

	m.activeTab = TabGPU
	view = m.View()
	if !strings.Contains(view, "simulated") {
		t.Error("GPU view should label values as simulated")
	}

	m.activeTab = TabNetwork
	view = m.View()
	if !strings.Contains(view, "HomeNet") {
		t.Error("network view missing connection label")
	}
}

func TestViewWaitingForFirstSample(t *testing.T) {
	m, _ := testModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = updated.(Model)

	if view := m.View(); !strings.Contains(view, "Waiting for first sample") {
		t.Errorf("view without data = %q", view)
	}
}

func TestViewShowsWarnings(t *testing.T) {
	m, _ := testModel()

	snap := testSnapshot()
	snap.Warnings = []string{"gpu: lspci missing"}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	updated, _ = m.Update(snapshotMsg(snap))
	m = updated.(Model)

	if view := m.View(); !strings.Contains(view, "degraded") {
		t.Error("overview should surface snapshot warnings")
	}
}
