// Package probe provides the OS telemetry capability interface for sysdeck.
// The real implementation combines gopsutil readings with shell-backed
// queries; a pure in-memory fake allows the polling pipeline to be tested
// without any live OS dependency.
package probe

import "context"

// CoreTicks holds cumulative CPU time counters for a single core, in
// centisecond ticks since boot. On a live system both counters are
// monotonically non-decreasing; a decrease indicates a counter reset.
type CoreTicks struct {
	Idle  uint64
	Total uint64
}

// MemoryCounters holds physical memory counters in bytes.
type MemoryCounters struct {
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}

// DiskUsage holds filesystem usage for a single volume.
type DiskUsage struct {
	TotalBytes  uint64
	FreeBytes   uint64
	UsedBytes   uint64
	UsedPercent float64
}

// GPUInfo describes the primary display adapter.
//
// TemperatureC and UsagePercent are SYNTHETIC: no GPU sensor is read.
// They are fabricated for display purposes only and must be presented as
// simulated values.
type GPUInfo struct {
	Name         string
	Memory       string
	TemperatureC float64
	UsagePercent float64
	Simulated    bool
}

// NetworkInfo describes the active network connection.
//
// DownloadMbps and UploadMbps are SYNTHETIC: no throughput measurement is
// taken. They are fabricated for display purposes only.
type NetworkInfo struct {
	// Label is the SSID for wireless connections, otherwise the
	// interface name or a generic connection label.
	Label         string
	SignalPercent int
	Connected     bool
	// Type is "wifi", "ethernet", or "none".
	Type          string
	DownloadMbps  float64
	UploadMbps    float64
	Simulated     bool
}

// MemorySlot describes a single populated physical memory module.
type MemorySlot struct {
	Size  string
	Speed string
	Type  string
}

// HardwareDetail holds slow-changing hardware inventory data gathered from
// shell-backed queries. Every field degrades independently to a default
// when its source is unavailable.
type HardwareDetail struct {
	CPUArchitecture string
	CPUCache        string
	CPUClock        string
	MemorySlots     []MemorySlot
	BoardVendor     string
	BoardProduct    string
}

// HostMeta holds fast, always-available host identification and load data.
type HostMeta struct {
	Hostname      string
	Platform      string
	Arch          string
	UptimeSeconds uint64
	OSType        string
	OSRelease     string
	Load1         float64
	Load5         float64
	Load15        float64
	CPUModel      string
	CPUCores      int
	CPUMhz        float64
}

// Probe is the capability interface between the snapshot pipeline and the
// operating system. All methods are fallible; shell-backed methods
// (GPUInfo, NetworkInfo, HardwareDetail) carry their own timeout and may
// be slow. Callers substitute documented defaults on error rather than
// propagating failures.
type Probe interface {
	// CPUCoreTicks returns cumulative idle/total tick counters per core.
	CPUCoreTicks(ctx context.Context) ([]CoreTicks, error)

	// MemoryCounters returns current physical memory counters.
	MemoryCounters(ctx context.Context) (MemoryCounters, error)

	// DiskUsage returns usage for the given volume (e.g. "/").
	DiskUsage(ctx context.Context, volume string) (DiskUsage, error)

	// GPUInfo returns display adapter details. Shell-backed and slow;
	// callers are expected to cache the result.
	GPUInfo(ctx context.Context) (GPUInfo, error)

	// NetworkInfo returns the active connection. Shell-backed and slow;
	// callers are expected to cache the result. On shell failure the
	// implementation falls back to OS interface enumeration.
	NetworkInfo(ctx context.Context) (NetworkInfo, error)

	// HardwareDetail returns CPU/memory/motherboard inventory data.
	HardwareDetail(ctx context.Context) (HardwareDetail, error)

	// HostMeta returns host identification, uptime, and load averages.
	HostMeta(ctx context.Context) (HostMeta, error)
}

// Default values substituted when a telemetry source is unavailable.
var (
	DefaultGPUInfo = GPUInfo{
		Name:      "Unknown GPU",
		Memory:    "Unknown",
		Simulated: true,
	}

	DefaultNetworkInfo = NetworkInfo{
		Label:     "Disconnected",
		Type:      "none",
		Simulated: true,
	}

	DefaultHardwareDetail = HardwareDetail{
		CPUArchitecture: "unknown",
		CPUCache:        "Unknown",
		CPUClock:        "Unknown",
		BoardVendor:     "Unknown",
		BoardProduct:    "Unknown",
	}
)
