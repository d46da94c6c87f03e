// Package snapshot implements the sysdeck polling pipeline: the CPU usage
// estimator, the rolling history buffers, the TTL cache for expensive
// shell-backed lookups, and the assembler that combines everything into
// one flat snapshot per poll.
package snapshot

import "time"

// CPUStatus holds processor state for one poll.
type CPUStatus struct {
	// UsagePercent is computed by differential tick accounting, 0-100.
	UsagePercent float64 `json:"usage_percent"`
	Model        string  `json:"model"`
	Cores        int     `json:"cores"`
	SpeedMhz     float64 `json:"speed_mhz"`

	// EstimatedTemperatureC is SYNTHETIC, derived from usage. No thermal
	// sensor is read.
	EstimatedTemperatureC float64 `json:"estimated_temperature_c"`
}

// GPUStatus holds display adapter state for one poll.
//
// SimulatedTemperatureC and SimulatedUsagePercent are fabricated values;
// no GPU utilization sensor is read.
type GPUStatus struct {
	Name                  string  `json:"name"`
	Memory                string  `json:"memory"`
	SimulatedTemperatureC float64 `json:"simulated_temperature_c"`
	SimulatedUsagePercent float64 `json:"simulated_usage_percent"`
}

// MemoryStatus holds physical memory state for one poll.
type MemoryStatus struct {
	UsagePercent float64 `json:"usage_percent"`
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	FreeGB       float64 `json:"free_gb"`
}

// StorageStatus holds primary volume usage for one poll.
type StorageStatus struct {
	Volume       string  `json:"volume"`
	UsagePercent float64 `json:"usage_percent"`
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	FreeGB       float64 `json:"free_gb"`
}

// NetworkStatus holds the active connection for one poll.
//
// SimulatedDownloadMbps and SimulatedUploadMbps are fabricated values; no
// throughput measurement is taken.
type NetworkStatus struct {
	Label                 string  `json:"label"`
	SignalPercent         int     `json:"signal_percent"`
	Type                  string  `json:"type"`
	Connected             bool    `json:"connected"`
	SimulatedDownloadMbps float64 `json:"simulated_download_mbps"`
	SimulatedUploadMbps   float64 `json:"simulated_upload_mbps"`
}

// HistoryData carries copies of the rolling sample buffers, most recent
// last, at most MaxSamples entries each.
type HistoryData struct {
	CPU    []float64 `json:"cpu"`
	Memory []float64 `json:"memory"`
}

// MemorySlotDetail describes one populated physical memory module.
type MemorySlotDetail struct {
	Size  string `json:"size"`
	Speed string `json:"speed"`
	Type  string `json:"type"`
}

// HardwareData holds slow-changing hardware inventory.
type HardwareData struct {
	CPUArchitecture string             `json:"cpu_architecture"`
	CPUCache        string             `json:"cpu_cache"`
	CPUClock        string             `json:"cpu_clock"`
	MemorySlots     []MemorySlotDetail `json:"memory_slots"`
	BoardVendor     string             `json:"board_vendor"`
	BoardProduct    string             `json:"board_product"`
}

// HostData holds host identification and load.
type HostData struct {
	Hostname      string  `json:"hostname"`
	Platform      string  `json:"platform"`
	Arch          string  `json:"arch"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds uint64  `json:"uptime_seconds"`
	OSType        string  `json:"os_type"`
	OSRelease     string  `json:"os_release"`
	Load1         float64 `json:"load_1"`
	Load5         float64 `json:"load_5"`
	Load15        float64 `json:"load_15"`
}

// Snapshot is the flat response object assembled once per poll. Fields
// are independent: a failed sub-fetch leaves its category at documented
// defaults (listed in Warnings) without affecting the others.
type Snapshot struct {
	Timestamp time.Time     `json:"timestamp"`
	CPU       CPUStatus     `json:"cpu"`
	GPU       GPUStatus     `json:"gpu"`
	Memory    MemoryStatus  `json:"memory"`
	Storage   StorageStatus `json:"storage"`
	Network   NetworkStatus `json:"network"`
	History   HistoryData   `json:"history"`
	Hardware  HardwareData  `json:"hardware"`
	Host      HostData      `json:"host"`

	// Warnings lists categories that degraded to defaults this poll.
	Warnings []string `json:"warnings,omitempty"`
}
