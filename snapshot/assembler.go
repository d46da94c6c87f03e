package snapshot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/sysdeck/internal/format"
	"gitlab.com/tinyland/lab/sysdeck/probe"
)

// Options configures an Assembler.
type Options struct {
	// Volume is the filesystem path whose usage is reported. Defaults to "/".
	Volume string

	// CacheTTL bounds the staleness of shell-backed GPU and network
	// lookups. Defaults to DefaultTTL.
	CacheTTL time.Duration

	Logger *slog.Logger
}

// Assembler runs one poll cycle at a time: it reads every telemetry
// category from the probe, feeds the estimator and history buffers, and
// produces a flat Snapshot. Sub-fetch failures degrade that category to
// its documented default and are recorded as warnings, never returned as
// errors.
//
// GPU and network lookups go through a TTL cache because they shell out;
// disk and memory are cheap syscalls and stay fresh every poll.
type Assembler struct {
	probe  probe.Probe
	logger *slog.Logger

	mu         sync.Mutex
	estimator  *Estimator
	cache      *TTLCache
	cpuHistory *History
	memHistory *History

	volume string
	ttl    time.Duration
	now    func() time.Time
}

// NewAssembler returns an assembler polling the given probe.
func NewAssembler(p probe.Probe, opts Options) *Assembler {
	if opts.Volume == "" {
		opts.Volume = "/"
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultTTL
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Assembler{
		probe:      p,
		logger:     opts.Logger,
		estimator:  NewEstimator(),
		cache:      NewTTLCache(),
		cpuHistory: NewHistory(),
		memHistory: NewHistory(),
		volume:     opts.Volume,
		ttl:        opts.CacheTTL,
		now:        time.Now,
	}
}

// Poll reads all telemetry categories and assembles a snapshot. It never
// fails: a category whose fetch errors is reported at its default value
// and named in Warnings.
func (a *Assembler) Poll(ctx context.Context) *Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := &Snapshot{Timestamp: a.now()}

	a.fillCPU(ctx, snap)
	a.fillMemory(ctx, snap)
	a.fillGPU(ctx, snap)
	a.fillNetwork(ctx, snap)
	a.fillStorage(ctx, snap)
	a.fillHardware(ctx, snap)
	a.fillHost(ctx, snap)

	a.cpuHistory.Push(snap.CPU.UsagePercent)
	a.memHistory.Push(snap.Memory.UsagePercent)
	snap.History = HistoryData{
		CPU:    a.cpuHistory.Values(),
		Memory: a.memHistory.Values(),
	}

	return snap
}

// RefreshCaches drops the cached GPU and network entries so the next poll
// fetches live data. Bound to the manual refresh key in the dashboard.
func (a *Assembler) RefreshCaches() {
	a.cache.InvalidateAll()
}

func (a *Assembler) fillCPU(ctx context.Context, snap *Snapshot) {
	ticks, err := a.probe.CPUCoreTicks(ctx)
	if err != nil {
		a.warn(snap, "cpu", err)
		snap.CPU.UsagePercent = 0
	} else {
		snap.CPU.UsagePercent = a.estimator.Sample(ticks)
	}

	// No thermal sensor is read; the temperature is derived from usage
	// so the gauge has something plausible to show.
	snap.CPU.EstimatedTemperatureC = 35 + snap.CPU.UsagePercent*0.35
}

func (a *Assembler) fillMemory(ctx context.Context, snap *Snapshot) {
	counters, err := a.probe.MemoryCounters(ctx)
	if err != nil {
		a.warn(snap, "memory", err)
		return
	}

	snap.Memory.TotalGB = format.BytesToGB(counters.TotalBytes)
	snap.Memory.UsedGB = format.BytesToGB(counters.UsedBytes)
	snap.Memory.FreeGB = format.BytesToGB(counters.FreeBytes)
	if counters.TotalBytes > 0 {
		pct := 100 * float64(counters.UsedBytes) / float64(counters.TotalBytes)
		snap.Memory.UsagePercent = clampPercent(pct)
	}
}

func (a *Assembler) fillGPU(ctx context.Context, snap *Snapshot) {
	info, err := GetOrRefresh(a.cache, CategoryGPU, a.ttl, func() (probe.GPUInfo, error) {
		return a.probe.GPUInfo(ctx)
	})
	if err != nil {
		a.warn(snap, "gpu", err)
		info = probe.DefaultGPUInfo
	}

	snap.GPU = GPUStatus{
		Name:                  info.Name,
		Memory:                info.Memory,
		SimulatedTemperatureC: info.TemperatureC,
		SimulatedUsagePercent: info.UsagePercent,
	}
}

func (a *Assembler) fillNetwork(ctx context.Context, snap *Snapshot) {
	info, err := GetOrRefresh(a.cache, CategoryNetwork, a.ttl, func() (probe.NetworkInfo, error) {
		return a.probe.NetworkInfo(ctx)
	})
	if err != nil {
		a.warn(snap, "network", err)
		info = probe.DefaultNetworkInfo
	}

	snap.Network = NetworkStatus{
		Label:                 info.Label,
		SignalPercent:         info.SignalPercent,
		Type:                  info.Type,
		Connected:             info.Connected,
		SimulatedDownloadMbps: info.DownloadMbps,
		SimulatedUploadMbps:   info.UploadMbps,
	}
}

func (a *Assembler) fillStorage(ctx context.Context, snap *Snapshot) {
	snap.Storage.Volume = a.volume

	// Deliberately uncached: statfs is cheap and disk numbers should
	// track frees and writes immediately.
	usage, err := a.probe.DiskUsage(ctx, a.volume)
	if err != nil {
		a.warn(snap, "storage", err)
		return
	}

	snap.Storage.TotalGB = format.BytesToGB(usage.TotalBytes)
	snap.Storage.UsedGB = format.BytesToGB(usage.UsedBytes)
	snap.Storage.FreeGB = format.BytesToGB(usage.FreeBytes)
	snap.Storage.UsagePercent = clampPercent(usage.UsedPercent)
}

func (a *Assembler) fillHardware(ctx context.Context, snap *Snapshot) {
	detail, err := a.probe.HardwareDetail(ctx)
	if err != nil {
		a.warn(snap, "hardware", err)
		detail = probe.DefaultHardwareDetail
	}

	slots := make([]MemorySlotDetail, 0, len(detail.MemorySlots))
	for _, s := range detail.MemorySlots {
		slots = append(slots, MemorySlotDetail(s))
	}
	snap.Hardware = HardwareData{
		CPUArchitecture: detail.CPUArchitecture,
		CPUCache:        detail.CPUCache,
		CPUClock:        detail.CPUClock,
		MemorySlots:     slots,
		BoardVendor:     detail.BoardVendor,
		BoardProduct:    detail.BoardProduct,
	}
}

func (a *Assembler) fillHost(ctx context.Context, snap *Snapshot) {
	meta, err := a.probe.HostMeta(ctx)
	if err != nil {
		a.warn(snap, "host", err)
		return
	}

	snap.Host = HostData{
		Hostname:      meta.Hostname,
		Platform:      meta.Platform,
		Arch:          meta.Arch,
		Uptime:        format.FormatUptime(meta.UptimeSeconds),
		UptimeSeconds: meta.UptimeSeconds,
		OSType:        meta.OSType,
		OSRelease:     meta.OSRelease,
		Load1:         meta.Load1,
		Load5:         meta.Load5,
		Load15:        meta.Load15,
	}
	snap.CPU.Model = meta.CPUModel
	snap.CPU.Cores = meta.CPUCores
	snap.CPU.SpeedMhz = meta.CPUMhz
}

func (a *Assembler) warn(snap *Snapshot, category string, err error) {
	a.logger.Warn("telemetry fetch degraded", "category", category, "error", err)
	snap.Warnings = append(snap.Warnings, fmt.Sprintf("%s: %v", category, err))
}
