package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/exec"
	"runtime"
	"time"

	pscpu "github.com/shirou/gopsutil/v4/cpu"
	psdisk "github.com/shirou/gopsutil/v4/disk"
	pshost "github.com/shirou/gopsutil/v4/host"
	psload "github.com/shirou/gopsutil/v4/load"
	psmem "github.com/shirou/gopsutil/v4/mem"
)

const (
	// defaultTimeout bounds every shell-backed query. A timeout is a
	// recoverable failure, never fatal to a poll.
	defaultTimeout = 5 * time.Second

	// ticksPerSecond converts gopsutil's second-based CPU times into
	// centisecond ticks (USER_HZ on Linux).
	ticksPerSecond = 100
)

// System is the real Probe implementation. Fast counters come from
// gopsutil; GPU, network, and hardware inventory come from shell commands
// executed with an explicit timeout. Command execution and file reads are
// injectable for testing.
type System struct {
	logger  *slog.Logger
	timeout time.Duration
	goos    string

	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
	lookPath    func(string) (string, error)
	readFile    func(string) ([]byte, error)

	// rng drives the simulated GPU and network figures. Only ever
	// touched by the single poll driver.
	rng *rand.Rand
}

// NewSystem creates a System probe. If logger is nil, a no-op logger is
// used. A timeout of 0 selects the default of 5 seconds.
func NewSystem(timeout time.Duration, logger *slog.Logger) *System {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &System{
		logger:      logger,
		timeout:     timeout,
		goos:        runtime.GOOS,
		execCommand: exec.CommandContext,
		lookPath:    exec.LookPath,
		readFile:    os.ReadFile,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CPUCoreTicks returns cumulative idle/total tick counters per core.
func (s *System) CPUCoreTicks(ctx context.Context) ([]CoreTicks, error) {
	stats, err := pscpu.TimesWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("probe: cpu times: %w", err)
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("probe: cpu times: no cores reported")
	}

	ticks := make([]CoreTicks, len(stats))
	for i, st := range stats {
		busy := st.User + st.System + st.Nice + st.Iowait + st.Irq + st.Softirq + st.Steal
		ticks[i] = CoreTicks{
			Idle:  uint64(st.Idle * ticksPerSecond),
			Total: uint64((busy + st.Idle) * ticksPerSecond),
		}
	}
	return ticks, nil
}

// MemoryCounters returns current physical memory counters.
func (s *System) MemoryCounters(ctx context.Context) (MemoryCounters, error) {
	vm, err := psmem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryCounters{}, fmt.Errorf("probe: virtual memory: %w", err)
	}
	return MemoryCounters{
		TotalBytes: vm.Total,
		FreeBytes:  vm.Available,
		UsedBytes:  vm.Total - vm.Available,
	}, nil
}

// DiskUsage returns usage for the given volume.
func (s *System) DiskUsage(ctx context.Context, volume string) (DiskUsage, error) {
	if volume == "" {
		volume = "/"
	}
	usage, err := psdisk.UsageWithContext(ctx, volume)
	if err != nil {
		if fallback, ferr := statfsUsage(volume); ferr == nil {
			s.logger.Debug("probe: disk usage via statfs fallback", "volume", volume)
			return fallback, nil
		}
		return DiskUsage{}, fmt.Errorf("probe: disk usage %s: %w", volume, err)
	}
	return DiskUsage{
		TotalBytes:  usage.Total,
		FreeBytes:   usage.Free,
		UsedBytes:   usage.Used,
		UsedPercent: usage.UsedPercent,
	}, nil
}

// HostMeta returns host identification, uptime, and load averages. Load
// average failures degrade to zeros rather than failing the whole call.
func (s *System) HostMeta(ctx context.Context) (HostMeta, error) {
	info, err := pshost.InfoWithContext(ctx)
	if err != nil {
		return HostMeta{}, fmt.Errorf("probe: host info: %w", err)
	}

	meta := HostMeta{
		Hostname:      info.Hostname,
		Platform:      info.Platform,
		Arch:          info.KernelArch,
		UptimeSeconds: info.Uptime,
		OSType:        info.OS,
		OSRelease:     info.PlatformVersion,
	}
	if meta.Arch == "" {
		meta.Arch = runtime.GOARCH
	}

	if avg, err := psload.AvgWithContext(ctx); err == nil {
		meta.Load1 = avg.Load1
		meta.Load5 = avg.Load5
		meta.Load15 = avg.Load15
	} else {
		s.logger.Debug("probe: load average unavailable", "error", err)
	}

	if infos, err := pscpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		meta.CPUModel = infos[0].ModelName
		meta.CPUMhz = infos[0].Mhz
	} else if err != nil {
		s.logger.Debug("probe: cpu info unavailable", "error", err)
	}

	if count, err := pscpu.CountsWithContext(ctx, true); err == nil {
		meta.CPUCores = count
	}

	return meta, nil
}

// runCommand executes a shell-backed query bounded by the probe timeout.
// Returns the command's stdout, or an error classifying timeout versus
// execution failure.
func (s *System) runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := s.lookPath(name)
	if err != nil {
		return nil, fmt.Errorf("probe: %s not found: %w", name, err)
	}

	execCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.execCommand(execCtx, path, args...).Output()
	if err != nil {
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("probe: %s timed out after %s", name, s.timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("probe: %s exited %d", name, exitErr.ExitCode())
		}
		return nil, fmt.Errorf("probe: %s: %w", name, err)
	}
	return out, nil
}

// simulatedPercent fabricates a value in [low, high]. Used for the
// synthetic GPU usage, GPU temperature, and network speed figures.
func (s *System) simulatedPercent(low, high float64) float64 {
	if high <= low {
		return low
	}
	return low + s.rng.Float64()*(high-low)
}

// Compile-time interface compliance check.
var _ Probe = (*System)(nil)
