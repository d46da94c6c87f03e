package probe

import "context"

// Fake is a pure in-memory Probe for tests. Each method returns the
// configured value, or the override function's result when one is set.
// The zero value is usable and returns zero-valued telemetry.
type Fake struct {
	Ticks    []CoreTicks
	Memory   MemoryCounters
	Disk     DiskUsage
	GPU      GPUInfo
	Network  NetworkInfo
	Hardware HardwareDetail
	Host     HostMeta

	TicksErr    error
	MemoryErr   error
	DiskErr     error
	GPUErr      error
	NetworkErr  error
	HardwareErr error
	HostErr     error

	// TicksFunc, when set, takes precedence over Ticks/TicksErr.
	// Useful for feeding an estimator a sequence of readings.
	TicksFunc func() ([]CoreTicks, error)

	// Call counters for verifying caching behavior.
	GPUCalls     int
	NetworkCalls int
	DiskCalls    int
}

func (f *Fake) CPUCoreTicks(ctx context.Context) ([]CoreTicks, error) {
	if f.TicksFunc != nil {
		return f.TicksFunc()
	}
	return f.Ticks, f.TicksErr
}

func (f *Fake) MemoryCounters(ctx context.Context) (MemoryCounters, error) {
	return f.Memory, f.MemoryErr
}

func (f *Fake) DiskUsage(ctx context.Context, volume string) (DiskUsage, error) {
	f.DiskCalls++
	return f.Disk, f.DiskErr
}

func (f *Fake) GPUInfo(ctx context.Context) (GPUInfo, error) {
	f.GPUCalls++
	return f.GPU, f.GPUErr
}

func (f *Fake) NetworkInfo(ctx context.Context) (NetworkInfo, error) {
	f.NetworkCalls++
	return f.Network, f.NetworkErr
}

func (f *Fake) HardwareDetail(ctx context.Context) (HardwareDetail, error) {
	return f.Hardware, f.HardwareErr
}

func (f *Fake) HostMeta(ctx context.Context) (HostMeta, error) {
	return f.Host, f.HostErr
}

// Compile-time interface compliance check.
var _ Probe = (*Fake)(nil)
