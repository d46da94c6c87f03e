//go:build linux

package probe

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// statfsUsage reads filesystem usage directly via statfs(2). Used as a
// fallback when gopsutil's mount-table based lookup fails.
func statfsUsage(volume string) (DiskUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(volume, &st); err != nil {
		return DiskUsage{}, fmt.Errorf("probe: statfs %s: %w", volume, err)
	}

	bsize := uint64(st.Bsize)
	total := st.Blocks * bsize
	free := st.Bavail * bsize
	if total == 0 {
		return DiskUsage{}, fmt.Errorf("probe: statfs %s: zero-size filesystem", volume)
	}

	used := total - free
	return DiskUsage{
		TotalBytes:  total,
		FreeBytes:   free,
		UsedBytes:   used,
		UsedPercent: 100 * float64(used) / float64(total),
	}, nil
}
