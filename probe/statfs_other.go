//go:build !linux

package probe

import "fmt"

// statfsUsage is only implemented on Linux; elsewhere gopsutil is the
// sole disk source.
func statfsUsage(volume string) (DiskUsage, error) {
	return DiskUsage{}, fmt.Errorf("probe: statfs unsupported on this platform")
}
