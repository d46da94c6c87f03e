package format

import "fmt"

const bytesPerGB = 1 << 30

// BytesToGB converts a byte count to gibibytes, rounded to one decimal.
func BytesToGB(b uint64) float64 {
	gb := float64(b) / bytesPerGB
	return float64(int64(gb*10+0.5)) / 10
}

// Bytes renders a byte count with a binary unit suffix, e.g. "15.6 GB".
func Bytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}

	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
