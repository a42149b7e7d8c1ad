package common

import (
	"fmt"
	"math"
)

// FormatByteSize renders a byte count as a human-readable size with a binary
// unit suffix, e.g. 4096 -> "4.0 KiB".
func FormatByteSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// SafeInt64ToInt safely converts int64 to int with bounds checking
func SafeInt64ToInt(value int64) (int, error) {
	if value < math.MinInt || value > math.MaxInt {
		return 0, fmt.Errorf("value %d out of range for int", value)
	}
	return int(value), nil
}
