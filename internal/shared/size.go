package shared

import "fmt"

var sizeSuffixes = []string{"B", "kB", "MB", "GB", "TB", "PB"}

// FormatSize formats a byte count as a human readable string, dividing by
// 1024 through B, kB, MB, GB, TB and PB with two decimal places.
func FormatSize(size int64) string {
	value := float64(size)
	for _, suffix := range sizeSuffixes {
		if value < 1024.0 {
			return fmt.Sprintf("%.2f %s", value, suffix)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.2f %s", value, "EB")
}
