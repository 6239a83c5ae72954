package domain

import "fmt"

// CompactCount renders counts for chart axes: 999, 1.0k, 2.5M.
func CompactCount(v int64) string {
	if v < 0 {
		return "-" + CompactCount(-v)
	}

	if v < 1_000 {
		return fmt.Sprintf("%d", v)
	}

	if v < 1_000_000 {
		return fmt.Sprintf("%.1fk", float64(v)/1_000)
	}

	return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
}
