// Package util holds small formatting helpers shared by services.
package util

import (
	"fmt"
	"strconv"
)

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders n with binary (1024) multiples, e.g. "5.0 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	v := float64(n)
	unit := -1
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", v, byteUnits[unit])
}
