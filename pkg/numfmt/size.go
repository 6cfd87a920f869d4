package numfmt

import (
	"fmt"
	"strconv"
)

const unit = 1024

// Kilobytes converts a byte count to binary kilobytes.
func Kilobytes(bytes int64) float64 {
	return float64(bytes) / unit
}

// Megabytes is Kilobytes divided by 1024.
func Megabytes(bytes int64) float64 {
	return Kilobytes(bytes) / unit
}

// Gigabytes is Megabytes divided by 1024.
func Gigabytes(bytes int64) float64 {
	return Megabytes(bytes) / unit
}

// MillisToSeconds converts milliseconds to fractional seconds.
func MillisToSeconds(ms int64) float64 {
	return float64(ms) / 1000
}

// HumanReadableSize renders a byte count with the largest binary unit that
// keeps the value at or above one: "512 bytes", "2.00 kb", "1.50 mb",
// "3.00 gb". Gigabytes is the largest unit. Negative counts are rendered as
// plain bytes.
func HumanReadableSize(bytes int64) string {
	switch {
	case bytes < unit:
		return strconv.FormatInt(bytes, 10) + " bytes"
	case bytes < unit*unit:
		return fmt.Sprintf("%.2f kb", Kilobytes(bytes))
	case bytes < unit*unit*unit:
		return fmt.Sprintf("%.2f mb", Megabytes(bytes))
	default:
		return fmt.Sprintf("%.2f gb", Gigabytes(bytes))
	}
}
