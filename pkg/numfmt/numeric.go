package numfmt

import (
	"math"
	"strconv"
)

// Number represents numeric types accepted by the generic helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer represents integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float represents floating-point types.
type Float interface {
	~float32 | ~float64
}

// Clamp constrains value to [lo, hi].
func Clamp[T Number](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// IsEven reports whether n is divisible by two.
func IsEven[T Integer](n T) bool {
	return n%2 == 0
}

// IsInteger reports whether v has no fractional part.
func IsInteger[T Float](v T) bool {
	return math.Round(float64(v)) == float64(v)
}

// RoundTo rounds v half away from zero to the given number of decimal places.
// Negative places are treated as zero.
func RoundTo[T Float](v T, places int) T {
	places = max(places, 0)
	multiplier := math.Pow(10, float64(places))
	return T(math.Round(float64(v)*multiplier) / multiplier)
}

// Clean renders v without a decimal point when it is a whole number and
// rounded to two decimal places otherwise.
//
// A value that only becomes whole through rounding keeps one fractional
// digit: Clean(2.999) is "3.0", which tells it apart from Clean(3).
func Clean(v float64) string {
	if math.Mod(v, 1) == 0 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	rounded := RoundTo(v, 2)
	if IsInteger(rounded) {
		return strconv.FormatFloat(rounded, 'f', 1, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
