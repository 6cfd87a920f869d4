package strutil

import (
	"net/url"
	"strconv"

	"github.com/dmitrymomot/valuekit/pkg/optional"
)

// ToInt parses s as a base-10 integer.
func ToInt(s string) optional.Option[int] {
	n, err := strconv.Atoi(s)
	return optional.Of(n, err == nil)
}

// ToFloat parses s as a 64-bit floating point number.
func ToFloat(s string) optional.Option[float64] {
	f, err := strconv.ParseFloat(s, 64)
	return optional.Of(f, err == nil)
}

// ToBool converts "True", "true", "yes", "1" to true and "False", "false",
// "no", "0" to false. Anything else yields None.
func ToBool(s string) optional.Option[bool] {
	switch s {
	case "True", "true", "yes", "1":
		return optional.Some(true)
	case "False", "false", "no", "0":
		return optional.Some(false)
	default:
		return optional.None[bool]()
	}
}

// ToIntFlag is ToBool mapped to 1 and 0.
func ToIntFlag(s string) optional.Option[int] {
	return optional.Map(ToBool(s), func(b bool) int {
		if b {
			return 1
		}
		return 0
	})
}

// ToURL parses s as a URL reference. Empty and unparsable input yields None.
func ToURL(s string) optional.Option[*url.URL] {
	if s == "" {
		return optional.None[*url.URL]()
	}
	u, err := url.Parse(s)
	return optional.Of(u, err == nil)
}
