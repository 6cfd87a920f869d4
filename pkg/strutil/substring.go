package strutil

import (
	"github.com/rivo/uniseg"

	"github.com/dmitrymomot/valuekit/pkg/optional"
)

// Substring returns the characters of s between the inclusive offsets from and
// to. An absent from means the start of s, an absent to means its end.
//
// The result is "" when from is at or past the end of s, when to is negative,
// or when to is before from. A negative from is clamped to 0 and a to at or
// past the last character is clamped to the end of s.
func Substring(s string, from, to optional.Option[int]) string {
	start, hasFrom := from.Get()
	end, hasTo := to.Get()

	bounds := graphemeBounds(s)
	length := len(bounds) - 1

	if hasFrom && start >= length {
		return ""
	}
	if hasTo && end < 0 {
		return ""
	}
	if hasFrom && hasTo && end-start < 0 {
		return ""
	}

	lo := 0
	if hasFrom && start >= 0 {
		lo = start
	}

	hi := length
	if hasTo && end >= 0 && end < length {
		hi = end + 1
	}

	return s[bounds[lo]:bounds[hi]]
}

// Length returns the number of characters (grapheme clusters) in s.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// graphemeBounds returns the byte offset of every character start in s
// followed by len(s).
func graphemeBounds(s string) []int {
	bounds := make([]int, 0, len(s)+1)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		start, _ := g.Positions()
		bounds = append(bounds, start)
	}
	return append(bounds, len(s))
}
