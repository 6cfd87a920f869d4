package strutil

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsNotEmpty reports whether s has at least one byte.
func IsNotEmpty(s string) bool {
	return s != ""
}

// RemoveSpaces drops horizontal whitespace (spaces, tabs and other Zs
// separators). Line breaks are kept.
func RemoveSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || unicode.Is(unicode.Zs, r) {
			return -1
		}
		return r
	}, s)
}

// RemoveDots drops every '.' from s.
func RemoveDots(s string) string {
	return strings.ReplaceAll(s, ".", "")
}

// CapitalizeFirst upper-cases the first character of s and leaves the rest
// untouched. Special casings such as "ß" -> "SS" are honoured.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	// cases.Caser is stateful, so a fresh one is built per call.
	return cases.Upper(language.Und).String(first) + rest
}
