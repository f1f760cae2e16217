// Package metrics measures how much room a string takes up in the terminal.
//
// Three lengths are distinguished:
//   - RawLength counts code points.
//   - StrippedLength counts code points once SGR color sequences are removed.
//   - DisplayWidth counts terminal cells, with East Asian wide glyphs taking two.
//
// DisplayWidth does not strip color sequences. Callers measuring strings that
// may already be decorated must call Strip first.
package metrics

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// sgrPattern matches a complete Select Graphic Rendition sequence.
// Only ESC '[' followed by digits/semicolons and a final 'm' qualifies.
var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// RawLength returns the number of code points in s.
func RawLength(s string) int {
	return utf8.RuneCountInString(s)
}

// Strip removes all well-formed SGR color sequences from s.
// Partial or malformed escape sequences are left untouched.
func Strip(s string) string {
	if s == "" {
		return s
	}
	return sgrPattern.ReplaceAllString(s, "")
}

// StrippedLength returns the code point count of s without its color codes.
func StrippedLength(s string) int {
	return RawLength(Strip(s))
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

// runeWidth is 2 for East Asian Wide code points and 1 for everything else.
func runeWidth(r rune) int {
	if width.LookupRune(r).Kind() == width.EastAsianWide {
		return 2
	}
	return 1
}
