package util

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLogTextSize is the default maximum size, in bytes, for logged text.
const MaxLogTextSize = 256

// Visible replaces every invisible format rune (Unicode category Cf) and
// variation selector in s with its <U+XXXX> code point notation.
func Visible(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Cf, r) || unicode.Is(unicode.Variation_Selector, r) {
			fmt.Fprintf(&b, "<U+%04X>", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Truncate shortens s to at most maxSize bytes, appending "...(truncated)" if
// anything was cut. The cut never splits a multi-byte rune.
// If maxSize <= 0, MaxLogTextSize is used.
func Truncate(s string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxLogTextSize
	}
	if len(s) <= maxSize {
		return s
	}
	cut := maxSize
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "...(truncated)"
}
