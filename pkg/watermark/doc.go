// Package watermark hides a 128-bit identifier inside ordinary text using
// zero-width Unicode characters.
//
// # Alphabet
//
// A watermark is written with four invisible runes. The default alphabet is
// U+200B (zero width space), U+200C (zero width non-joiner), U+200D (zero
// width joiner) and U+FEFF (zero width no-break space), in that order.
//
// Every ordered pair of alphabet runes stands for one hexadecimal nibble.
// Pairs are enumerated first rune outer, second rune inner, and assigned to
// nibbles 0 through f in that order, so the pair (a[0], a[0]) is 0 and
// (a[3], a[3]) is f. Changing the enumeration breaks every watermark already
// in circulation.
//
// # Watermarks
//
// An identifier is rendered as 32 lowercase nibbles and each nibble is
// replaced by its pair, giving a watermark of exactly WatermarkLen (64) runes.
// Lengths are always counted in runes, never bytes.
//
//	text, u, err := watermark.Encode("hello")
//	dec, err := watermark.Decode(text) // dec.Text == "hello", dec.ID == u
//
// # Scanning
//
// FindAll locates every watermark inside arbitrary text. The text is split
// into runs of alphabet runes; each run is cut into consecutive 64-rune
// windows starting at its first rune and every window that decodes is
// reported in order of appearance. Short leftovers at the end of a run are
// ignored, and any other rune ends the run and resets the alignment.
//
// All functions are safe for concurrent use. The default codec is built once
// on first use and never modified afterwards.
package watermark
