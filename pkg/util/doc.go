// Package util provides log-safe rendering helpers for text that carries
// invisible watermark runes.
//
//   - Visible — spell out zero-width and other format runes as <U+XXXX>
//   - Truncate — cap a string for logging without splitting a rune
package util
