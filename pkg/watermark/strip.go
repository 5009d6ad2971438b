package watermark

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Strip removes every alphabet rune from text: whole watermarks, fragments,
// and stray symbols alike. Other invisible runes are left alone.
func (c *Codec) Strip(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrNotText
	}
	out, _, err := transform.String(c.stripper(), text)
	if err != nil {
		return "", fmt.Errorf("strip watermark runes: %w", err)
	}
	return out, nil
}

// stripper returns a fresh transformer; transformers carry state and must not be shared.
func (c *Codec) stripper() transform.Transformer {
	return runes.Remove(runes.Predicate(c.alphabet.Contains))
}
