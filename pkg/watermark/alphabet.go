package watermark

import (
	"fmt"
	"unicode"

	"github.com/getmockd/invisink/internal/id"
)

const (
	// AlphabetSize is the number of invisible runes in an alphabet.
	AlphabetSize = 4

	// PairLen is the number of runes that encode one nibble.
	PairLen = 2

	// NibbleValues is the number of distinct nibbles, one per ordered pair.
	NibbleValues = AlphabetSize * AlphabetSize

	// WatermarkLen is the length in runes of every watermark.
	WatermarkLen = id.HexLen * PairLen
)

// Alphabet is an ordered set of four distinct zero-width runes.
type Alphabet [AlphabetSize]rune

// DefaultAlphabet is used by the package-level functions.
var DefaultAlphabet = Alphabet{'\u200b', '\u200c', '\u200d', '\ufeff'}

// NewAlphabet builds an Alphabet from exactly four symbols.
func NewAlphabet(symbols ...rune) (Alphabet, error) {
	var a Alphabet
	if len(symbols) != AlphabetSize {
		return a, fmt.Errorf("%w: need %d symbols, got %d", ErrInvalidAlphabet, AlphabetSize, len(symbols))
	}
	copy(a[:], symbols)
	if err := a.Validate(); err != nil {
		return Alphabet{}, err
	}
	return a, nil
}

// Validate checks that the symbols are distinct zero-width runes: U+180E,
// U+200B-U+200F, U+2060-U+2064, U+FEFF or a variation selector.
func (a Alphabet) Validate() error {
	for i, r := range a {
		if !isInvisible(r) {
			return fmt.Errorf("%w: symbol %d (U+%04X) is not a zero-width rune", ErrInvalidAlphabet, i, r)
		}
		for j := 0; j < i; j++ {
			if a[j] == r {
				return fmt.Errorf("%w: symbol U+%04X appears twice", ErrInvalidAlphabet, r)
			}
		}
	}
	return nil
}

// Index returns the position of r in the alphabet, or -1.
func (a Alphabet) Index(r rune) int {
	for i, s := range a {
		if s == r {
			return i
		}
	}
	return -1
}

// Contains reports whether r is one of the alphabet's symbols.
func (a Alphabet) Contains(r rune) bool {
	return a.Index(r) >= 0
}

// pairs enumerates every ordered pair, first symbol outer, in nibble order.
func (a Alphabet) pairs() [NibbleValues][PairLen]rune {
	var out [NibbleValues][PairLen]rune
	n := 0
	for _, first := range a {
		for _, second := range a {
			out[n] = [PairLen]rune{first, second}
			n++
		}
	}
	return out
}

// zeroWidth lists the format runes that never render a glyph. Other Cf runes
// (soft hyphen, prepended concatenation marks) can be drawn and are excluded.
var zeroWidth = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x180e, Hi: 0x180e, Stride: 1},
		{Lo: 0x200b, Hi: 0x200f, Stride: 1},
		{Lo: 0x2060, Hi: 0x2064, Stride: 1},
		{Lo: 0xfeff, Hi: 0xfeff, Stride: 1},
	},
}

func isInvisible(r rune) bool {
	return unicode.Is(zeroWidth, r) || unicode.Is(unicode.Variation_Selector, r)
}
