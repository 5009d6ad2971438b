package watermark

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/getmockd/invisink/internal/id"
)

// Codec converts identifiers to and from watermarks over one alphabet.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	alphabet Alphabet
	forward  [NibbleValues]string
	reverse  map[[PairLen]rune]byte
}

// NewCodec builds the nibble/pair tables for a.
func NewCodec(a Alphabet) (*Codec, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	c := &Codec{
		alphabet: a,
		reverse:  make(map[[PairLen]rune]byte, NibbleValues),
	}
	for n, p := range a.pairs() {
		c.forward[n] = string(p[:])
		c.reverse[p] = byte(n)
	}
	return c, nil
}

var defaultCodec = sync.OnceValue(func() *Codec {
	c, err := NewCodec(DefaultAlphabet)
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the codec for DefaultAlphabet.
func Default() *Codec {
	return defaultCodec()
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() Alphabet {
	return c.alphabet
}

// pair returns the two-rune encoding of a nibble (0-15).
func (c *Codec) pair(nibble byte) string {
	return c.forward[nibble&0x0f]
}

// nibble returns the nibble encoded by the pair (first, second), if any.
func (c *Codec) nibble(first, second rune) (byte, bool) {
	n, ok := c.reverse[[PairLen]rune{first, second}]
	return n, ok
}

// Watermark returns the WatermarkLen-rune encoding of u.
func (c *Codec) Watermark(u uuid.UUID) string {
	var b strings.Builder
	b.Grow(WatermarkLen * utf8.UTFMax)
	for i := 0; i < id.HexLen; i++ {
		b.WriteString(c.pair(id.Nibble(u, i)))
	}
	return b.String()
}

// Identifier decodes a standalone watermark. It fails with ErrInvalidLength
// unless w is exactly WatermarkLen runes, and with ErrInvalidCharacters if any
// pair is not in the table.
func (c *Codec) Identifier(w string) (uuid.UUID, error) {
	if n := utf8.RuneCountInString(w); n != WatermarkLen {
		return uuid.Nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	var window [WatermarkLen]rune
	i := 0
	for _, r := range w {
		window[i] = r
		i++
	}
	return c.decodeWindow(&window)
}

func (c *Codec) decodeWindow(w *[WatermarkLen]rune) (uuid.UUID, error) {
	var u uuid.UUID
	for i := 0; i < id.HexLen; i++ {
		off := i * PairLen
		n, ok := c.nibble(w[off], w[off+1])
		if !ok {
			return uuid.Nil, fmt.Errorf("%w: pair at offset %d", ErrInvalidCharacters, off)
		}
		if i%2 == 0 {
			u[i/2] = n << 4
		} else {
			u[i/2] |= n
		}
	}
	return u, nil
}
