package watermark

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/getmockd/invisink/internal/id"
)

// Placement says where Decode found a watermark.
type Placement int

// Placements.
const (
	PlacementNone Placement = iota
	PlacementAppended
	PlacementPrepended
)

func (p Placement) String() string {
	switch p {
	case PlacementAppended:
		return "appended"
	case PlacementPrepended:
		return "prepended"
	default:
		return "none"
	}
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	id        uuid.UUID
	hasID     bool
	prepend   bool
	generator id.Generator
}

// WithID embeds u instead of generating a fresh identifier.
func WithID(u uuid.UUID) EncodeOption {
	return func(c *encodeConfig) {
		c.id = u
		c.hasID = true
	}
}

// WithPrepend places the watermark before the text instead of after it.
func WithPrepend(prepend bool) EncodeOption {
	return func(c *encodeConfig) {
		c.prepend = prepend
	}
}

// WithGenerator sets the source of identifiers when WithID is not given.
func WithGenerator(g id.Generator) EncodeOption {
	return func(c *encodeConfig) {
		if g != nil {
			c.generator = g
		}
	}
}

// Encode attaches one watermark to text and returns the result together with
// the identifier it carries.
func (c *Codec) Encode(text string, opts ...EncodeOption) (string, uuid.UUID, error) {
	if !utf8.ValidString(text) {
		return "", uuid.Nil, ErrNotText
	}

	cfg := encodeConfig{generator: id.Random()}
	for _, opt := range opts {
		opt(&cfg)
	}

	u := cfg.id
	if !cfg.hasID {
		var err error
		if u, err = cfg.generator.NewID(); err != nil {
			return "", uuid.Nil, fmt.Errorf("generate identifier: %w", err)
		}
	}

	mark := c.Watermark(u)
	if cfg.prepend {
		return mark + text, u, nil
	}
	return text + mark, u, nil
}

// Decoded is the result of Decode. When Found is false, Text is the input
// unchanged and ID is uuid.Nil.
type Decoded struct {
	Text      string
	ID        uuid.UUID
	Found     bool
	Placement Placement
}

// Decode strips a single watermark from the end of text or, failing that,
// from its start. Candidates that do not decode are treated as plain text.
func (c *Codec) Decode(text string) (Decoded, error) {
	if !utf8.ValidString(text) {
		return Decoded{}, ErrNotText
	}

	none := Decoded{Text: text}
	if utf8.RuneCountInString(text) < WatermarkLen {
		return none, nil
	}

	tail := suffixStart(text, WatermarkLen)
	if u, err := c.Identifier(text[tail:]); err == nil {
		return Decoded{Text: text[:tail], ID: u, Found: true, Placement: PlacementAppended}, nil
	}

	head := prefixEnd(text, WatermarkLen)
	if u, err := c.Identifier(text[:head]); err == nil {
		return Decoded{Text: text[head:], ID: u, Found: true, Placement: PlacementPrepended}, nil
	}

	return none, nil
}

// prefixEnd returns the byte offset just past the first n runes of s.
func prefixEnd(s string, n int) int {
	i := 0
	for k := 0; k < n && i < len(s); k++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// suffixStart returns the byte offset where the last n runes of s begin.
func suffixStart(s string, n int) int {
	i := len(s)
	for k := 0; k < n && i > 0; k++ {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return i
}
