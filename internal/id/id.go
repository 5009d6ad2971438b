package id

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// HexLen is the number of nibbles in the canonical form of an identifier.
const HexLen = 32

// ErrInvalidHex is returned by ParseHex for malformed input.
var ErrInvalidHex = errors.New("identifier must be 32 hexadecimal characters")

// Generator produces identifiers for new watermarks.
type Generator interface {
	NewID() (uuid.UUID, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func() (uuid.UUID, error)

// NewID calls f.
func (f GeneratorFunc) NewID() (uuid.UUID, error) { return f() }

// Random returns a Generator backed by uuid.NewRandom.
func Random() Generator {
	return GeneratorFunc(uuid.NewRandom)
}

// Fixed returns a Generator that always yields u.
func Fixed(u uuid.UUID) Generator {
	return GeneratorFunc(func() (uuid.UUID, error) { return u, nil })
}

// New generates a random identifier, panicking if the system random source fails.
func New() uuid.UUID {
	return uuid.New()
}

// Hex renders u as 32 lowercase hexadecimal characters.
func Hex(u uuid.UUID) string {
	return hex.EncodeToString(u[:])
}

// ParseHex parses the canonical 32-nibble form. Upper case nibbles are accepted;
// dashes and braces are not.
func ParseHex(s string) (uuid.UUID, error) {
	var u uuid.UUID
	if len(s) != HexLen {
		return u, fmt.Errorf("%w: got %d", ErrInvalidHex, len(s))
	}
	if _, err := hex.Decode(u[:], []byte(strings.ToLower(s))); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return u, nil
}

// Nibble returns the i-th nibble (0-31, most significant first) of u.
func Nibble(u uuid.UUID, i int) byte {
	b := u[i/2]
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0f
}
