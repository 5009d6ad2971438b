package watermark

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
)

var defaultScanner = sync.OnceValue(func() *Scanner {
	return NewScanner(Default())
})

// IdentifierToWatermark encodes u with the default alphabet.
func IdentifierToWatermark(u uuid.UUID) string {
	return Default().Watermark(u)
}

// WatermarkToIdentifier decodes a standalone watermark written with the default alphabet.
func WatermarkToIdentifier(w string) (uuid.UUID, error) {
	return Default().Identifier(w)
}

// Encode attaches a watermark to text using the default codec.
func Encode(text string, opts ...EncodeOption) (string, uuid.UUID, error) {
	return Default().Encode(text, opts...)
}

// Decode strips a single appended or prepended watermark using the default codec.
func Decode(text string) (Decoded, error) {
	return Default().Decode(text)
}

// Strip removes every default-alphabet rune from text.
func Strip(text string) (string, error) {
	return Default().Strip(text)
}

// Scan locates every default-alphabet watermark in text.
func Scan(text string) []Match {
	return defaultScanner().Scan(text)
}

// FindAll returns the identifiers of every default-alphabet watermark in text.
func FindAll(text string) []uuid.UUID {
	return defaultScanner().FindAll(text)
}

// Contains reports whether text carries a default-alphabet watermark.
func Contains(text string) bool {
	return defaultScanner().Contains(text)
}

// ScanReader scans a stream for default-alphabet watermarks.
func ScanReader(ctx context.Context, r io.Reader) ([]Match, error) {
	return defaultScanner().ScanReader(ctx, r)
}
