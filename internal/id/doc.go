// Package id supplies the 128-bit identifiers carried by watermarks.
//
// Identifiers are uuid.UUID values. The codec never invents identifiers on
// its own; it asks a Generator for one when the caller did not supply it.
//
//   - Random: UUID v4 drawn from crypto/rand (the default)
//   - Fixed: always returns the same identifier, useful in tests and replays
//
// The canonical text form of an identifier is 32 lowercase hexadecimal
// nibbles with no separators (see Hex and ParseHex). That form defines the
// nibble order a watermark is written in.
package id
