package watermark

import (
	"errors"
	"strconv"
)

var (
	// ErrNotText is returned when input is not valid UTF-8 text.
	ErrNotText = errors.New("text must be a valid UTF-8 string")

	// ErrInvalidLength is returned when a standalone watermark is not WatermarkLen runes long.
	ErrInvalidLength = errors.New("watermark must be " + strconv.Itoa(WatermarkLen) + " characters")

	// ErrInvalidCharacters is returned when a watermark holds a pair outside the alphabet.
	ErrInvalidCharacters = errors.New("watermark contains invalid characters")

	// ErrInvalidAlphabet is returned by NewAlphabet for unusable symbol sets.
	ErrInvalidAlphabet = errors.New("invalid watermark alphabet")
)
