package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/getmockd/invisink/pkg/logging"
	"github.com/getmockd/invisink/pkg/watermark"
)

// Value sources.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
)

// ErrInvalidSymbol is returned for alphabet entries that are not a single rune.
var ErrInvalidSymbol = errors.New("invalid alphabet symbol")

// Config holds codec and logging settings.
type Config struct {
	// Alphabet lists four symbols, each either "U+XXXX" or a literal rune.
	Alphabet []string  `json:"alphabet,omitempty" yaml:"alphabet,omitempty"`
	Prepend  bool      `json:"prepend" yaml:"prepend"`
	Log      LogConfig `json:"log" yaml:"log"`

	// Sources maps a setting name to where its value came from.
	Sources map[string]string `json:"-" yaml:"-"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Default returns the configuration for the default alphabet, appended
// watermarks and info-level text logs.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: string(logging.FormatText)},
		Sources: map[string]string{
			"alphabet":   SourceDefault,
			"prepend":    SourceDefault,
			"log.level":  SourceDefault,
			"log.format": SourceDefault,
		},
	}
}

// Validate checks that the alphabet, if set, is usable.
func (c *Config) Validate() error {
	_, err := c.alphabet()
	return err
}

// Codec builds a codec for the configured alphabet.
func (c *Config) Codec() (*watermark.Codec, error) {
	a, err := c.alphabet()
	if err != nil {
		return nil, err
	}
	if a == watermark.DefaultAlphabet {
		return watermark.Default(), nil
	}
	return watermark.NewCodec(a)
}

// Scanner builds a scanner for the configured alphabet that logs through Logger.
func (c *Config) Scanner(out io.Writer) (*watermark.Scanner, error) {
	codec, err := c.Codec()
	if err != nil {
		return nil, err
	}
	return watermark.NewScanner(codec, watermark.WithLogger(c.Logger(out))), nil
}

// Logger builds a logger writing to out (stderr when nil).
func (c *Config) Logger(out io.Writer) *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(c.Log.Level),
		Format: logging.ParseFormat(c.Log.Format),
		Output: out,
	})
}

// EncodeOptions returns the encode options implied by the configuration.
func (c *Config) EncodeOptions() []watermark.EncodeOption {
	return []watermark.EncodeOption{watermark.WithPrepend(c.Prepend)}
}

func (c *Config) alphabet() (watermark.Alphabet, error) {
	if len(c.Alphabet) == 0 {
		return watermark.DefaultAlphabet, nil
	}
	symbols := make([]rune, 0, len(c.Alphabet))
	for _, s := range c.Alphabet {
		r, err := ParseSymbol(s)
		if err != nil {
			return watermark.Alphabet{}, err
		}
		symbols = append(symbols, r)
	}
	return watermark.NewAlphabet(symbols...)
}

// ParseSymbol parses "U+200B" (case-insensitive) or a string holding exactly one rune.
func ParseSymbol(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if len(s) > 2 && strings.EqualFold(s[:2], "U+") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
		}
		return rune(v), nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	return r, nil
}
