package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/invisink/internal/id"
	"github.com/getmockd/invisink/pkg/watermark"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{"U+200B", '\u200b', false},
		{"u+feff", '\ufeff', false},
		{" U+2060 ", '\u2060', false},
		{"\u200d", '\u200d', false},
		{"a", 'a', false},
		{"U+", 0, true},
		{"U+ZZZZ", 0, true},
		{"U+110000", 0, true},
		{"ab", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSymbol(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSymbol)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_UsesDefaultCodec(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	c, err := cfg.Codec()
	require.NoError(t, err)
	assert.Same(t, watermark.Default(), c)
	assert.Equal(t, SourceDefault, cfg.Sources["alphabet"])
}

func TestLoadFromFile_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "invisink.yaml", `
alphabet: ["U+2060", "U+2061", "U+2062", "U+2063"]
prepend: true
log:
  level: debug
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Prepend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, SourceFile, cfg.Sources["alphabet"])
	assert.Equal(t, SourceFile, cfg.Sources["log.level"])
	assert.Equal(t, SourceDefault, cfg.Sources["log.format"])

	c, err := cfg.Codec()
	require.NoError(t, err)
	assert.Equal(t, watermark.Alphabet{'\u2060', '\u2061', '\u2062', '\u2063'}, c.Alphabet())

	u := id.New()
	text, _, err := c.Encode("hi", append(cfg.EncodeOptions(), watermark.WithID(u))...)
	require.NoError(t, err)
	dec, err := c.Decode(text)
	require.NoError(t, err)
	assert.Equal(t, watermark.PlacementPrepended, dec.Placement)
	assert.Equal(t, u, dec.ID)
}

func TestLoadFromFile_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "invisink.json", `{"prepend": false, "log": {"format": "json"}}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.Prepend)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, SourceFile, cfg.Sources["prepend"])
	assert.Empty(t, cfg.Alphabet)
}

func TestLoadFromFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"empty", "c.yaml", "  \n", ErrEmptyFile},
		{"bad json", "c.json", "{", ErrInvalidJSON},
		{"bad yaml", "c.yml", "alphabet: [", ErrInvalidYAML},
		{"visible alphabet", "c.yaml", "alphabet: [a, b, c, d]", watermark.ErrInvalidAlphabet},
		{"short alphabet", "c.json", `{"alphabet": ["U+200B"]}`, watermark.ErrInvalidAlphabet},
		{"bad symbol", "c.json", `{"alphabet": ["U+XYZ", "a", "b", "c"]}`, ErrInvalidSymbol},
		{"misspelled yaml key", "c.yaml", "prepnd: true\n", ErrInvalidYAML},
		{"misspelled json key", "c.json", `{"prepnd": true}`, ErrInvalidJSON},
		{"unknown yaml log key", "c.yaml", "log:\n  colour: red\n", ErrInvalidYAML},
		{"unknown json log key", "c.json", `{"log": {"colour": "red"}}`, ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFromFile(writeFile(t, tt.file, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvAlphabet, "U+FE00, U+FE01,U+FE02 ,U+FE03")
	t.Setenv(EnvPrepend, "yes")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")

	cfg := Default()
	LoadEnv(cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"U+FE00", "U+FE01", "U+FE02", "U+FE03"}, cfg.Alphabet)
	assert.True(t, cfg.Prepend)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	for _, key := range []string{"alphabet", "prepend", "log.level", "log.format"} {
		assert.Equal(t, SourceEnv, cfg.Sources[key], key)
	}
}

func TestLoadFromFile_UnknownKeyNamed(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(writeFile(t, "c.yaml", "prepend: true\nprepnd: true\n"))
	require.ErrorIs(t, err, ErrInvalidYAML)
	assert.Contains(t, err.Error(), "prepnd")

	_, err = LoadFromFile(writeFile(t, "c.json", `{"prepnd": true}`))
	require.ErrorIs(t, err, ErrInvalidJSON)
	assert.Contains(t, err.Error(), "prepnd")
}

func TestParseYAML_SourcesOnlyKnownKeys(t *testing.T) {
	t.Parallel()

	cfg, err := ParseYAML([]byte("prepend: true\n"))
	require.NoError(t, err)
	assert.Len(t, cfg.Sources, 4)
	assert.Equal(t, SourceFile, cfg.Sources["prepend"])
	assert.Equal(t, SourceDefault, cfg.Sources["alphabet"])
}

func TestLoadEnv_Prepend(t *testing.T) {
	tests := []struct {
		value      string
		want       bool
		wantSource string
	}{
		{"true", true, SourceEnv},
		{"TRUE", true, SourceEnv},
		{"True", true, SourceEnv},
		{"1", true, SourceEnv},
		{"YES", true, SourceEnv},
		{"on", true, SourceEnv},
		{"false", false, SourceEnv},
		{"No", false, SourceEnv},
		{"0", false, SourceEnv},
		{"maybe", true, SourceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvPrepend, tt.value)

			cfg := Default()
			// Unparseable values leave the existing setting alone.
			cfg.Prepend = true
			LoadEnv(cfg)
			assert.Equal(t, tt.want, cfg.Prepend)
			assert.Equal(t, tt.wantSource, cfg.Sources["prepend"])
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "c.yaml", "prepend: true\n")
	t.Setenv(EnvPrepend, "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Prepend)
	assert.Equal(t, SourceEnv, cfg.Sources["prepend"])
}

func TestLoad_InvalidEnvAlphabet(t *testing.T) {
	t.Setenv(EnvAlphabet, "a,b,c,d")

	_, err := Load("")
	require.ErrorIs(t, err, watermark.ErrInvalidAlphabet)
}

func TestConfig_Scanner(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Log.Level = "debug"

	var buf bytes.Buffer
	s, err := cfg.Scanner(&buf)
	require.NoError(t, err)

	u := id.New()
	got := s.FindAll("x\u200b y" + watermark.IdentifierToWatermark(u))
	assert.Equal(t, []uuid.UUID{u}, got)
	assert.Contains(t, buf.String(), "discarding partial window")
	assert.Contains(t, buf.String(), "<U+200B>")
}
