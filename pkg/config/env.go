package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvAlphabet  = "INVISINK_ALPHABET"
	EnvPrepend   = "INVISINK_PREPEND"
	EnvLogLevel  = "INVISINK_LOG_LEVEL"
	EnvLogFormat = "INVISINK_LOG_FORMAT"
)

// LoadEnv overlays cfg with the environment variables that are set.
// The result is not validated; call Validate afterwards.
func LoadEnv(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	// INVISINK_ALPHABET: comma-separated symbols
	if v := os.Getenv(EnvAlphabet); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.Alphabet = parts
		cfg.Sources["alphabet"] = SourceEnv
	}

	// INVISINK_PREPEND
	if v := os.Getenv(EnvPrepend); v != "" {
		if b, ok := parseBool(v); ok {
			cfg.Prepend = b
			cfg.Sources["prepend"] = SourceEnv
		}
	}

	// INVISINK_LOG_LEVEL
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
		cfg.Sources["log.level"] = SourceEnv
	}

	// INVISINK_LOG_FORMAT
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
		cfg.Sources["log.format"] = SourceEnv
	}
}

// parseBool accepts strconv.ParseBool values plus yes/no and on/off, ignoring case.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
	return b, err == nil
}

// Load reads path (skipped when empty), applies the environment and validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	LoadEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
