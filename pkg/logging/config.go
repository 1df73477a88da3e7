package logging

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel   = "PARBENCH_LOG_LEVEL"
	EnvLogHuman   = "PARBENCH_LOG_HUMAN"
	EnvLogNoColor = "PARBENCH_LOG_NOCOLOR"
	EnvMemDebug   = "PARBENCH_MEM_DEBUG"
)

// DefaultLevel keeps stderr quiet unless something goes wrong.
const DefaultLevel = zerolog.WarnLevel

// Config controls diagnostic output.
type Config struct {
	Level   zerolog.Level
	Human   bool
	NoColor bool

	// MemDebug enables heap statistics around large allocations.
	MemDebug bool
}

// DefaultConfig returns the configuration used when no environment
// overrides are present.
func DefaultConfig() Config {
	return Config{Level: DefaultLevel}
}

// ConfigFromEnv returns DefaultConfig with environment overrides applied.
// Unparsable values are ignored.
func ConfigFromEnv() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()
	if lvl, ok := ParseLevel(getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogHuman)); ok {
		cfg.Human = v
	}
	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(getenv(EnvMemDebug)); ok {
		cfg.MemDebug = v
	}
	return cfg
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "off", "disabled", "none":
		return zerolog.Disabled, true
	default:
		return DefaultLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
