// Package logging provides structured diagnostic logging for parbench using zerolog.
//
// Diagnostics go to stderr so that benchmark output on stdout keeps its
// fixed line format.
package logging

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger     *zerolog.Logger
	prettyMode atomic.Bool
)

func init() {
	// Quiet JSON on stderr until Init is called.
	l := zerolog.New(os.Stderr).Level(DefaultLevel).With().Timestamp().Logger()
	logger = &l
}

// Init configures the process logger writing to stderr.
func Init(cfg Config) {
	InitWriter(os.Stderr, cfg)
}

// InitWriter configures the process logger writing to w.
// With cfg.Human set, a console writer is used instead of JSON and log
// events gain human-readable companion fields.
func InitWriter(w io.Writer, cfg Config) {
	var output zerolog.LevelWriter
	if cfg.Human {
		output = zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}}
	} else {
		output = zerolog.LevelWriterAdapter{Writer: w}
	}
	SetPrettyMode(cfg.Human)

	l := zerolog.New(output).Level(cfg.Level).With().Timestamp().Logger()
	logger = &l
}

// L returns the base logger.
func L() *zerolog.Logger {
	return logger
}

// WithPhase returns a logger with the phase field set.
func WithPhase(phase string) zerolog.Logger {
	return L().With().Str("phase", phase).Logger()
}

// SetLogger allows overriding the global logger (useful for testing).
func SetLogger(l zerolog.Logger) {
	logger = &l
}

// IsPrettyMode reports whether log events should carry human-readable
// companion fields such as "duration_h".
func IsPrettyMode() bool {
	return prettyMode.Load()
}

// SetPrettyMode toggles human-readable companion fields.
func SetPrettyMode(on bool) {
	prettyMode.Store(on)
}
