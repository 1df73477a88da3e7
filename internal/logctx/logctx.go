// Package logctx carries a zerolog logger through context.Context.
//
// The CLI attaches the configured logger once; packages that do blocking
// work (directory traversal) pull it back out with FromContext and add
// their own fields:
//
//	ctx := logctx.WithLogger(ctx, logging.WithPhase("walk"))
//	log := logctx.FromContext(ctx)
package logctx

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerKey is the private key type for storing loggers in context.
type loggerKey struct{}

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext extracts the logger from the context. A nil context or one
// without a logger yields a disabled logger, so library code stays silent
// unless the caller opted in.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return zerolog.Nop()
	}
	if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

// WithStr returns a new context whose logger has the string field added.
func WithStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, logger)
}
