// Package ctxlog passes a slog.Logger through context.Context, so the
// solving pipeline logs against whatever handler the caller installed
// without threading a logger argument through every layer.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type preventing collisions with other packages'
// context keys.
type key struct{}

var loggerKey = key{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx, falling back to
// slog.Default() so library callers without a configured logger still
// get coherent output.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
