// Package logging defines the structured-logging interface shared by the
// directory services and the CLI front end.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Warn(ctx, "contact fetch degraded to empty result", "error", err)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs degraded but tolerated conditions, such as a remote read
	// falling back to the local cache.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures that surface to the caller.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value
	// pairs.
	With(args ...any) Logger
}
