// Package logging defines a small structured-logging interface so the rest
// of the code does not depend on a concrete logging backend.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key/value pairs:
//
//	log.Info(ctx, "server started", "addr", addr)
type Logger interface {
	// Debug logs fine-grained diagnostic output.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key/value pairs.
	With(args ...any) Logger
}
