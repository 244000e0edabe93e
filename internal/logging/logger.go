// Package logging defines the structured-logging interface used by the CLI
// and a log/slog implementation of it.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Debug(ctx, "deriving password", "site", site, "counter", counter)
//
// Never pass the master secret or a derived password as a value.
type Logger interface {
	// Debug logs derivation details useful when diagnosing a profile.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)
}
