// Package logging is the structured logger used by the authkeeper server.
// SlogLogger is the production implementation; tests plug in no-op or
// recording loggers.
package logging

import "context"

// Logger takes a message plus alternating key/value attributes:
//
//	log.Warn(ctx, "CreateUser failed", "status", "ALREADY_EXISTED")
//
// Passwords, digests and tokens must never be passed as attributes.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always adds args.
	With(args ...any) Logger
}
