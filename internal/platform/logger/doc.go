// Package logger configures the process-wide slog JSON logger from
// config.ServerConfig and carries request-scoped loggers in a context.
//
// The trace middleware stores a logger tagged with the request trace ID using
// WithLogger; handlers and response helpers read it back with
// FromContextOrDefault.
package logger
