package logger

import (
	"context"
)

// Logger is the structured logging contract used across the tracebridge
// packages. It is implemented by the concrete *LoggerClient.
//
// Every method takes the message, an optional error (nil when there is
// none), and any number of field maps that are flattened into the entry.
type Logger interface {
	// Debug logs developer-level diagnostics.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs general application progress.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn logs conditions worth attention that did not fail an operation,
	// such as a skipped span attribute.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs failed operations.
	Error(msg string, err error, fields ...map[string]interface{})

	// DebugWithContext is Debug plus trace_id/span_id fields taken from the
	// active span in ctx, when tracing correlation is enabled.
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// InfoWithContext is Info plus trace correlation fields.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext is Warn plus trace correlation fields.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext is Error plus trace correlation fields.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
