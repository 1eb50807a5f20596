package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the logger into a Uber FX application.
//
// The module provides:
//  1. *LoggerClient (concrete type) for direct use
//  2. Logger interface for dependency injection
//  3. An OnStop hook that flushes buffered log entries
//
// A logger.Config must be available in the dependency graph.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient, // Provides *LoggerClient
		fx.Annotate(
			func(l *LoggerClient) Logger { return l },
			fx.As(new(Logger)),
		),
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle registers an OnStop hook that syncs the
// underlying zap logger so buffered entries reach their destination before
// the application exits. Invoked automatically by FXModule.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync() // flushes any buffered logs
		},
	})
}
