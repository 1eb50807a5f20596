package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/tracebridge/logger"
	"github.com/aalemi-dev/tracebridge/observability"
)

// FXModule wires the metrics server into a Uber FX application.
//
// The module provides:
//  1. *Metrics (concrete type) for direct use
//  2. MetricsCollector interface for dependency injection
//  3. observability.Observer backed by CaptureObserver, so bridge.FXModule
//     records capture metrics automatically when this module is present
//  4. Lifecycle management for the metrics HTTP server
//
// A metrics.Config must be available in the dependency graph. A
// logger.Logger is used for lifecycle messages when available.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics, // Provides *Metrics
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
		NewCaptureObserver, // Provides *CaptureObserver
		fx.Annotate(
			func(o *CaptureObserver) observability.Observer { return o },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// lifecycleParams collects the lifecycle dependencies; the logger is
// optional so the metrics module works standalone.
type lifecycleParams struct {
	fx.In

	LC      fx.Lifecycle
	Metrics *Metrics
	Logger  logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle starts the metrics HTTP server on application
// start and shuts it down gracefully on stop. When the server is disabled
// in configuration, the hooks are no-ops. Invoked automatically by
// FXModule.
func RegisterMetricsLifecycle(p lifecycleParams) {
	p.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if p.Metrics.Server == nil {
				return nil
			}
			go func() {
				if p.Logger != nil {
					p.Logger.Info("starting metrics server", nil, map[string]interface{}{
						"address": p.Metrics.Server.Addr,
					})
				}
				if err := p.Metrics.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					if p.Logger != nil {
						p.Logger.Error("metrics server failed", err, nil)
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if p.Metrics.Server == nil {
				return nil
			}
			if p.Logger != nil {
				p.Logger.Info("shutting down metrics server", nil, nil)
			}
			return p.Metrics.Server.Shutdown(ctx)
		},
	})
}
