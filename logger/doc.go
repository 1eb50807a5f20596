// Package logger provides structured JSON logging for the tracebridge
// packages, built on Uber's Zap.
//
// The package wraps zap behind a small Logger interface so consumers (the
// bridge, primarily) can log attribute rejections and lifecycle events
// without depending on zap types, and tests can substitute an in-memory
// implementation.
//
// Two method families exist: plain methods (Debug, Info, Warn, Error) and
// *WithContext variants that additionally read the active OpenTelemetry
// span from the context and attach trace_id and span_id fields, correlating
// log lines with traces.
//
// There is deliberately no Fatal method: this is library code embedded in a
// host application, and a telemetry failure must never terminate the host
// process.
//
// # Basic Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "webapp-analytics",
//	})
//
//	log.Warn("attribute rejected", nil, map[string]interface{}{
//	    "key": "payload", "type": "map[string]interface {}",
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "webapp-analytics"}
//	    }),
//	)
//
// The module provides both *LoggerClient and the Logger interface and
// registers an OnStop hook that flushes buffered entries.
package logger
