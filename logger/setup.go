package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient wraps a zap.Logger with the Logger interface and optional
// trace correlation. It implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap logger. Exposed for consumers that need
	// zap-specific functionality; routine logging should go through the
	// interface methods.
	Zap *zap.Logger

	// tracingEnabled controls whether the *WithContext methods attach
	// trace_id/span_id fields from the active span.
	tracingEnabled bool
}

// NewLoggerClient builds a LoggerClient from the given configuration.
//
// The logger emits JSON to stderr with ISO8601 timestamps, capital level
// names, caller information, and two constant fields: the process id and
// the configured service name. Unknown level strings fall back to Info.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "webapp-analytics",
//	})
//	log.Info("bridge ready", nil)
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel

	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:         zap.NewAtomicLevelAt(logLevel),
		Encoding:      "json",
		EncoderConfig: encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	// Default to 1 if not set, which is correct for direct usage.
	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	zapLogger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	if err != nil {
		log.Fatal(err)
	}

	return &LoggerClient{
		Zap:            zapLogger,
		tracingEnabled: cfg.EnableTracing,
	}
}
