package logger_test

import (
	"errors"

	"github.com/aalemi-dev/tracebridge/logger"
)

func ExampleNewLoggerClient() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "webapp-analytics",
	})

	log.Info("bridge ready", nil)
}

func ExampleLoggerClient_Warn() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Warning,
		ServiceName: "webapp-analytics",
	})

	err := errors.New("unsupported attribute value type: map[string]interface {}")
	log.Warn("attribute rejected", err, map[string]interface{}{
		"action": "login",
		"key":    "payload",
	})
}
