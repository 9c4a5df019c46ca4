// Package logger builds the zap logger shared by the HTTP server, jobs and main.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

var (
	Int64    = zap.Int64
	String   = zap.String
	Error    = zap.Error
	Any      = zap.Any
	Duration = zap.Duration
)

// New returns a JSON logger writing to stdout at the given level
// ("debug", "info", "warn", "error").
func New(service, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{
		"service": service,
	}

	return cfg.Build()
}
