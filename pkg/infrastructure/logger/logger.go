package logger

import (
	"todo-backend/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options of logger
type Options struct {
	Level  string
	Format string
}

// New creates a zap logger from config.C.Log
func New() (*zap.Logger, error) {
	return NewWithOptions(Options{
		Level:  config.C.Log.Level,
		Format: config.C.Log.Format,
	})
}

// NewWithOptions creates a zap logger. Format "console" selects the development
// encoder, anything else the production JSON encoder.
func NewWithOptions(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}

	cfg := zap.NewProductionConfig()
	if opts.Format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build(zap.Fields(zap.String("app", config.C.AppName)))
}
