package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new structured logger for the given environment and level
func New(env, level string) (*zap.Logger, error) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.Encoding = "json"
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	// Always log to stdout for container compatibility
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// NewWithFallback builds a logger for env and level. When the settings are
// unusable it returns a production logger at info and records why.
func NewWithFallback(env, level string) *zap.Logger {
	logger, err := New(env, level)
	if err == nil {
		return logger
	}

	fallback, _ := zap.NewProduction()
	fallback.Warn("Invalid logger settings, using production defaults",
		zap.String("env", env),
		zap.String("level", level),
		zap.Error(err),
	)
	return fallback
}
