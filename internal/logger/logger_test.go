package logger

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap/zapcore"
)

// Logger honours the configured minimum level in every environment
func TestProperty_LoggerHonoursConfiguredLevel(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("levels below the configured one are disabled", prop.ForAll(
		func(env string, level string) bool {
			logger, err := New(env, level)
			if err != nil {
				t.Logf("FAIL: New(%q, %q) returned error: %v", env, level, err)
				return false
			}
			defer logger.Sync()

			want, _ := zapcore.ParseLevel(level)
			core := logger.Core()

			if !core.Enabled(want) {
				return false
			}
			if want > zapcore.DebugLevel && core.Enabled(want-1) {
				return false
			}
			return true
		},
		gen.OneConstOf("production", "development"),
		gen.OneConstOf("debug", "info", "warn", "error"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	if _, err := New("production", "chatty"); err == nil {
		t.Fatal("Expected an error for an unknown log level")
	}
}

func TestNew_EmptyLevelUsesEnvironmentDefault(t *testing.T) {
	logger, err := New("development", "")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Development logger should enable debug by default")
	}
}

func TestNewWithFallback_FallsBackOnBadLevel(t *testing.T) {
	logger := NewWithFallback("production", "chatty")
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
	defer logger.Sync()

	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Fallback logger should log at info")
	}
}

func TestNewWithFallback_HonorsValidSettings(t *testing.T) {
	logger := NewWithFallback("development", "error")
	defer logger.Sync()

	if logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("Logger should only log at error and above")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Logger should log errors")
	}
}
