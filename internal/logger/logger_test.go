package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLogIsUsableBeforeInit(t *testing.T) {
	if Log == nil {
		t.Fatal("Log should never be nil")
	}
	Log.Info("no-op logger accepts entries")
}

func TestNewRespectsLevel(t *testing.T) {
	l, err := New(Config{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug level should be disabled at warn")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("Warn level should be enabled at warn")
	}
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	l, err := New(Config{Level: "chatty"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if !l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Info level should be enabled by default")
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug level should be disabled by default")
	}
}
