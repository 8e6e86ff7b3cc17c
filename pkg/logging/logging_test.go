package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	quiet, err := New(false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if quiet.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("default logger should not emit info")
	}
	loud, err := New(true)
	if err != nil {
		t.Fatalf("new verbose: %v", err)
	}
	if !loud.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("verbose logger should emit debug")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected a logger")
	}
}
