package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	debug, err := New(true)
	if err != nil {
		t.Fatalf("New(true) failed: %v", err)
	}
	if !debug.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be enabled")
	}

	quiet, err := New(false)
	if err != nil {
		t.Fatalf("New(false) failed: %v", err)
	}
	if quiet.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info level to be disabled by default")
	}
	if !quiet.Desugar().Core().Enabled(zapcore.WarnLevel) {
		t.Error("expected warn level to be enabled by default")
	}
}
