package logging

import (
	"log/slog"
	"testing"
)

func TestLoggerDefaultsToDiscard(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(t.Context(), slog.LevelError) {
		t.Fatal("default logger should discard all levels")
	}
}

func TestCaptureHandler(t *testing.T) {
	h := NewCaptureHandler(slog.LevelInfo)
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	Logger().Debug("dropped")
	Logger().With("run", 3).WithGroup("fit").Info("flank.fitted", "slope", 2.5)

	entries := h.Entries()
	if len(entries) != 1 {
		t.Fatalf("captured %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Message != "flank.fitted" || e.Level != slog.LevelInfo {
		t.Fatalf("entry = %+v", e)
	}
	if got := e.Attrs["run"].Int64(); got != 3 {
		t.Fatalf("run attr = %v, want 3", got)
	}
	if got := e.Attrs["fit.slope"].Float64(); got != 2.5 {
		t.Fatalf("fit.slope attr = %v, want 2.5", got)
	}
	if !h.Contains("flank") || len(h.Find("flank.fitted")) != 1 {
		t.Fatal("Contains/Find did not match captured record")
	}

	h.Reset()
	if len(h.Entries()) != 0 {
		t.Fatal("Reset did not clear entries")
	}
}
