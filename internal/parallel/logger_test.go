package parallel

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLogger_DefaultSilent(t *testing.T) {
	SetLogger(nil)

	l := logger()
	if l == nil {
		t.Fatal("logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled at %v, want disabled", level)
		}
	}
}

func TestSetLogger_NilRestoresSilent(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	logger().Error("dropped")
	if buf.Len() != 0 {
		t.Errorf("logger wrote after SetLogger(nil): %q", buf.String())
	}
}
