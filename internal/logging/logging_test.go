package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_PrefersContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	Warn(ctx, "skipping star", zap.String("star", "Nowhere"))

	if logs.Len() != 1 {
		t.Fatalf("entries = %d, want 1", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "skipping star" {
		t.Errorf("message = %q, want %q", entry.Message, "skipping star")
	}
	if entry.Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entry.Level)
	}
}

func TestGet_FallsBackWithoutContextLogger(t *testing.T) {
	if Get(context.Background()) == nil {
		t.Fatal("Get returned nil for a bare context")
	}
}

func TestSetup_RejectsBadInput(t *testing.T) {
	if _, err := Setup("chatty", "console"); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := Setup("info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := Setup("debug", "json"); err != nil {
		t.Errorf("valid setup failed: %v", err)
	}
}
