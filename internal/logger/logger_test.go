package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/zapponejosh/calendrical/internal/config"
)

func TestSetupWriter_JSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	log := SetupWriter(&config.Config{LogLevel: "info", LogFormat: "json"}, &buf)

	log.Debug("hidden")
	log.Info("shown", "calendar", "julian")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %s", out)
	}
	if !strings.Contains(out, `"calendar":"julian"`) {
		t.Errorf("json output missing attribute: %s", out)
	}
}

func TestFromContext_RequestID(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	SetupWriter(&config.Config{LogLevel: "debug", LogFormat: "text"}, &buf)

	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestID(ctx); got != "req-42" {
		t.Errorf("RequestID() = %q, want %q", got, "req-42")
	}

	Error(ctx, "analysis failed", errors.New("boom"), "codes", "[1 3]")

	out := buf.String()
	for _, want := range []string{"request_id=req-42", "error=boom", "analysis failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
