// Package logger provides structured logging using log/slog, with helpers
// that tag records with the request they belong to.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/zapponejosh/calendrical/internal/config"
)

type contextKey string

// RequestIDKey is the context key for request IDs.
const RequestIDKey contextKey = "request_id"

// Setup builds the process logger from cfg, writing to stdout, and installs
// it as the slog default. Call it once at startup.
func Setup(cfg *config.Config) *slog.Logger {
	return SetupWriter(cfg, os.Stdout)
}

// SetupWriter is Setup writing to w. The CLI logs to stderr so that command
// output on stdout stays machine-readable.
func SetupWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a configured level name to a slog level, defaulting to
// info for names slog does not know.
func parseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// WithRequestID returns a context carrying requestID. The API middleware
// sets it once per request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID extracts the request ID from context.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// FromContext returns the default logger, tagged with the request ID when
// ctx carries one.
func FromContext(ctx context.Context) *slog.Logger {
	if id := RequestID(ctx); id != "" {
		return slog.Default().With(slog.String("request_id", id))
	}
	return slog.Default()
}

// Error logs msg at error level with err attached.
func Error(ctx context.Context, msg string, err error, args ...any) {
	logAt(ctx, slog.LevelError, msg, append([]any{slog.Any("error", err)}, args...))
}

func Info(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelInfo, msg, args) }

func Debug(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelDebug, msg, args) }

func Warn(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelWarn, msg, args) }

func logAt(ctx context.Context, level slog.Level, msg string, args []any) {
	FromContext(ctx).Log(ctx, level, msg, args...)
}
