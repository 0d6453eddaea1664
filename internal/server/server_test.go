package server

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/calendrical/internal/config"
)

func TestRun_ShutsDownOnCancel(t *testing.T) {
	cfg := &config.Config{
		Port:           0,
		Env:            config.EnvDevelopment,
		DatabasePath:   filepath.Join(t.TempDir(), "calendrical.db"),
		LogLevel:       "error",
		LogFormat:      "text",
		CacheSize:      8,
		MetricsEnabled: false,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, logger) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.FileExists(t, cfg.DatabasePath)
}

func TestRun_BadDatabasePath(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Port:         0,
		Env:          config.EnvDevelopment,
		DatabasePath: dir, // a directory, not a database file
		CacheSize:    8,
	}

	err := Run(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
