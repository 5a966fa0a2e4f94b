package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/config"
)

// A failed listen (e.g. the port is already taken) must surface as an error
// so the process exits non-zero instead of reporting a clean shutdown.
func TestStartHTTPServerReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		_ = ln.Close()
	}()

	port := ln.Addr().(*net.TCPAddr).Port
	app := &application{
		config: &config.Config{Server: config.ServerConfig{Port: port, LogLevel: "error"}},
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	}

	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(context.Background(), http.NewServeMux())
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server failed")
	case <-time.After(5 * time.Second):
		t.Fatal("startHTTPServer did not return after listen failure")
	}
}
