package bootstrap

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAuditLogger struct {
	mu      sync.Mutex
	entries []AuditLog
}

func (r *recordingAuditLogger) Log(_ context.Context, entry AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func TestStartHTTPServer(t *testing.T) {
	t.Run("shuts down when the context is cancelled", func(t *testing.T) {
		audit := &recordingAuditLogger{}
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- StartHTTPServer(ctx, http.NotFoundHandler(), ServerConfig{Port: "0", ShutdownTimeout: time.Second}, audit)
		}()
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}

		require.Len(t, audit.entries, 1)
		assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
		assert.Equal(t, context.Canceled.Error(), audit.entries[0].Meta["reason"])
	})

	t.Run("returns listen errors", func(t *testing.T) {
		ln, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		defer ln.Close()
		port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

		audit := &recordingAuditLogger{}
		err = StartHTTPServer(context.Background(), http.NotFoundHandler(), ServerConfig{Port: port}, audit)

		assert.Error(t, err)
		assert.Empty(t, audit.entries)
	})
}

func TestStdoutAuditLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := NewStdoutAuditLogger(zap.New(core))
	audit.now = func() time.Time { return time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC) }

	audit.Log(context.Background(), AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye", Meta: map[string]any{"reason": "signal"}})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "2024-01-31T12:00:00Z", fields["timestamp"])
}
