package api

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quest-tracker/internal/logging"
)

func TestNewServer_Addr(t *testing.T) {
	s := NewServer(http.NotFoundHandler(), ServerOptions{Host: "127.0.0.1", Port: 8088}, nil)

	assert.Equal(t, "127.0.0.1:8088", s.Addr())
	assert.Equal(t, 10*time.Second, s.shutdownTimeout)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	router := NewRouter(&fakeQuestService{}, logging.Discard(), NewMetrics())
	s := NewServer(router, ServerOptions{ShutdownTimeout: time.Second}, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "OK", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
