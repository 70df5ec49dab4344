package httpserver

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xiangqi/internal/server/game"
)

func TestShutdownBeforeListen(t *testing.T) {
	srv := NewServer(game.NewManager(1, 0), t.TempDir())
	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, srv.ListenAndServe("127.0.0.1:0"))
}

func TestListenAndShutdown(t *testing.T) {
	// 先拿一个空闲端口
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	srv := NewServer(game.NewManager(1, 0), t.TempDir())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("ListenAndServe did not return after Shutdown")
	}
}
