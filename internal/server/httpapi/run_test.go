package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newBareServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, "127.0.0.1:0", time.Second) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_BadAddress(t *testing.T) {
	srv := newBareServer(t)

	err := srv.Run(context.Background(), "not-an-address", time.Second)
	require.Error(t, err)
}

func startSlowServer(t *testing.T, shutdownTimeout time.Duration) (cancel func(), done <-chan error, status <-chan int, release chan<- struct{}) {
	t.Helper()
	srv := newBareServer(t)

	started := make(chan struct{})
	rel := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-rel
		w.WriteHeader(http.StatusOK)
	})

	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancelFn := context.WithCancel(context.Background())
	t.Cleanup(cancelFn)

	runDone := make(chan error, 1)
	go func() { runDone <- srv.serve(ctx, listen, handler, shutdownTimeout) }()

	codes := make(chan int, 1)
	go func() {
		resp, err := http.Post("http://"+listen.Addr().String()+"/slow", "application/json", strings.NewReader("{}"))
		if err != nil {
			codes <- 0
			return
		}
		_ = resp.Body.Close()
		codes <- resp.StatusCode
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the handler")
	}
	return cancelFn, runDone, codes, rel
}

func TestRun_WaitsForInFlightRequest(t *testing.T) {
	cancel, done, status, release := startSlowServer(t, 5*time.Second)

	cancel()

	select {
	case <-done:
		t.Fatal("Run returned while a request was still being served")
	case <-time.After(200 * time.Millisecond):
	}

	close(release)
	require.Equal(t, http.StatusOK, <-status)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the request completed")
	}
}

func TestRun_ShutdownTimeoutBoundsWait(t *testing.T) {
	cancel, done, _, release := startSlowServer(t, 100*time.Millisecond)
	defer close(release)

	start := time.Now()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
		require.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	case <-time.After(5 * time.Second):
		t.Fatal("Run ignored the shutdown timeout")
	}
}
