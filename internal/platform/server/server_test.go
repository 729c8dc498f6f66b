package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := New("127.0.0.1:0", log.New(io.Discard, "", 0), mux, time.Second)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	// Give ListenAndServe a moment to bind before cancelling.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not stop after context cancellation")
	}
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	logger := log.New(&buf, "", 0)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	loggingMiddleware(logger, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("middleware must pass the request through, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "GET /v1/healthz") {
		t.Fatalf("expected request line in log output, got %q", buf.String())
	}
}
