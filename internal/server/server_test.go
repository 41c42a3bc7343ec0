package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":               ":8080",
		"9000":           ":9000",
		":9000":          ":9000",
		"127.0.0.1:9000": "127.0.0.1:9000",
		" 7000 ":         ":7000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Fatalf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShutdownBeforeRun(t *testing.T) {
	var s Server
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown on idle server: %v", err)
	}
}

func TestNewHTTPServerTimeouts(t *testing.T) {
	srv := newHTTPServer(":1", nil)
	if srv.ReadHeaderTimeout != readHeaderTimeout || srv.WriteTimeout != writeTimeout ||
		srv.IdleTimeout != idleTimeout || srv.MaxHeaderBytes != maxHeaderBytes {
		t.Fatalf("unexpected server settings: %+v", srv)
	}
}

func TestRunShutdown(t *testing.T) {
	s := New("127.0.0.1:0", http.NotFoundHandler())
	if s.Addr() != "127.0.0.1:0" {
		t.Fatalf("Addr() = %q", s.Addr())
	}

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// Shutdown may land before ListenAndServe; both paths end Run cleanly.
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after shutdown", err)
		}
	case <-ctx.Done():
		t.Fatalf("Run did not return after shutdown")
	}
}

func TestRunUninitialized(t *testing.T) {
	var s Server
	if err := s.Run(); err == nil {
		t.Fatalf("expected error from zero Server")
	}
}
