package server

import (
	"context"
	"net/http"
	"testing"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"8080":  ":8080",
		":9090": ":9090",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Errorf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShutdownBeforeRun(t *testing.T) {
	var idle Server
	if err := idle.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown on zero server: %v", err)
	}

	s := New("0", http.NotFoundHandler())
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown before Run: %v", err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run after Shutdown should report a clean close, got %v", err)
	}
}

func TestNewHTTPServer(t *testing.T) {
	srv := newHTTPServer(":1", http.NotFoundHandler())
	if srv.ReadHeaderTimeout != readHeaderTimeout || srv.MaxHeaderBytes != maxHeaderBytes {
		t.Fatalf("limits not applied: %+v", srv)
	}
}
