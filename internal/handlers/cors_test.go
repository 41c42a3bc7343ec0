package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPreflight(t *testing.T) {
	cases := []struct {
		path        string
		wantMethods string
		wantHeaders string
	}{
		{path: "/auth", wantMethods: "GET, POST, OPTIONS", wantHeaders: "Content-Type, X-Session-Id"},
		{path: "/admin", wantMethods: "POST, OPTIONS", wantHeaders: "Content-Type"},
		{path: "/catalog", wantMethods: "GET, OPTIONS", wantHeaders: "Content-Type"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			s, _, admin, catalog := newMockService()
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, tc.path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, want 200", w.Code)
			}
			if w.Body.Len() != 0 {
				t.Fatalf("expected empty body, got %q", w.Body.String())
			}
			h := w.Header()
			if h.Get("Access-Control-Allow-Origin") != "*" ||
				h.Get("Access-Control-Allow-Methods") != tc.wantMethods ||
				h.Get("Access-Control-Allow-Headers") != tc.wantHeaders ||
				h.Get("Access-Control-Max-Age") != "86400" {
				t.Fatalf("unexpected CORS headers: %v", h)
			}
			if admin.userCalls+admin.itemCalls+catalog.calls != 0 {
				t.Fatalf("preflight must not reach services")
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	cases := []struct{ method, path string }{
		{http.MethodGet, "/admin"},
		{http.MethodPut, "/admin"},
		{http.MethodPost, "/catalog"},
		{http.MethodDelete, "/catalog"},
		{http.MethodPatch, "/auth"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			s, _, _, _ := newMockService()
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != http.StatusMethodNotAllowed {
				t.Fatalf("status=%d, want 405", w.Code)
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != "Method not allowed" {
				t.Fatalf("error=%q", out.Error)
			}
			if w.Header().Get("Access-Control-Allow-Origin") != "*" {
				t.Fatalf("405 response missing CORS header")
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	s, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "req-1")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "req-1" {
		t.Fatalf("request id = %q, want req-1", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if got := w.Header().Get(requestIDHeader); len(got) != 36 {
		t.Fatalf("expected generated uuid, got %q", got)
	}
}
