package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog_service/internal/service"
)

func TestAuthHandlers_SignIn(t *testing.T) {
	s, auth, _, _ := newMockService()
	auth.result = service.AuthResult{UserID: 42, Username: "u", Token: "tok123"}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(`{"username":"u","password":"p"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("sign-in status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Success      bool   `json:"success"`
		SessionToken string `json:"session_token"`
		UserID       int64  `json:"user_id"`
		Username     string `json:"username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Success || out.SessionToken != "tok123" || out.UserID != 42 || out.Username != "u" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if auth.lastUsername != "u" || auth.lastPassword != "p" {
		t.Fatalf("service got (%q,%q)", auth.lastUsername, auth.lastPassword)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("missing CORS header, got %q", got)
	}
}

func TestAuthHandlers_SignInErrors(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantMsg  string
	}{
		{name: "missing fields", body: `{"username":"u"}`, svcErr: service.ErrCredentialsRequired, wantCode: http.StatusBadRequest, wantMsg: "Username and password required"},
		{name: "empty body", body: ``, svcErr: service.ErrCredentialsRequired, wantCode: http.StatusBadRequest, wantMsg: "Username and password required"},
		{name: "wrong password", body: `{"username":"u","password":"x"}`, svcErr: service.ErrInvalidCredentials, wantCode: http.StatusUnauthorized, wantMsg: "Invalid credentials"},
		{name: "malformed json", body: `{"username":`, wantCode: http.StatusBadRequest, wantMsg: "Invalid JSON body"},
		{name: "store fault", body: `{"username":"u","password":"p"}`, svcErr: errors.New("db down"), wantCode: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, auth, _, _ := newMockService()
			auth.authErr = tc.svcErr
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.wantMsg {
				t.Fatalf("error=%q, want %q", out.Error, tc.wantMsg)
			}
		})
	}
}

func TestAuthHandlers_CheckSession(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		checkOK  bool
		wantCode int
		wantAuth bool
	}{
		{name: "present", header: "abc", checkOK: true, wantCode: http.StatusOK, wantAuth: true},
		{name: "missing", header: "", checkOK: false, wantCode: http.StatusUnauthorized, wantAuth: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, auth, _, _ := newMockService()
			auth.checkOK = tc.checkOK
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/auth", nil)
			if tc.header != "" {
				// lower-case on purpose: lookup is case-insensitive
				req.Header.Set("x-session-id", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d", w.Code, tc.wantCode)
			}
			var out struct {
				Authenticated bool `json:"authenticated"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.Authenticated != tc.wantAuth {
				t.Fatalf("authenticated=%v, want %v", out.Authenticated, tc.wantAuth)
			}
			if auth.lastSessionID != tc.header {
				t.Fatalf("service saw session id %q, want %q", auth.lastSessionID, tc.header)
			}
		})
	}
}
