package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/arimodu/shopper/internal/adapters/http/middleware"
	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/mocks"
)

const (
	cookieName   = "shopper_session"
	sessionToken = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
)

func TestRequireSession_ValidCookie(t *testing.T) {
	t.Parallel()
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Authenticate(mock.Anything, "tok-1").Return("user-1", nil)

	var gotUser, gotToken string
	handler := middleware.RequireSession(auth, cookieName)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = middleware.UserIDFromContext(r.Context())
		gotToken = middleware.SessionTokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/me", http.NoBody)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "tok-1"})
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if gotUser != "user-1" {
		t.Errorf("UserIDFromContext = %q, want %q", gotUser, "user-1")
	}
	if gotToken != "tok-1" {
		t.Errorf("SessionTokenFromContext = %q, want %q", gotToken, "tok-1")
	}
}

func TestRequireSession_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cookie     *http.Cookie
		token      string
		authErr    error
		wantStatus int
	}{
		{
			name:       "missing cookie",
			token:      "",
			authErr:    fmt.Errorf("missing session: %w", domain.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown token",
			cookie:     &http.Cookie{Name: cookieName, Value: "stale"},
			token:      "stale",
			authErr:    fmt.Errorf("unknown or expired session: %w", domain.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "session store down",
			cookie:     &http.Cookie{Name: cookieName, Value: "tok"},
			token:      "tok",
			authErr:    fmt.Errorf("Authenticate: %w", domain.ErrInternal),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			auth := mocks.NewMockAuthService(t)
			auth.EXPECT().Authenticate(mock.Anything, tt.token).Return("", tt.authErr)

			called := false
			handler := middleware.RequireSession(auth, cookieName)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/list/x", http.NoBody)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			handler.ServeHTTP(rec, req)

			if called {
				t.Error("wrapped handler ran without a valid session")
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want problem+json", ct)
			}
		})
	}
}

func TestUserIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	if got := middleware.UserIDFromContext(context.Background()); got != "" {
		t.Errorf("UserIDFromContext = %q, want empty string", got)
	}
	if got := middleware.SessionTokenFromContext(context.Background()); got != "" {
		t.Errorf("SessionTokenFromContext = %q, want empty string", got)
	}
}
