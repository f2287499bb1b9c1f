package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/adapters/http/handlers"
	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/user"
	"github.com/arimodu/shopper/internal/ports"
	"github.com/arimodu/shopper/mocks"
)

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates user and sets cookie", func(t *testing.T) {
		t.Parallel()
		auth := mocks.NewMockAuthService(t)
		h := handlers.NewAuthHandler(auth, testCookie)

		auth.EXPECT().Register(mock.Anything, "alice", "pw").Return(&ports.AuthResult{
			User:  &user.User{ID: ownerID, Name: "alice", PasswordHash: "hash"},
			Token: "fresh-token",
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
			jsonBody(t, map[string]string{"name": "alice", "password": "pw"}))
		h.Register(rec, req)

		requireStatus(t, rec, http.StatusCreated)
		if strings.Contains(rec.Body.String(), "hash") {
			t.Errorf("body = %s, want no password hash", rec.Body.String())
		}
		resp := decodeJSON[dto.UserResponse](t, rec)
		if resp.ID != ownerID || resp.Name != "alice" {
			t.Errorf("body = %+v, want alice", resp)
		}

		c := sessionCookie(rec)
		if c == nil {
			t.Fatal("no session cookie set")
		}
		if c.Value != "fresh-token" || !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteStrictMode {
			t.Errorf("cookie = %+v, want HttpOnly Secure SameSite=Strict with token", c)
		}
	})

	t.Run("duplicate name is 409", func(t *testing.T) {
		t.Parallel()
		auth := mocks.NewMockAuthService(t)
		h := handlers.NewAuthHandler(auth, testCookie)

		auth.EXPECT().Register(mock.Anything, "alice", "pw").
			Return(nil, fmt.Errorf("user name %q: %w", "alice", domain.ErrConflict))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
			jsonBody(t, map[string]string{"name": "alice", "password": "pw"}))
		h.Register(rec, req)

		requireStatus(t, rec, http.StatusConflict)
		if sessionCookie(rec) != nil {
			t.Error("session cookie set on failed registration")
		}
	})

	t.Run("invalid body is 400", func(t *testing.T) {
		t.Parallel()
		h := handlers.NewAuthHandler(mocks.NewMockAuthService(t), testCookie)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{not json"))
		h.Register(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "unknown user", err: fmt.Errorf("user %q: %w", "alice", domain.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "wrong password", err: fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			auth := mocks.NewMockAuthService(t)
			h := handlers.NewAuthHandler(auth, testCookie)

			if tt.err != nil {
				auth.EXPECT().Login(mock.Anything, "alice", "pw").Return(nil, tt.err)
			} else {
				auth.EXPECT().Login(mock.Anything, "alice", "pw").Return(&ports.AuthResult{
					User:  &user.User{ID: ownerID, Name: "alice"},
					Token: "tok",
				}, nil)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				jsonBody(t, map[string]string{"name": "alice", "password": "pw"}))
			h.Login(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if got := sessionCookie(rec) != nil; got != (tt.err == nil) {
				t.Errorf("cookie set = %v, want %v", got, tt.err == nil)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Parallel()

	t.Run("destroys session and clears cookie", func(t *testing.T) {
		t.Parallel()
		auth := mocks.NewMockAuthService(t)
		h := handlers.NewAuthHandler(auth, testCookie)

		auth.EXPECT().Logout(mock.Anything, tokenVal).Return(nil)

		rec := httptest.NewRecorder()
		req := asCaller(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", http.NoBody), ownerID)
		h.Logout(rec, req)

		requireStatus(t, rec, http.StatusNoContent)
		c := sessionCookie(rec)
		if c == nil || c.MaxAge >= 0 {
			t.Errorf("cookie = %+v, want expired session cookie", c)
		}
	})

	t.Run("store failure is 500", func(t *testing.T) {
		t.Parallel()
		auth := mocks.NewMockAuthService(t)
		h := handlers.NewAuthHandler(auth, testCookie)

		auth.EXPECT().Logout(mock.Anything, tokenVal).Return(errors.New("Logout: internal error"))

		rec := httptest.NewRecorder()
		req := asCaller(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", http.NoBody), ownerID)
		h.Logout(rec, req)

		requireStatus(t, rec, http.StatusInternalServerError)
	})
}
