package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arimodu/shopper/internal/adapters/http/handlers"
	"github.com/arimodu/shopper/internal/adapters/http/middleware"
	"github.com/arimodu/shopper/internal/domain/list"
)

const (
	ownerID  = "5d0f6a3e-8c1b-4f2a-9e7d-3b4c5a6d7e8f"
	guestID  = "7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
	listID   = "c2d3e4f5-a6b7-4c8d-9e0f-1a2b3c4d5e6f"
	itemID   = "e1f2a3b4-c5d6-4e7f-8a9b-0c1d2e3f4a5b"
	tokenVal = "session-token"
)

var testCookie = handlers.SessionCookie{Name: "shopper_session", Secure: true, TTL: time.Hour}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asCaller attaches an authenticated session to r as RequireSession would.
func asCaller(r *http.Request, userID string) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), userID, tokenVal))
}

func groceries() *list.List {
	return &list.List{
		ID:    listID,
		Name:  "Groceries",
		Owner: ownerID,
		Items: []list.Item{
			{ID: itemID, Order: 1, Content: "Milk"},
		},
		InvitedUsers: []string{guestID},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// sessionCookie returns the session cookie set on the response, or nil.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie.Name {
			return c
		}
	}
	return nil
}
