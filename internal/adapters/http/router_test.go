package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/arimodu/shopper/internal/adapters/http"
	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/adapters/http/handlers"
	"github.com/arimodu/shopper/internal/adapters/http/middleware"
	sessionmem "github.com/arimodu/shopper/internal/adapters/session/memory"
	storagemem "github.com/arimodu/shopper/internal/adapters/storage/memory"
	"github.com/arimodu/shopper/internal/app"
	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/platform/password"
	"github.com/arimodu/shopper/internal/ports"
	"github.com/arimodu/shopper/mocks"
)

var testCookie = handlers.SessionCookie{Name: "shopper_session", TTL: time.Hour}

// newRoutes wires handlers over the given service ports.
func newRoutes(auth ports.AuthService, account ports.AccountService, lists ports.ListService, registry ports.HealthRegistry) adapthttp.Routes {
	return adapthttp.Routes{
		Auth:           handlers.NewAuthHandler(auth, testCookie),
		User:           handlers.NewUserHandler(account, auth, testCookie),
		List:           handlers.NewListHandler(lists),
		Item:           handlers.NewItemHandler(lists),
		Health:         handlers.NewHealthHandler(registry),
		RequireSession: middleware.RequireSession(auth, testCookie.Name),
	}
}

func newMockRouter(t *testing.T) (http.Handler, *mocks.MockAuthService, *mocks.MockHealthRegistry) {
	t.Helper()
	auth := mocks.NewMockAuthService(t)
	registry := mocks.NewMockHealthRegistry(t)
	rt := newRoutes(auth, mocks.NewMockAccountService(t), mocks.NewMockListService(t), registry)
	return adapthttp.NewRouter(rt), auth, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newMockRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodGet, "/api/v1/user/me"},
		{http.MethodPatch, "/api/v1/user/me"},
		{http.MethodDelete, "/api/v1/user/me"},
		{http.MethodPost, "/api/v1/list/create"},
		{http.MethodGet, "/api/v1/list/{listId}"},
		{http.MethodPatch, "/api/v1/list/{listId}"},
		{http.MethodDelete, "/api/v1/list/{listId}"},
		{http.MethodPut, "/api/v1/list/acl"},
		{http.MethodDelete, "/api/v1/list/acl"},
		{http.MethodPost, "/api/v1/item/create"},
		{http.MethodGet, "/api/v1/item/{itemId}"},
		{http.MethodPatch, "/api/v1/item/{itemId}"},
		{http.MethodDelete, "/api/v1/item/{itemId}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	auth := mocks.NewMockAuthService(t)
	registry := mocks.NewMockHealthRegistry(t)
	rt := newRoutes(auth, mocks.NewMockAccountService(t), mocks.NewMockListService(t), registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(rt, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_SessionRequired(t *testing.T) {
	t.Parallel()

	router, auth, _ := newMockRouter(t)
	auth.EXPECT().Authenticate(mock.Anything, "").Return("", errNoSession())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/me", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newMockRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newMockRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/auth/login", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

// client drives the router as one browser: it replays the session cookie it
// was last given.
type client struct {
	t      *testing.T
	router http.Handler
	cookie *http.Cookie
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == testCookie.Name {
			if ck.MaxAge < 0 {
				c.cookie = nil
			} else {
				c.cookie = ck
			}
		}
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

func TestRouter_GroceriesEndToEnd(t *testing.T) {
	t.Parallel()

	store := storagemem.New()
	sessions := sessionmem.New()
	auth := app.NewAuthService(store, sessions, password.New(4), time.Hour, discardLogger())
	account := app.NewAccountService(store, password.New(4), discardLogger())
	lists := app.NewListService(store, discardLogger())
	router := adapthttp.NewRouter(newRoutes(auth, account, lists, mocks.NewMockHealthRegistry(t)))

	a := &client{t: t, router: router}
	b := &client{t: t, router: router}
	c := &client{t: t, router: router}

	rec := a.do(http.MethodPost, "/api/v1/auth/register", map[string]string{"name": "A", "password": "pw-a"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = b.do(http.MethodPost, "/api/v1/auth/register", map[string]string{"name": "B", "password": "pw-b"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	userB := decode[dto.UserResponse](t, rec)
	rec = c.do(http.MethodPost, "/api/v1/auth/register", map[string]string{"name": "C", "password": "pw-c"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(http.MethodPost, "/api/v1/auth/register", map[string]string{"name": "A", "password": "again"})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"name": "A", "password": "pw-a"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodPost, "/api/v1/list/create", map[string]string{"name": "Groceries"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	l := decode[dto.ListResponse](t, rec)
	require.Empty(t, l.Items)
	require.Empty(t, l.InvitedUsers)

	rec = a.do(http.MethodPost, "/api/v1/item/create", map[string]any{"list_id": l.ID, "order": 1, "content": "Milk"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	l = decode[dto.ListResponse](t, rec)
	require.Len(t, l.Items, 1)
	require.False(t, l.Items[0].IsDone)
	milk := l.Items[0].ID

	rec = a.do(http.MethodPut, "/api/v1/list/acl", map[string]string{"list_id": l.ID, "user_id": userB.ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = b.do(http.MethodGet, "/api/v1/list/"+l.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = b.do(http.MethodPost, "/api/v1/item/create", map[string]any{"list_id": l.ID, "order": 2, "content": "Eggs"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	l = decode[dto.ListResponse](t, rec)
	require.Len(t, l.Items, 2)
	eggs := l.Items[1].ID

	rec = c.do(http.MethodGet, "/api/v1/list/"+l.ID, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = b.do(http.MethodPatch, "/api/v1/item/"+milk, map[string]bool{"is_done": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	l = decode[dto.ListResponse](t, rec)
	require.True(t, l.Items[0].IsDone)
	require.Equal(t, "Milk", l.Items[0].Content)
	require.Equal(t, 1, l.Items[0].Order)

	rec = a.do(http.MethodDelete, "/api/v1/list/"+l.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	for _, id := range []string{milk, eggs} {
		rec = a.do(http.MethodGet, "/api/v1/item/"+id, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	rec = b.do(http.MethodGet, "/api/v1/user/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[dto.OverviewResponse](t, rec)
	require.Empty(t, me.InvitedLists)

	rec = a.do(http.MethodPatch, "/api/v1/user/me", map[string]string{"password": "changed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Nil(t, a.cookie)
	rec = a.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"name": "A", "password": "changed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = a.do(http.MethodGet, "/api/v1/user/me", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func errNoSession() error {
	return fmt.Errorf("missing session: %w", domain.ErrUnauthorized)
}
