package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/arimodu/shopper/internal/adapters/http/middleware"
	"github.com/arimodu/shopper/internal/platform/logging"
)

func TestLogging_RequestLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/list/create", http.NoBody)
	req.Header.Set("Cookie", "shopper_session="+sessionToken)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	for _, want := range []string{
		`msg="request started"`,
		`msg="request completed"`,
		"method=POST",
		"path=/api/v1/list/create",
		"status=201",
		"duration=",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, sessionToken) {
		t.Errorf("log output leaks the session cookie:\n%s", output)
	}
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "list loaded")
		})),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/list/l1", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var handlerLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "list loaded") {
			handlerLine = line
		}
	}
	if handlerLine == "" {
		t.Fatalf("handler log not written through the context logger:\n%s", buf.String())
	}
	for _, want := range []string{"request_id=req-log-test", "correlation_id=corr-log-test"} {
		if !strings.Contains(handlerLine, want) {
			t.Errorf("handler line = %q, want %s", handlerLine, want)
		}
	}
}

func TestLogging_CompletionLevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{name: "success", path: "/api/v1/user/me", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client error", path: "/api/v1/list/x", status: http.StatusForbidden, wantLevel: "level=WARN"},
		{name: "server error", path: "/api/v1/list/x", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
		{name: "health probe", path: "/health/live", status: http.StatusOK, wantLevel: "level=DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			var completion string
			for _, line := range strings.Split(buf.String(), "\n") {
				if strings.Contains(line, "request completed") {
					completion = line
				}
			}
			if !strings.Contains(completion, tt.wantLevel) {
				t.Errorf("completion line = %q, want %s", completion, tt.wantLevel)
			}
		})
	}
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/api/v1/item/{itemId}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"i1"}`))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/item/i1", http.NoBody))

	output := buf.String()
	if !strings.Contains(output, "route=/api/v1/item/{itemId}") {
		t.Errorf("log output missing route pattern, got: %s", output)
	}
	if !strings.Contains(output, "bytes=11") {
		t.Errorf("log output missing byte count, got: %s", output)
	}
}
