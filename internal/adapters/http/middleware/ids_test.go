package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/arimodu/shopper/internal/adapters/http/middleware"
)

type seenIDs struct {
	request     string
	correlation string
}

// serveIDs runs RequestID then CorrelationID with the given inbound headers
// and reports what the handler saw.
func serveIDs(t *testing.T, headers map[string]string) (seenIDs, *httptest.ResponseRecorder) {
	t.Helper()

	var seen seenIDs
	h := middleware.RequestID()(middleware.CorrelationID()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen.request = middleware.RequestIDFromContext(r.Context())
			seen.correlation = middleware.CorrelationIDFromContext(r.Context())
		}),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/me", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func isGenerated(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func TestIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		headers         map[string]string
		wantRequest     string // "" means a generated UUID
		wantCorrelation string // "" means equal to the request ID
	}{
		{
			name: "none supplied",
		},
		{
			name:        "request id reused",
			headers:     map[string]string{"X-Request-ID": "edge-7f3a.1"},
			wantRequest: "edge-7f3a.1",
		},
		{
			name:            "both reused",
			headers:         map[string]string{"X-Request-ID": "req_1", "X-Correlation-ID": "checkout-42"},
			wantRequest:     "req_1",
			wantCorrelation: "checkout-42",
		},
		{
			name:    "log injection replaced",
			headers: map[string]string{"X-Request-ID": "abc\nlevel=ERROR msg=forged"},
		},
		{
			name:    "oversized replaced",
			headers: map[string]string{"X-Request-ID": strings.Repeat("a", 129)},
		},
		{
			name:    "malformed correlation falls back",
			headers: map[string]string{"X-Correlation-ID": "two words"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seen, rec := serveIDs(t, tt.headers)

			if tt.wantRequest == "" {
				if !isGenerated(seen.request) {
					t.Errorf("request id = %q, want a generated UUID", seen.request)
				}
			} else if seen.request != tt.wantRequest {
				t.Errorf("request id = %q, want %q", seen.request, tt.wantRequest)
			}

			wantCorr := tt.wantCorrelation
			if wantCorr == "" {
				wantCorr = seen.request
			}
			if seen.correlation != wantCorr {
				t.Errorf("correlation id = %q, want %q", seen.correlation, wantCorr)
			}

			if got := rec.Header().Get("X-Request-ID"); got != seen.request {
				t.Errorf("X-Request-ID header = %q, want %q", got, seen.request)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != seen.correlation {
				t.Errorf("X-Correlation-ID header = %q, want %q", got, seen.correlation)
			}
		})
	}
}

func TestRequestID_FreshPerRequest(t *testing.T) {
	t.Parallel()

	first, _ := serveIDs(t, nil)
	second, _ := serveIDs(t, nil)
	if first.request == second.request {
		t.Errorf("two requests share id %q", first.request)
	}
}

func TestIDsFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := middleware.RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("CorrelationIDFromContext(empty) = %q, want empty", got)
	}

	ctx = middleware.WithCorrelationID(middleware.WithRequestID(ctx, "r"), "c")
	if got := middleware.RequestIDFromContext(ctx); got != "r" {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, "r")
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "c" {
		t.Errorf("CorrelationIDFromContext() = %q, want %q", got, "c")
	}
}
