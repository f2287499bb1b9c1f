package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestResponseWriter_Records(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		drive       func(rw *responseWriter)
		wantStatus  int
		wantBytes   int64
		wantWritten bool
	}{
		{
			name:       "untouched",
			drive:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:        "no content",
			drive:       func(rw *responseWriter) { rw.WriteHeader(http.StatusNoContent) },
			wantStatus:  http.StatusNoContent,
			wantWritten: true,
		},
		{
			name: "second status ignored",
			drive: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusCreated)
				rw.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus:  http.StatusCreated,
			wantWritten: true,
		},
		{
			name: "body chunks summed",
			drive: func(rw *responseWriter) {
				_, _ = rw.Write([]byte(`{"id":`))
				_, _ = rw.Write([]byte(`"x"}`))
			},
			wantStatus:  http.StatusOK,
			wantBytes:   10,
			wantWritten: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.drive(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rw.written != tt.wantBytes {
				t.Errorf("written = %d, want %d", rw.written, tt.wantBytes)
			}
			if rw.headerWritten != tt.wantWritten {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, tt.wantWritten)
			}
			if tt.wantWritten && rec.Code != tt.wantStatus {
				t.Errorf("recorder status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestResponseWriter_ControllerReachesRecorder(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if err := http.NewResponseController(rw).Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if !rec.Flushed {
		t.Error("recorder not flushed through Unwrap")
	}
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	var got string
	r := chi.NewRouter()
	r.Get("/api/v1/list/{listId}", func(_ http.ResponseWriter, req *http.Request) {
		got = routePattern(req)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/list/5f0c", http.NoBody))
	if got != "/api/v1/list/{listId}" {
		t.Errorf("routePattern() = %q, want %q", got, "/api/v1/list/{listId}")
	}

	plain := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
	if p := routePattern(plain); p != "/health/live" {
		t.Errorf("routePattern() outside chi = %q, want %q", p, "/health/live")
	}

	r.NotFound(func(_ http.ResponseWriter, req *http.Request) { got = routePattern(req) })
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/123", http.NoBody))
	if got != "unmatched" {
		t.Errorf("routePattern() for 404 = %q, want %q", got, "unmatched")
	}
}
