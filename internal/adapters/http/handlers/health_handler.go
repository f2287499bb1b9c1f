package handlers

import (
	"log/slog"
	"net/http"

	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/platform/logging"
	"github.com/arimodu/shopper/internal/ports"
)

const (
	statusOK          = "ok"
	statusReady       = "ready"
	statusNotReady    = "not_ready"
	statusUnavailable = "unavailable"
)

// HealthHandler handles liveness and readiness HTTP endpoints. Readiness
// covers the storage backend and the session store.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every backend answers, 503
// otherwise. Failure details are logged and the body only says which
// backend is unavailable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	resp := dto.HealthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
			slog.String("component", name),
			slog.Any("error", err),
		)
		resp.Checks[name] = statusUnavailable
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, resp)
}
