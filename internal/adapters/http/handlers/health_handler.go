package handlers

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// healthResponse is the body of both probes. Checks and Failing are only
// filled by the readiness probe.
type healthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Failing []string          `json:"failing,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live and always answers 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, healthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. It answers 503 while any dependency
// check fails and lists the failing checks by name.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := healthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	for _, name := range slices.Sorted(maps.Keys(results)) {
		if err := results[name]; err != nil {
			resp.Checks[name] = err.Error()
			resp.Failing = append(resp.Failing, name)
			continue
		}
		resp.Checks[name] = statusOK
	}

	code := http.StatusOK
	if len(resp.Failing) > 0 {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "not ready",
			slog.Any("failing", resp.Failing),
		)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
