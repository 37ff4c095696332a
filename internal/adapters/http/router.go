// Package http is the validator's inbound HTTP adapter: routes, server
// lifecycle and the handlers below it.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/handlers"
)

// NewRouter registers the probe and API routes behind middlewares, applied
// in the order given. Unknown routes and methods answer with problem
// documents.
func NewRouter(
	validationHandler *handlers.ValidationHandler,
	schemaHandler *handlers.SchemaHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatus(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatus(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported on "+r.URL.Path)
	})

	// Probes sit outside the versioned API.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/validations", validationHandler.Validate)
		r.Get("/schemas/{version}", schemaHandler.GetSchema)
	})

	return r
}
