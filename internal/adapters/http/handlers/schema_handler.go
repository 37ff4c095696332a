package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

// SchemaHandler serves field catalogues.
type SchemaHandler struct {
	svc ports.ValidationService
}

// NewSchemaHandler creates a new SchemaHandler.
func NewSchemaHandler(svc ports.ValidationService) *SchemaHandler {
	return &SchemaHandler{svc: svc}
}

// GetSchema handles GET /api/v1/schemas/{version}. The version "default"
// selects the configured default schema.
func (h *SchemaHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	if version == "default" {
		version = ""
	}

	s, err := h.svc.Schema(r.Context(), version)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSchemaResponse(s))
}
