package handlers

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
)

// writeJSON encodes v with the given status. Encoding failures can only be
// logged since the status line has already been sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "encoding response body",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}
