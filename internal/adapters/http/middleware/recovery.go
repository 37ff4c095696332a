package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/dto"
)

// errPanic is what clients see instead of the panic value.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and, if nothing
// was written yet, an RFC 9457 500 response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)
				if !rec.wrote {
					dto.WriteErrorResponse(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
