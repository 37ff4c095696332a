package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
)

// Logging stores a request-scoped logger carrying the request and
// correlation IDs in the context and writes one access record per request.
// Server errors are logged at error level. Headers are logged at debug
// level with credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request headers", headerAttrs(r.Header)...)
			}

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			reqLogger.Log(ctx, level, "request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int64("request_bytes", r.ContentLength),
				slog.Int("status", rec.status),
				slog.Int64("response_bytes", rec.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// headerAttrs renders headers in name order, replacing the values of
// logging.SensitiveHeaders with "[REDACTED]".
func headerAttrs(h http.Header) []any {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		value := strings.Join(h.Values(name), ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
