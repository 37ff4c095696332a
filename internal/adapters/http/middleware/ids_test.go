package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/middleware"
)

func serveIDs(t *testing.T, headers map[string]string) (requestID, correlationID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		requestID = middleware.RequestIDFromContext(r.Context())
		correlationID = middleware.CorrelationIDFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validations", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return requestID, correlationID, rec
}

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := serveIDs(t, nil)

	if _, err := uuid.Parse(reqID); err != nil {
		t.Errorf("request ID %q is not a UUID: %v", reqID, err)
	}
	if corrID != reqID {
		t.Errorf("correlation ID = %q, want fallback to request ID %q", corrID, reqID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != reqID {
		t.Errorf("X-Request-ID response header = %q, want %q", got, reqID)
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != reqID {
		t.Errorf("X-Correlation-ID response header = %q, want %q", got, reqID)
	}
}

func TestRequestID_Unique(t *testing.T) {
	t.Parallel()

	first, _, _ := serveIDs(t, nil)
	second, _, _ := serveIDs(t, nil)
	if first == second {
		t.Errorf("two requests got the same ID %q", first)
	}
}

func TestIDs_ReuseIncomingHeaders(t *testing.T) {
	t.Parallel()

	reqID, corrID, _ := serveIDs(t, map[string]string{
		"X-Request-ID":     "upload-42",
		"X-Correlation-ID": "curation-batch-7",
	})

	if reqID != "upload-42" {
		t.Errorf("request ID = %q, want %q", reqID, "upload-42")
	}
	if corrID != "curation-batch-7" {
		t.Errorf("correlation ID = %q, want %q", corrID, "curation-batch-7")
	}
}

func TestIDs_RejectMalformedHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"contains space", "a b"},
		{"contains newline", "a\nlevel=ERROR"},
		{"non ascii", "é"},
		{"too long", strings.Repeat("x", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reqID, corrID, _ := serveIDs(t, map[string]string{
				"X-Request-ID":     tt.value,
				"X-Correlation-ID": tt.value,
			})
			if reqID == tt.value {
				t.Errorf("request ID accepted malformed value %q", tt.value)
			}
			if corrID != reqID {
				t.Errorf("correlation ID = %q, want fallback %q", corrID, reqID)
			}
		})
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	if got := middleware.RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", got)
	}
}
