package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
)

func TestLogging_AccessRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validations", strings.NewReader("workbook"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{
		"request handled",
		"method=POST",
		"path=/api/v1/validations",
		"status=200",
		"request_bytes=8",
		"response_bytes=14",
		"level=INFO",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogging_ServerErrorsAtErrorLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(statusHandler(http.StatusBadGateway))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/schemas/20200601", http.NoBody))

	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("log output = %q, want an error-level record", buf.String())
	}
}

func TestLogging_RequestScopedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(middleware.CorrelationID()(middleware.Logging(testLogger(&buf))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "validating workbook")
			w.WriteHeader(http.StatusOK)
		}),
	)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validations", http.NoBody)
	req.Header.Set("X-Request-ID", "req-77")
	req.Header.Set("X-Correlation-ID", "batch-3")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "request headers") {
			continue
		}
		if !strings.Contains(line, "request_id=req-77") || !strings.Contains(line, "correlation_id=batch-3") {
			t.Errorf("record missing IDs: %s", line)
		}
	}
}

func TestLogging_RedactsCredentialHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(statusHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schemas/20200601", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token-value")
	req.Header.Set("X-Api-Key", "k-123")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, "secret-token-value") || strings.Contains(out, "k-123") {
		t.Errorf("credentials leaked into log output:\n%s", out)
	}
	if !strings.Contains(out, "Authorization=[REDACTED]") {
		t.Errorf("log output missing redacted Authorization header:\n%s", out)
	}
	if !strings.Contains(out, "Accept=application/json") {
		t.Errorf("log output missing Accept header:\n%s", out)
	}
}

func TestLogging_NoHeadersAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	handler := middleware.Logging(logger)(statusHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if strings.Contains(buf.String(), "request headers") {
		t.Errorf("headers logged at info level:\n%s", buf.String())
	}
}
