// Package registry is the outbound adapter for a remote schema registry. It
// fetches field catalogues over HTTP and translates registry responses into
// domain schemas and domain errors.
package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/schemas"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/httpclient"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

// ServiceName identifies the registry in traces, metrics and health checks.
const ServiceName = "schema-registry"

// maxSchemaBodySize limits how much of a schema document we read.
const maxSchemaBodySize = 4 << 20

// Compile-time interface checks.
var (
	_ ports.SchemaSource  = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client implements ports.SchemaSource against a schema registry serving
// GET /api/v1/schemas/{version}. The underlying httpclient.Client provides
// circuit breaking, retry, rate limiting and tracing.
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// NewClient creates a Client. A nil logger discards log output.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{http: client, logger: logger}
}

// Schema fetches and validates the schema for version.
// Returns domain.ErrNotFound if the registry does not know the version and
// domain.ErrUnavailable when the registry is failing.
func (c *Client) Schema(ctx context.Context, version string) (*schema.Schema, error) {
	path := "/api/v1/schemas/" + url.PathEscape(version)

	req, err := c.http.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	var doc schemas.Document
	if err := c.execute(req, &doc); err != nil {
		return nil, err
	}

	s, err := doc.Schema()
	if err != nil {
		c.logger.ErrorContext(ctx, "registry returned an invalid schema",
			slog.String("schema_version", version),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("schema %s from registry: %w", version, err)
	}
	if s.Version() != version {
		return nil, fmt.Errorf("registry returned version %s for %s", s.Version(), version)
	}
	return s, nil
}

// execute sends req, translates non-200 responses and decodes the body into
// out. The response body is always closed.
func (c *Client) execute(req *http.Request, out any) error {
	ctx := req.Context()

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}
	if err != nil {
		// httpclient.Do returns both resp and err when retries are exhausted
		// on a retryable status; prefer the translated domain error.
		if resp != nil && resp.StatusCode != http.StatusOK {
			return TranslateHTTPError(resp)
		}
		c.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSchemaBodySize)).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

// Name returns the identifier used when this component is registered with a
// ports.HealthRegistry.
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck reports the registry's availability from the circuit breaker
// state. No network call is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
