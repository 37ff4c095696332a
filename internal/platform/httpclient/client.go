// Package httpclient is the outbound HTTP client used for the schema
// registry. Each call passes through, in order:
//
//	Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → Retry → HTTP
//
// Only idempotent methods are retried. A Retry-After header from the
// registry overrides the computed backoff when it fits the maximum interval.
//
//	client := httpclient.New(&cfg.Schema.Registry, "schema-registry", metrics, logger)
//	req, _ := client.NewRequest(ctx, http.MethodGet, "/api/v1/schemas/20200601", nil)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores the request and correlation IDs with
// WithRequestID and WithCorrelationID so they travel with outbound calls.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/mirri-validator/internal/platform/config"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/telemetry"
)

type ctxKey uint8

const (
	requestIDKey ctxKey = iota + 1
	correlationIDKey
)

// Outcomes recorded on the client request metrics.
const (
	resultSuccess     = "success"
	resultError       = "error"
	resultCircuitOpen = "circuit_open"
)

// WithRequestID stores the inbound request ID for forwarding as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID stores the correlation ID for forwarding as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// Client sends requests to one downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	apiKey      string

	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil disables rate limiting
	retry   retryPolicy

	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Client for the service described by cfg. serviceName labels
// spans, metrics and health results. A nil metrics skips recording.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		apiKey:      cfg.APIKey,
		breaker:     newBreaker(serviceName, cfg.CircuitBreaker, logger),
		limiter:     limiter,
		retry:       newRetryPolicy(cfg.Retry),
		metrics:     metrics,
		logger:      logger,
	}
}

func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req. A non-retryable response is returned with a nil error and
// an open body. When retries run out on a retryable status, both the last
// response and an error are returned; the caller still closes the body.
// Breaker rejections and transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}
		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		var sendErr error
		resp, sendErr = c.send(spanCtx, req.WithContext(spanCtx)) //nolint:bodyclose // returned to the caller
		endSpan(span, resp, sendErr)
		return struct{}{}, sendErr
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// NewRequest builds a request for path relative to the base URL. Path
// segments are escaped individually; a query string in path is kept.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parsing request path %q: %w", path, err)
	}
	target, err := url.JoinPath(c.baseURL, rel.Path)
	if err != nil {
		return nil, fmt.Errorf("joining %q to base URL: %w", path, err)
	}
	if rel.RawQuery != "" {
		target += "?" + rel.RawQuery
	}
	if body == nil {
		body = http.NoBody
	}
	return http.NewRequestWithContext(ctx, method, target, body)
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service name.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports the breaker state without calling the service: closed
// is healthy, half-open is degraded and open is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	for key, header := range map[ctxKey]string{
		requestIDKey:     "X-Request-ID",
		correlationIDKey: "X-Correlation-ID",
	} {
		if id, _ := ctx.Value(key).(string); id != "" {
			req.Header.Set(header, id)
		}
	}
}

// startSpan opens a client span and writes the W3C trace context into the
// request headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer("mirri-validator/httpclient").Start(ctx,
		"HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			attribute.String("url.path", req.URL.Path),
			telemetry.AttrPeerService.String(c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result(resp, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func result(resp *http.Response, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return resultCircuitOpen
	case resp != nil && resp.StatusCode < http.StatusBadRequest:
		return resultSuccess
	default:
		return resultError
	}
}

// clampUint32 converts v for gobreaker, treating negatives as zero.
func clampUint32(v int) uint32 {
	return uint32(min(max(v, 0), math.MaxUint32)) //nolint:gosec // clamped above
}
