package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/mirri-validator/internal/platform/config"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
)

// jitterFraction spreads each pause by up to ±25%.
const jitterFraction = 0.25

// retryPolicy decides whether a failed registry call is attempted again and
// how long to pause first.
type retryPolicy struct {
	attempts int
	initial  time.Duration
	max      time.Duration
	factor   float64

	// unit returns a value in [0, 1) and is replaced in tests.
	unit func() float64
	now  func() time.Time
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts: cfg.MaxAttempts,
		initial:  cfg.InitialInterval,
		max:      cfg.MaxInterval,
		factor:   cfg.Multiplier,
		unit:     rand.Float64, //nolint:gosec // jitter, not a secret
		now:      time.Now,
	}
}

// pause returns the delay before retry n, where n is 1 for the first retry.
// A Retry-After header on prev wins when it does not exceed the maximum
// interval.
func (p retryPolicy) pause(n int, prev *http.Response) time.Duration {
	if d, ok := retryAfter(prev, p.now()); ok && d <= p.max {
		return d
	}

	d := float64(p.initial) * math.Pow(p.factor, float64(n-1))
	d = min(d, float64(p.max))
	d += d * jitterFraction * (2*p.unit() - 1)
	return time.Duration(max(d, 0))
}

// retries reports whether a request with this method may be sent more than
// once.
func (p retryPolicy) retries(method string) bool {
	if p.attempts <= 1 {
		return false
	}
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// send runs req, retrying idempotent requests on transport errors and on
// retryable statuses. The body is buffered so every attempt sends it in full.
// When the final attempt still has a retryable status, the response is
// returned with its body open together with a non-nil error.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.attempts <= 0 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.attempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	attempts := 1
	if c.retry.retries(req.Method) {
		attempts = c.retry.attempts
	}

	var (
		prev    *http.Response
		lastErr error
	)
	for n := range attempts {
		if n > 0 {
			if err := c.sleep(ctx, req, n, prev, lastErr); err != nil {
				return nil, err
			}
		}
		rewind(req, body)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			prev = nil
			if !retryableErr(err) {
				return nil, err
			}
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("%s responded %s", c.serviceName, resp.Status)
		if n == attempts-1 {
			return resp, lastErr
		}
		discard(resp)
		prev = resp
	}
	return nil, lastErr
}

func (c *Client) sleep(ctx context.Context, req *http.Request, n int, prev *http.Response, cause error) error {
	d := c.retry.pause(n, prev)

	logging.FromContext(ctx).WarnContext(ctx, "retrying registry request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", d),
		slog.Any("error", cause),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains and closes resp so its connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryAfter parses a Retry-After header given either as delay seconds or as
// an HTTP date. Delays too long for a time.Duration saturate at its maximum.
func retryAfter(resp *http.Response, now time.Time) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		if int64(secs) > int64(math.MaxInt64/time.Second) {
			return time.Duration(math.MaxInt64), true
		}
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0), true
	}
	return 0, false
}

// retryableErr treats every transport error as transient except
// cancellation and deadline expiry.
func retryableErr(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	default:
		return code >= http.StatusInternalServerError && code != http.StatusNotImplemented
	}
}
