package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/dto"
)

// Timeout gives the handler a context deadline. The response is buffered;
// when the deadline passes first, the buffer is discarded and an RFC 9457
// 504 is written instead.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(buf, r)
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				buf.copyTo(w)
			case <-ctx.Done():
				buf.abandon()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", timeout, ctx.Err()))
			}
		})
	}
}

// bufferedResponse holds a handler's response until Timeout decides whether
// to send it. Writes after abandon are dropped.
type bufferedResponse struct {
	mu        sync.Mutex
	header    http.Header
	status    int
	body      []byte
	abandoned bool
}

func (b *bufferedResponse) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedResponse) abandon() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandoned = true
}

func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
