// Package health runs the readiness checks behind /health/ready: the schema
// catalogue and, when schemas come from it, the remote schema registry.
package health

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

// ErrCheckTimeout is reported for a check that outlives the registry timeout.
var ErrCheckTimeout = errors.New("health check timed out")

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds checkers by name. Registering a second checker under the
// same name replaces the first.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New creates an empty Registry whose checks each run for at most timeout.
// A non-positive timeout leaves checks bounded only by the caller's context.
func New(timeout time.Duration) *Registry {
	return &Registry{timeout: timeout, checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs every check concurrently and returns the outcome per name;
// nil means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := maps.Clone(r.checkers)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
		g       errgroup.Group
	)
	for name, checker := range checkers {
		g.Go(func() error {
			err := r.run(ctx, checker)
			mu.Lock()
			results[name] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// run bounds one check. A checker that ignores its context is abandoned once
// the deadline passes.
func (r *Registry) run(ctx context.Context, checker ports.HealthChecker) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() { done <- checker.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", checker.Name(), ErrCheckTimeout)
		}
		return ctx.Err()
	}
}

// Check adapts fn to ports.HealthChecker.
func Check(name string, fn func(context.Context) error) ports.HealthChecker {
	return checkFunc{name: name, fn: fn}
}

type checkFunc struct {
	name string
	fn   func(context.Context) error
}

func (c checkFunc) Name() string                          { return c.name }
func (c checkFunc) HealthCheck(ctx context.Context) error { return c.fn(ctx) }
