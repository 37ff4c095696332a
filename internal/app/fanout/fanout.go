// Package fanout runs independent tasks concurrently with bounded
// parallelism and hands their results back in task order, so callers can
// merge concurrent work deterministically.
package fanout

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Task produces a single result.
type Task[R any] func(ctx context.Context) (R, error)

// Result holds the outcome of one task.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes tasks with at most limit running at once; limit < 1 runs all
// of them at once. Results are returned in the same order as tasks.
//
// A failing task does not cancel the others. A task that has not started
// when ctx is canceled records ctx.Err() and is never called.
//
// Run blocks until every task returns.
func Run[R any](ctx context.Context, limit int, tasks ...Task[R]) []Result[R] {
	results := make([]Result[R], len(tasks))
	if len(tasks) == 0 {
		return results
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := task(ctx)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Sequential executes tasks one after another on the calling goroutine,
// with the same result and cancellation semantics as Run.
func Sequential[R any](ctx context.Context, tasks ...Task[R]) []Result[R] {
	results := make([]Result[R], len(tasks))
	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		val, err := task(ctx)
		results[i] = Result[R]{Value: val, Err: err}
	}
	return results
}

// Values splits results into their values, in order, and the joined errors.
// Values of failed tasks are left as the zero value.
func Values[R any](results []Result[R]) ([]R, error) {
	values := make([]R, len(results))
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values[i] = r.Value
	}
	return values, errors.Join(errs...)
}
