// Package retry is a small combinator for bounded retries with backoff.
// Sleeping is injected so callers' tests run without real timers.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Result tags a successful run with the attempt that produced it.
type Result struct {
	Attempt int
}

// BackoffFunc returns how long to wait after the given failed attempt
// (1-based) before the next one.
type BackoffFunc func(attempt int) time.Duration

// Linear waits attempt * unit between attempts: 1s, 2s, ... for a 1s unit.
func Linear(unit time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * unit
	}
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration)

// Sleep is the production SleepFunc.
func Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Permanent wraps err so Do stops retrying immediately. Configuration
// mistakes are the typical case: retrying them burns every attempt in
// milliseconds without telling the operator anything new.
func Permanent(err error) error {
	return &permanentError{err: err}
}

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Do runs fn up to maxAttempts times, sleeping backoff(attempt) between
// failures. The first success short-circuits. When every attempt fails, the
// returned error names the attempt count and wraps the last failure so its
// message survives to the operator.
func Do(ctx context.Context, maxAttempts int, backoff BackoffFunc, sleep SleepFunc, fn func(ctx context.Context) error) (Result, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return Result{}, fmt.Errorf("canceled after %d attempts: %w", attempt-1, lastErr)
			}
			return Result{}, err
		}

		err := fn(ctx)
		if err == nil {
			return Result{Attempt: attempt}, nil
		}
		lastErr = err

		var perm *permanentError
		if errors.As(err, &perm) {
			return Result{}, perm.err
		}
		if attempt < maxAttempts {
			sleep(ctx, backoff(attempt))
		}
	}
	return Result{}, fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}
