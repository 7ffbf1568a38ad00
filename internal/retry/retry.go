// Package retry provides a bounded exponential-backoff executor for calls to
// external collaborators.
package retry

import (
	"context"
	"errors"
	"time"
)

// Config controls how an operation is retried.
type Config struct {
	// MaxAttempts is the total number of times the operation may run.
	MaxAttempts int

	// BaseDelay is the wait after the first failure. The wait doubles after
	// each subsequent failure.
	BaseDelay time.Duration

	// MaxDelay caps the doubled wait. Zero means no cap.
	MaxDelay time.Duration

	// RetryIf decides whether a failure is worth retrying. Nil retries
	// every failure.
	RetryIf func(error) bool

	// sleep is replaced in tests to avoid real waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// Do runs op until it succeeds, the attempts are exhausted, or ctx is done.
// Between failures it waits BaseDelay * 2^(attempt-1), capped at MaxDelay.
// The last error is returned unchanged after exhaustion; op never runs more
// than MaxAttempts times and never runs again after a success. Cancellation
// during a wait returns ctx's error joined with the last operation error.
func Do(ctx context.Context, cfg Config, op func(ctx context.Context) error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	sleep := cfg.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	delay := cfg.BaseDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}
		// Cancellation wins, but the failure that put us in the wait is
		// still part of the story.
		if err := sleep(ctx, delay); err != nil {
			return errors.Join(err, lastErr)
		}
		delay *= 2
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return lastErr
}

// sleepCtx waits for d without blocking other goroutines, aborting early when
// ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
