// Package resilience provides retry of transient backend failures
// using fortify.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"github.com/laokip/advisor/domain/genai"
)

// errPermanent marks an error fortify must not retry. It never escapes
// this package; Do always returns the operation's own error.
var errPermanent = errors.New("permanent failure")

// Config configures the retry executor.
type Config struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// InitialDelay is the backoff before the first retry. Each
	// subsequent retry doubles it; there is no jitter and no cap.
	InitialDelay time.Duration
}

// DefaultConfig returns the default retry configuration: 3 retries at
// 3s/6s/12s, so at most 4 attempts and 21s of backoff per call.
func DefaultConfig() Config {
	return Config{
		MaxRetries:   3,
		InitialDelay: 3 * time.Second,
	}
}

// Executor retries an operation on transient upstream failures and
// fails fast on permanent ones.
type Executor[T any] struct {
	retrier retry.Retry[T]
}

// New creates a retry executor with the given configuration.
func New[T any](cfg Config) *Executor[T] {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = 3 * time.Second
	}

	return &Executor[T]{
		retrier: retry.New[T](retry.Config{
			MaxAttempts:        cfg.MaxRetries + 1,
			InitialDelay:       cfg.InitialDelay,
			BackoffPolicy:      retry.BackoffExponential,
			Multiplier:         2.0,
			NonRetryableErrors: []error{errPermanent},
		}),
	}
}

// Do runs op, retrying while genai.IsTransient classifies the failure
// as retryable and attempts remain. The operation's original error is
// propagated unchanged, so callers can still inspect its classification.
// If ctx is cancelled while waiting to retry, Do returns the context
// error instead.
func (e *Executor[T]) Do(ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	var lastErr error

	result, err := e.retrier.Do(ctx, func(ctx context.Context) (T, error) {
		v, opErr := op(ctx)
		if opErr == nil {
			lastErr = nil
			return v, nil
		}

		lastErr = opErr
		if !genai.IsTransient(opErr) {
			// Marked so fortify stops immediately; unwrapped below.
			return v, fmt.Errorf("%w: %v", errPermanent, opErr)
		}
		return v, opErr
	})

	if err != nil && lastErr != nil {
		// A cancellation during backoff surfaces as the context error,
		// not as the prior transient failure.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return result, err
		}
		return result, lastErr
	}
	return result, err
}
