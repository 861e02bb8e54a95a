// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/sethvargo/go-retry"
)

// Retry defaults for filtering-service calls.
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
)

// Retrier re-runs a failing call with exponential backoff: delay, 2*delay,
// 4*delay and so on, up to attempts calls in total.
//
// Every error is retried except duplicate-rule conflicts and context
// cancellation. Create and delete calls are re-issued like any other call,
// so callers must tolerate operations that partially succeeded before a
// transient failure.
type Retrier struct {
	attempts int
	delay    time.Duration
	logger   *logger.Logger
}

// NewRetrier builds a Retrier. attempts below 1 and non-positive delays fall
// back to the package defaults.
func NewRetrier(attempts int, delay time.Duration, log *logger.Logger) *Retrier {
	if attempts < 1 {
		attempts = DefaultRetryAttempts
	}
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Retrier{attempts: attempts, delay: delay, logger: log}
}

// Do calls fn until it succeeds, returns a non-retryable error, or the
// attempts are used up. On exhaustion the last error is returned unchanged.
// Each scheduled retry is logged as one warning naming op.
func (r *Retrier) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(uint64(r.attempts-1), retry.NewExponential(r.delay))

	attempt := 0
	wait := r.delay
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}

		if attempt < r.attempts {
			r.logger.Warn().
				Err(err).
				Str("op", op).
				Int("attempt", attempt).
				Int("max_attempts", r.attempts).
				Dur("wait", wait).
				Msg("request failed, retrying")
			wait *= 2
		}
		return retry.RetryableError(err)
	})
}

func retryable(err error) bool {
	if _, dup := IsDuplicateRule(err); dup {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
