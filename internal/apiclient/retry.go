// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"math/rand/v2"
	"time"
)

// RetryPolicy controls ExecuteWithRetry.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int
	// Delay is the base backoff; attempt n waits Delay * 2^n.
	Delay time.Duration
	// MaxDelay caps a single wait. Zero means uncapped.
	MaxDelay time.Duration
	// RetryableStatuses decides retryability of API_ERROR responses.
	RetryableStatuses []int
	// Jitter adds up to Jitter*delay of random extra wait so that many
	// clients recovering at once do not retry in lockstep. Zero disables it.
	Jitter float64

	// Name labels the retry metric.
	Name string

	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns three retries starting at one second.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:        3,
		Delay:             time.Second,
		RetryableStatuses: DefaultRetryableStatuses,
		Jitter:            0.1,
	}
}

// Backoff returns the wait before the retry that follows attempt (0-based),
// jitter included.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	d := p.Delay << attempt
	if d < 0 || (p.MaxDelay > 0 && d > p.MaxDelay) {
		d = p.MaxDelay
	}
	if p.Jitter > 0 && d > 0 {
		d += time.Duration(rand.Float64() * p.Jitter * float64(d))
	}
	return d
}

// ShouldRetry reports whether apiErr is worth another attempt under p.
func (p RetryPolicy) ShouldRetry(apiErr *Error) bool {
	if apiErr == nil {
		return false
	}
	if apiErr.Code == CodeAPI && apiErr.StatusCode != 0 {
		statuses := p.RetryableStatuses
		if statuses == nil {
			statuses = DefaultRetryableStatuses
		}
		return statusIn(apiErr.StatusCode, statuses)
	}
	return apiErr.Retryable
}

// ExecuteWithRetry calls fn up to MaxRetries+1 times. It stops at the first
// success, at the first non-retryable error, or when ctx is done, and
// otherwise returns the last classified error.
func ExecuteWithRetry[T any](ctx context.Context, p RetryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr *Error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		res, err := fn(ctx)
		if err == nil {
			return res, nil
		}

		lastErr = Classify(ctx, err)
		if !p.ShouldRetry(lastErr) || attempt == p.MaxRetries {
			break
		}

		retriesTotal.WithLabelValues(p.Name).Inc()
		if sleepErr := sleep(ctx, p.Backoff(attempt)); sleepErr != nil {
			return zero, Classify(ctx, sleepErr)
		}
	}

	return zero, lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
