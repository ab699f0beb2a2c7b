// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
)

// Do guards fn with the breaker and retries it inside the guard, so one
// logical call counts as at most one breaker failure.
func Do[T any](ctx context.Context, b *CircuitBreaker, p RetryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	return Execute(ctx, b, func(ctx context.Context) (T, error) {
		return ExecuteWithRetry(ctx, p, fn)
	})
}

// Call sends one logical request through breaker and retry and decodes the
// JSON response into T.
func Call[T any](ctx context.Context, c *Client, b *CircuitBreaker, p RetryPolicy, method, path string, opts RequestOptions) (T, error) {
	if p.Name == "" {
		p.Name = c.Name()
	}

	return Do(ctx, b, p, func(ctx context.Context) (T, error) {
		resp, err := c.Request(ctx, method, path, opts)
		if err != nil {
			var zero T
			return zero, err
		}
		return DecodeJSON[T](resp)
	})
}
