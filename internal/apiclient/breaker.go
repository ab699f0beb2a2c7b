// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
)

// State is the externally visible breaker state.
type State string

const (
	StateClosed State = "CLOSED"
	StateOpen   State = "OPEN"
)

// BreakerConfig tunes a CircuitBreaker.
type BreakerConfig struct {
	// Threshold is the number of consecutive failures that opens the breaker.
	Threshold int
	// ResetTimeout is how long the breaker stays open after the last failure.
	ResetTimeout time.Duration
}

// DefaultBreakerConfig opens after three failures for one minute.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{Threshold: 3, ResetTimeout: time.Minute}
}

// CircuitBreaker fails fast while a dependency is known to be failing.
// Create one per upstream and keep it for the process lifetime.
//
// After ResetTimeout the next call is let through as a trial: success closes
// the breaker, failure re-opens it with a fresh timer.
type CircuitBreaker struct {
	name string
	cfg  BreakerConfig

	mu          sync.Mutex
	state       State
	failures    int
	lastFailure time.Time

	now    func() time.Time
	logger *logger.Logger
}

// NewCircuitBreaker returns a closed breaker. Non-positive config values are
// replaced with the defaults.
func NewCircuitBreaker(name string, cfg BreakerConfig, log *logger.Logger) *CircuitBreaker {
	def := DefaultBreakerConfig()
	if cfg.Threshold <= 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = def.ResetTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	breakerOpen.WithLabelValues(name).Set(0)

	return &CircuitBreaker{
		name:   name,
		cfg:    cfg,
		state:  StateClosed,
		now:    time.Now,
		logger: log,
	}
}

// Name returns the breaker label.
func (b *CircuitBreaker) Name() string {
	return b.name
}

// State returns the current state. An open breaker whose cool-down has
// elapsed still reports OPEN until the next call goes through.
func (b *CircuitBreaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Failures returns the consecutive failure count.
func (b *CircuitBreaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

// Execute runs fn unless the breaker is open. While open it returns a
// CIRCUIT_OPEN *Error without calling fn.
func (b *CircuitBreaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := fn(ctx)
	b.record(ctx, err)
	if err != nil {
		return Classify(ctx, err)
	}
	return nil
}

// Execute is the value-returning form of (*CircuitBreaker).Execute.
func Execute[T any](ctx context.Context, b *CircuitBreaker, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := b.Execute(ctx, func(ctx context.Context) error {
		res, err := fn(ctx)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (b *CircuitBreaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateOpen {
		return nil
	}

	elapsed := b.now().Sub(b.lastFailure)
	if elapsed < b.cfg.ResetTimeout {
		retryIn := b.cfg.ResetTimeout - elapsed
		return newError(CodeCircuitOpen, fmt.Sprintf("circuit %q open, retry in %s", b.name, retryIn.Round(time.Second)), 0, nil)
	}

	// failures stay at the threshold, so a failed trial re-opens at once
	b.setState(StateClosed)
	return nil
}

func (b *CircuitBreaker) record(ctx context.Context, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.failures = 0
		b.setState(StateClosed)
		return
	}

	// the caller gave up; the upstream did not fail
	if ctx.Err() != nil {
		return
	}

	b.failures++
	b.lastFailure = b.now()
	if b.failures >= b.cfg.Threshold {
		b.setState(StateOpen)
	}
}

// setState must be called with mu held.
func (b *CircuitBreaker) setState(s State) {
	if b.state == s {
		return
	}

	b.logger.Warn().
		Str("breaker", b.name).
		Str("from", string(b.state)).
		Str("to", string(s)).
		Int("failures", b.failures).
		Msg("circuit breaker state changed")

	b.state = s
	if s == StateOpen {
		breakerOpen.WithLabelValues(b.name).Set(1)
	} else {
		breakerOpen.WithLabelValues(b.name).Set(0)
	}
}
