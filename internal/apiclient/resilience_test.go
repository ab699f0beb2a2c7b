// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instantPolicy(maxRetries int) RetryPolicy {
	return RetryPolicy{
		MaxRetries:        maxRetries,
		Delay:             time.Millisecond,
		RetryableStatuses: DefaultRetryableStatuses,
		sleep:             func(context.Context, time.Duration) error { return nil },
	}
}

// ── Do ─────────────────────────────────────────────────────────────────────

func TestDo_RetriesCountAsOneBreakerFailure(t *testing.T) {
	b, _ := newTestBreaker(t)

	calls := 0
	_, err := Do(context.Background(), b, instantPolicy(2), func(ctx context.Context) (string, error) {
		calls++
		return "", FromStatus(http.StatusServiceUnavailable, "down")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, b.Failures())
	assert.Equal(t, StateClosed, b.State())
}

func TestDo_OpenBreaker_SkipsCall(t *testing.T) {
	b, _ := newTestBreaker(t)
	threshold := DefaultBreakerConfig().Threshold

	calls := 0
	fn := func(ctx context.Context) (int, error) {
		calls++
		return 0, FromStatus(http.StatusBadGateway, "bad gateway")
	}

	for range threshold {
		_, err := Do(context.Background(), b, instantPolicy(1), fn)
		require.ErrorIs(t, err, ErrServer)
	}
	require.Equal(t, StateOpen, b.State())
	require.Equal(t, threshold*2, calls)

	_, err := Do(context.Background(), b, instantPolicy(1), fn)

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, threshold*2, calls, "fn must not run while open")
}

func TestDo_RecoversAfterRetry_ResetsFailures(t *testing.T) {
	b, _ := newTestBreaker(t)

	// одна неудачная логическая попытка
	_, err := Do(context.Background(), b, instantPolicy(0), func(ctx context.Context) (int, error) {
		return 0, FromStatus(http.StatusInternalServerError, "")
	})
	require.Error(t, err)
	require.Equal(t, 1, b.Failures())

	calls := 0
	got, err := Do(context.Background(), b, instantPolicy(2), func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, FromStatus(http.StatusServiceUnavailable, "")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, b.Failures())
}

// ── Call ───────────────────────────────────────────────────────────────────

type pingReply struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func TestCall_RetriesThenDecodes(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","count":7}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Second)
	b, _ := newTestBreaker(t)

	got, err := Call[pingReply](context.Background(), c, b, instantPolicy(3), http.MethodGet, "/ping", RequestOptions{})

	require.NoError(t, err)
	assert.Equal(t, pingReply{Status: "ok", Count: 7}, got)
	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, 0, b.Failures())
}

func TestCall_ExhaustedRetriesCountOnceAgainstBreaker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Second)
	b, _ := newTestBreaker(t)

	// 1 попытка + 3 повтора на каждый вызов
	for range 3 {
		_, err := Call[pingReply](context.Background(), c, b, instantPolicy(3), http.MethodGet, "/ping", RequestOptions{})
		assert.ErrorIs(t, err, ErrServer)
	}
	assert.Equal(t, int32(12), hits.Load())
	assert.Equal(t, StateOpen, b.State())

	_, err := Call[pingReply](context.Background(), c, b, instantPolicy(3), http.MethodGet, "/ping", RequestOptions{})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(12), hits.Load())
}

func TestCall_DecodeFailure_NotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Second)
	b, _ := newTestBreaker(t)

	_, err := Call[pingReply](context.Background(), c, b, instantPolicy(3), http.MethodGet, "/ping", RequestOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCall_ClientErrorStatus_NotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Second)
	b, _ := newTestBreaker(t)

	_, err := Call[pingReply](context.Background(), c, b, instantPolicy(3), http.MethodGet, "/missing", RequestOptions{})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), hits.Load())
}
