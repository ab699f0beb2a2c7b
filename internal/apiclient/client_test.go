// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) *Client {
	t.Helper()
	c, err := New(Config{Name: "test", BaseURL: baseURL, Timeout: timeout}, logger.Nop())
	require.NoError(t, err)
	return c
}

// ── Request ────────────────────────────────────────────────────────────────

func TestRequest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/timingsByCity", r.URL.Path)
		assert.Equal(t, "Kazan", r.URL.Query().Get("city"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)
	resp, err := c.Request(context.Background(), http.MethodGet, "/v1/timingsByCity", RequestOptions{
		Query:   map[string]string{"city": "Kazan"},
		Headers: map[string]string{"X-Test": "yes"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body()))
}

func TestRequest_StatusClassification(t *testing.T) {
	tests := []struct {
		status int
		want   *Error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimit},
		{http.StatusBadGateway, ErrServer},
		{http.StatusConflict, ErrAPI},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("details for logs"))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL, 0)
			_, err := c.Request(context.Background(), http.MethodGet, "/x", RequestOptions{})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "details for logs", apiErr.Message)
		})
	}
}

func TestRequest_PerCallTimeoutOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 5*time.Second)
	_, err := c.Request(context.Background(), http.MethodGet, "/slow", RequestOptions{Timeout: 50 * time.Millisecond})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestRequest_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, time.Second)
	_, err := c.Request(context.Background(), http.MethodGet, "/x", RequestOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Config{Name: "broken", BaseURL: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{BaseURL: "api.aladhan.com/"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.Timeout())
	assert.Equal(t, "http://api.aladhan.com", c.Name())
}
