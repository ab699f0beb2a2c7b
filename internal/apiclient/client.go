// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single attempt when neither the client nor the
// call sets a timeout.
const DefaultTimeout = 10 * time.Second

// Config describes one upstream API.
type Config struct {
	// Name labels logs and metrics, e.g. "aladhan".
	Name string
	// BaseURL is prefixed to every request path. A missing scheme defaults
	// to http://.
	BaseURL string
	// Timeout is the default per-attempt timeout.
	Timeout time.Duration
	// Headers are sent with every request.
	Headers map[string]string
	// RateLimit caps outgoing requests per second; zero disables limiting.
	RateLimit float64
}

// RequestOptions are per-call overrides.
type RequestOptions struct {
	Query   map[string]string
	Body    any
	Headers map[string]string
	// Timeout overrides Config.Timeout for this call only.
	Timeout time.Duration
}

// Client sends HTTP requests and turns every failure into an *Error.
// It performs exactly one attempt per Request; retries and circuit breaking
// are layered on top with ExecuteWithRetry and CircuitBreaker.
type Client struct {
	name    string
	http    *resty.Client
	timeout time.Duration
	limiter *rate.Limiter

	logger *logger.Logger
}

// New validates cfg and builds a Client. Returns an error if the base URL
// is empty or cannot be parsed.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url for %q: %w", cfg.Name, err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Name == "" {
		cfg.Name = baseURL
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeaders(cfg.Headers)

	c := &Client{
		name:    cfg.Name,
		http:    httpClient,
		timeout: cfg.Timeout,
		logger:  log,
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return c, nil
}

// Name returns the label the client was configured with.
func (c *Client) Name() string {
	return c.name
}

// Timeout returns the default per-attempt timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// SetHeader sets a header sent with every subsequent request, e.g. a bearer
// token obtained after construction.
func (c *Client) SetHeader(key, value string) {
	c.http.SetHeader(key, value)
}

// Request performs one HTTP call. A status below 400 returns the response
// unchanged; anything else returns a classified *Error.
func (c *Client) Request(ctx context.Context, method, path string, opts RequestOptions) (*resty.Response, error) {
	timeout := c.timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	c.logger.Debug().
		Str("client", c.name).
		Str("method", method).
		Str("path", path).
		Dur("timeout", timeout).
		Msg("api request")

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, c.fail(method, path, Classify(ctx, err))
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := c.http.R().
		SetContext(attemptCtx).
		SetQueryParams(opts.Query).
		SetHeaders(opts.Headers)
	if opts.Body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(opts.Body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, c.fail(method, path, Classify(ctx, err))
	}

	if resp.StatusCode() >= 400 {
		return nil, c.fail(method, path, FromStatus(resp.StatusCode(), string(resp.Body())))
	}

	requestsTotal.WithLabelValues(c.name, "OK").Inc()
	return resp, nil
}

func (c *Client) fail(method, path string, apiErr *Error) *Error {
	requestsTotal.WithLabelValues(c.name, string(apiErr.Code)).Inc()

	c.logger.Debug().
		Str("client", c.name).
		Str("method", method).
		Str("path", path).
		Str("code", string(apiErr.Code)).
		Int("status", apiErr.StatusCode).
		Bool("retryable", apiErr.Retryable).
		Str("message", apiErr.Message).
		Msg("api request failed")

	return apiErr
}

// DecodeJSON decodes a successful response body into T. Decode failures are
// reported as UNKNOWN_ERROR.
func DecodeJSON[T any](resp *resty.Response) (T, error) {
	var out T
	if resp == nil {
		return out, newError(CodeUnknown, "nil response", 0, nil)
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, newError(CodeUnknown, fmt.Sprintf("decode response: %v", err), resp.StatusCode(), err)
	}
	return out, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
