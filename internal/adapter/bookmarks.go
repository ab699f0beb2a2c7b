// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

const (
	bookmarksPath = "/api/bookmarks"
	healthPath    = "/api/health"

	// health probes must answer fast; they are never retried
	healthTimeout = 3 * time.Second
)

type httpBookmarkStore struct {
	upstream

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBookmarkStore builds the HTTP implementation of
// [RemoteBookmarkStore] against the bookmark server at address.
func NewHTTPBookmarkStore(address string, timeout time.Duration, token string, res Resilience, log *logger.Logger) (RemoteBookmarkStore, error) {
	up, err := newUpstream(apiclient.Config{
		Name:    "bookmarks",
		BaseURL: address,
		Timeout: timeout,
	}, res, log)
	if err != nil {
		return nil, err
	}

	s := &httpBookmarkStore{upstream: up, logger: log}
	s.SetToken(token)
	return s, nil
}

// SetToken implements [RemoteBookmarkStore]. The token is whitespace-trimmed.
func (s *httpBookmarkStore) SetToken(token string) {
	s.mu.Lock()
	s.token = strings.TrimSpace(token)
	s.mu.Unlock()
}

// Token implements [RemoteBookmarkStore].
func (s *httpBookmarkStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// List implements [RemoteBookmarkStore] with GET /api/bookmarks.
func (s *httpBookmarkStore) List(ctx context.Context) ([]models.Bookmark, error) {
	batch, err := apiclient.Call[models.BookmarkBatch](ctx, s.client, s.breaker, s.retry,
		http.MethodGet, bookmarksPath, s.authed(apiclient.RequestOptions{}))
	if err != nil {
		return nil, mapAPIError("list bookmarks", err)
	}

	for i := range batch.Bookmarks {
		batch.Bookmarks[i].SyncStatus = models.SyncStatusSynced
	}
	return batch.Bookmarks, nil
}

// Upsert implements [RemoteBookmarkStore] with PUT /api/bookmarks. The
// local sync status is blanked before sending.
func (s *httpBookmarkStore) Upsert(ctx context.Context, bookmarks ...models.Bookmark) error {
	if len(bookmarks) == 0 {
		return nil
	}

	body := models.BookmarkBatch{
		Bookmarks: make([]models.Bookmark, len(bookmarks)),
		Length:    len(bookmarks),
	}
	for i, b := range bookmarks {
		b.SyncStatus = ""
		body.Bookmarks[i] = b
	}

	_, err := apiclient.Do(ctx, s.breaker, s.retry, func(ctx context.Context) (struct{}, error) {
		_, err := s.client.Request(ctx, http.MethodPut, bookmarksPath, s.authed(apiclient.RequestOptions{Body: body}))
		return struct{}{}, err
	})
	return mapAPIError("upsert bookmarks", err)
}

// Delete implements [RemoteBookmarkStore] with DELETE /api/bookmarks/{id}.
// A 404 means the bookmark is already gone and counts as success.
func (s *httpBookmarkStore) Delete(ctx context.Context, id string) error {
	path := bookmarksPath + "/" + url.PathEscape(id)

	_, err := apiclient.Do(ctx, s.breaker, s.retry, func(ctx context.Context) (struct{}, error) {
		_, err := s.client.Request(ctx, http.MethodDelete, path, s.authed(apiclient.RequestOptions{}))
		if errors.Is(err, apiclient.ErrNotFound) {
			return struct{}{}, nil
		}
		return struct{}{}, err
	})
	return mapAPIError("delete bookmark", err)
}

// Health implements [RemoteBookmarkStore]. It bypasses retry and breaker so
// that a probe reflects the current state of the server.
func (s *httpBookmarkStore) Health(ctx context.Context) error {
	_, err := s.client.Request(ctx, http.MethodGet, healthPath, apiclient.RequestOptions{Timeout: healthTimeout})
	return mapAPIError("health", err)
}

func (s *httpBookmarkStore) authed(opts apiclient.RequestOptions) apiclient.RequestOptions {
	if token := s.Token(); token != "" {
		opts.Headers = map[string]string{"Authorization": "Bearer " + token}
	}
	return opts
}
