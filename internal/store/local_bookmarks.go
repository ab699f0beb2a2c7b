// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

const (
	bookmarksKeyPrefix = "bookmarks:"
	queueKeyPrefix     = "sync_queue:"
)

// localBookmarkRepository stores one owner's bookmarks as a single JSON
// object keyed by id and the sync queue as a second JSON object.
type localBookmarkRepository struct {
	kv       KVStore
	ownerKey string
	queueKey string

	// serialises read-modify-write cycles on the two blobs
	mu sync.Mutex

	logger *logger.Logger
}

// NewLocalBookmarkRepository returns the repository for ownerID on top of kv.
func NewLocalBookmarkRepository(kv KVStore, ownerID string, log *logger.Logger) LocalBookmarkRepository {
	return &localBookmarkRepository{
		kv:       kv,
		ownerKey: bookmarksKeyPrefix + ownerID,
		queueKey: queueKeyPrefix + ownerID,
		logger:   log,
	}
}

func (r *localBookmarkRepository) Save(ctx context.Context, bookmarks ...models.Bookmark) error {
	if len(bookmarks) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadBookmarks(ctx)
	if err != nil {
		return err
	}
	for _, b := range bookmarks {
		all[b.ID] = b
	}

	return r.storeBlob(ctx, r.ownerKey, all)
}

func (r *localBookmarkRepository) Get(ctx context.Context, id string) (models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadBookmarks(ctx)
	if err != nil {
		return models.Bookmark{}, err
	}

	b, ok := all[id]
	if !ok {
		return models.Bookmark{}, ErrBookmarkNotFound
	}
	return b, nil
}

func (r *localBookmarkRepository) List(ctx context.Context) ([]models.Bookmark, error) {
	r.mu.Lock()
	all, err := r.loadBookmarks(ctx)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	out := make([]models.Bookmark, 0, len(all))
	for _, b := range all {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *localBookmarkRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadBookmarks(ctx)
	if err != nil {
		return err
	}
	if _, ok := all[id]; !ok {
		return nil
	}
	delete(all, id)

	return r.storeBlob(ctx, r.ownerKey, all)
}

func (r *localBookmarkRepository) Queue(ctx context.Context) ([]models.SyncQueueEntry, error) {
	r.mu.Lock()
	queue, err := r.loadQueue(ctx)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	out := make([]models.SyncQueueEntry, 0, len(queue))
	for _, e := range queue {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].QueuedAt.Equal(out[j].QueuedAt) {
			return out[i].QueuedAt.Before(out[j].QueuedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *localBookmarkRepository) Enqueue(ctx context.Context, entry models.SyncQueueEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: empty queue entry id", ErrEncodingValue)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	queue, err := r.loadQueue(ctx)
	if err != nil {
		return err
	}
	queue[entry.ID] = entry

	return r.storeBlob(ctx, r.queueKey, queue)
}

func (r *localBookmarkRepository) Dequeue(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue, err := r.loadQueue(ctx)
	if err != nil {
		return err
	}
	if _, ok := queue[id]; !ok {
		return nil
	}
	delete(queue, id)

	return r.storeBlob(ctx, r.queueKey, queue)
}

func (r *localBookmarkRepository) loadBookmarks(ctx context.Context) (map[string]models.Bookmark, error) {
	all := make(map[string]models.Bookmark)
	if err := r.loadBlob(ctx, r.ownerKey, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *localBookmarkRepository) loadQueue(ctx context.Context) (map[string]models.SyncQueueEntry, error) {
	queue := make(map[string]models.SyncQueueEntry)
	if err := r.loadBlob(ctx, r.queueKey, &queue); err != nil {
		return nil, err
	}
	return queue, nil
}

func (r *localBookmarkRepository) loadBlob(ctx context.Context, key string, dst any) error {
	raw, err := r.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localBookmarkRepository.loadBlob").
			Str("key", key).
			Msg("stored value is corrupted")
		return fmt.Errorf("%w: decode %q: %w", ErrEncodingValue, key, err)
	}
	return nil
}

func (r *localBookmarkRepository) storeBlob(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", ErrEncodingValue, key, err)
	}

	if err = r.kv.Set(ctx, key, raw); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localBookmarkRepository.storeBlob").
			Str("key", key).
			Msg("failed to persist value")
		return err
	}
	return nil
}
