// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-quran-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KVStore is the local persistence boundary of the client: an opaque
// key-value store holding JSON blobs.
type KVStore interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}

// LocalBookmarkRepository keeps one owner's bookmarks and sync queue on the
// client.
type LocalBookmarkRepository interface {
	// Save inserts or replaces bookmarks by id.
	Save(ctx context.Context, bookmarks ...models.Bookmark) error
	// Get returns one bookmark or [ErrBookmarkNotFound].
	Get(ctx context.Context, id string) (models.Bookmark, error)
	// List returns all bookmarks, newest first.
	List(ctx context.Context) ([]models.Bookmark, error)
	// Delete removes a bookmark. Unknown ids are ignored.
	Delete(ctx context.Context, id string) error

	// Queue returns pending sync entries, oldest first.
	Queue(ctx context.Context) ([]models.SyncQueueEntry, error)
	// Enqueue adds entry, replacing any entry with the same id.
	Enqueue(ctx context.Context, entry models.SyncQueueEntry) error
	// Dequeue removes the entry for id. Unknown ids are ignored.
	Dequeue(ctx context.Context, id string) error
}

// BookmarkRepository is the bookmark server's PostgreSQL repository. Every
// method is scoped to one owner.
type BookmarkRepository interface {
	// List returns every bookmark of the owner.
	List(ctx context.Context, ownerID string) ([]models.Bookmark, error)
	// Upsert inserts bookmarks or replaces existing rows of the same owner
	// whose updated_at is not newer. It returns the number of rows written.
	Upsert(ctx context.Context, ownerID string, bookmarks ...models.Bookmark) (int64, error)
	// Delete removes one bookmark or returns [ErrBookmarkNotFound].
	Delete(ctx context.Context, ownerID, id string) error
	// Ping checks database connectivity.
	Ping(ctx context.Context) error
}
