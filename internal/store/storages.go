// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quran-keeper/internal/config"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
)

// Storages groups the bookmark server repositories.
type Storages struct {
	BookmarkRepository BookmarkRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// server repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		BookmarkRepository: NewBookmarkRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ClientStorages groups the client's local storage.
type ClientStorages struct {
	// KV is the raw key-value store.
	KV KVStore
	// BookmarkRepository keeps the owner's bookmarks and sync queue.
	BookmarkRepository LocalBookmarkRepository
}

// NewClientStorages opens the local store selected by cfg for ownerID:
//   - "sqlite": opens (creating if needed) the database file, runs the
//     sqlite migrations and uses the kv table;
//   - "pebble": a pebble directory, or process memory for ":memory:".
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, ownerID string, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("driver", cfg.Driver).Str("path", cfg.Path).Msg("creating client storages...")

	var (
		kv  KVStore
		err error
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		var db *DB
		db, err = NewConnectSQLite(ctx, cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv = NewSQLiteKV(db, log)
	case config.DriverPebble:
		kv, err = NewPebbleKV(cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("pebble storage error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown local storage driver %q", cfg.Driver)
	}

	return &ClientStorages{
		KV:                 kv,
		BookmarkRepository: NewLocalBookmarkRepository(kv, ownerID, log),
	}, nil
}

// Close releases the key-value store.
func (s *ClientStorages) Close() error {
	return s.KV.Close()
}
