// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
)

// pebbleKV stores values in a pebble directory. With path "" or ":memory:"
// the database lives in process memory.
type pebbleKV struct {
	db     *pebble.DB
	logger *logger.Logger
}

// NewPebbleKV opens (creating if needed) the pebble database at path.
func NewPebbleKV(path string, log *logger.Logger) (KVStore, error) {
	opts := &pebble.Options{}
	if path == "" || path == ":memory:" {
		path = "bookmarks"
		opts.FS = vfs.NewMem()
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		log.Err(err).Str("func", "NewPebbleKV").Str("path", path).Msg("error opening pebble database")
		return nil, fmt.Errorf("open pebble database: %w", err)
	}
	log.Debug().Str("func", "NewPebbleKV").Str("path", path).Msg("opened pebble database")

	return &pebbleKV{
		db:     db,
		logger: log,
	}, nil
}

func (s *pebbleKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pebbleKV.Get").
			Str("key", key).
			Msg("failed to read key")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer closer.Close()

	// value is only valid until closer is closed
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *pebbleKV) Set(ctx context.Context, key string, value []byte) error {
	if err := s.db.Set([]byte(key), value, pebble.Sync); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pebbleKV.Set").
			Str("key", key).
			Msg("failed to write key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (s *pebbleKV) Close() error {
	return s.db.Close()
}
