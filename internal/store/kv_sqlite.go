// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
)

const (
	getKV = `SELECT value FROM kv WHERE key = ?;`

	setKV = `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`
)

// sqliteKV stores values in the kv table of a migrated SQLite database.
type sqliteKV struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteKV wraps an already migrated SQLite connection.
func NewSQLiteKV(db *DB, log *logger.Logger) KVStore {
	return &sqliteKV{
		DB:     db,
		logger: log,
	}
}

func (s *sqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRowContext(ctx, getKV, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteKV.Get").
			Str("key", key).
			Msg("failed to read key")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.DB.ExecContext(ctx, setKV, key, value, time.Now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteKV.Set").
			Str("key", key).
			Msg("failed to write key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKV) Close() error {
	return s.DB.Close()
}
