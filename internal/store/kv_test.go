// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteKV(t *testing.T) KVStore {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "kv.db"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	kv := NewSQLiteKV(db, logger.Nop())
	t.Cleanup(func() { kv.Close() })
	return kv
}

func newTestPebbleKV(t *testing.T) KVStore {
	t.Helper()
	kv, err := NewPebbleKV(filepath.Join(t.TempDir(), "kv"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestKVStore_Contract(t *testing.T) {
	stores := map[string]func(t *testing.T) KVStore{
		"sqlite": newTestSQLiteKV,
		"pebble": newTestPebbleKV,
		"memory": func(t *testing.T) KVStore {
			kv, err := NewPebbleKV(":memory:", logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { kv.Close() })
			return kv
		},
	}

	for name, newKV := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			kv := newKV(t)

			_, err := kv.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, kv.Set(ctx, "a", []byte(`{"v":1}`)))
			got, err := kv.Get(ctx, "a")
			require.NoError(t, err)
			assert.JSONEq(t, `{"v":1}`, string(got))

			require.NoError(t, kv.Set(ctx, "a", []byte(`{"v":2}`)))
			got, err = kv.Get(ctx, "a")
			require.NoError(t, err)
			assert.JSONEq(t, `{"v":2}`, string(got))
		})
	}
}

func TestPebbleKV_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "kv")

	kv, err := NewPebbleKV(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "bookmarks:me", []byte(`{"x":{"id":"x"}}`)))
	require.NoError(t, kv.Close())

	reopened, err := NewPebbleKV(path, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "bookmarks:me")
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":{"id":"x"}}`, string(got))
}

func TestPebbleKV_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	kv := newTestPebbleKV(t)

	require.NoError(t, kv.Set(ctx, "k", []byte("abc")))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'z'

	again, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestPebbleKV_PathIsAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv")
	require.NoError(t, os.WriteFile(path, []byte("not a directory"), 0o600))

	_, err := NewPebbleKV(path, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open pebble database")
}

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	db, err := NewConnectSQLite(ctx, path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	kv := NewSQLiteKV(db, logger.Nop())
	require.NoError(t, kv.Set(ctx, "k", []byte(`[1,2]`)))
	require.NoError(t, kv.Close())

	db, err = NewConnectSQLite(ctx, path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	kv = NewSQLiteKV(db, logger.Nop())
	defer kv.Close()

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}
