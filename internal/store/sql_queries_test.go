// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-quran-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListBookmarksQuery(t *testing.T) {
	query, args, err := buildListBookmarksQuery("owner-1")
	require.NoError(t, err)

	assert.Equal(t, []any{"owner-1"}, args)
	assert.True(t, strings.HasPrefix(query, "SELECT id, surah, surah_name"))
	assert.Contains(t, query, "FROM bookmarks WHERE owner_id = $1")
	assert.Contains(t, query, "ORDER BY created_at DESC, id")
}

func Test_buildUpsertBookmarkQuery(t *testing.T) {
	note := "reread"
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	b := models.Bookmark{
		ID:        "bm-1",
		Surah:     2,
		Ayah:      255,
		Note:      &note,
		Tags:      []string{"kursi", "night"},
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}

	query, args, err := buildUpsertBookmarkQuery("owner-1", b)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into bookmarks (owner_id,id,surah")
	require.Contains(t, q, "on conflict (id) do update set")
	require.Contains(t, q, "where bookmarks.owner_id = excluded.owner_id and bookmarks.updated_at <= excluded.updated_at")
	require.NotContains(t, q, "created_at = excluded.created_at")
	require.Contains(t, query, "$16")

	require.Len(t, args, 16)
	assert.Equal(t, "owner-1", args[0])
	assert.Equal(t, "bm-1", args[1])
	assert.Equal(t, &note, args[10])
	assert.Equal(t, `["kursi","night"]`, args[11])
	assert.Equal(t, created.Add(time.Minute), args[15])
}

func Test_buildUpsertBookmarkQuery_EmptyTagsAreNull(t *testing.T) {
	_, args, err := buildUpsertBookmarkQuery("o", models.Bookmark{ID: "x", Tags: []string{}})
	require.NoError(t, err)
	assert.Nil(t, args[11])
}

func Test_buildDeleteBookmarkQuery(t *testing.T) {
	query, args, err := buildDeleteBookmarkQuery("owner-1", "bm-1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM bookmarks WHERE (owner_id = $1 AND id = $2)", query)
	assert.Equal(t, []any{"owner-1", "bm-1"}, args)
}

func Test_decodeTags(t *testing.T) {
	tags, err := decodeTags([]byte(`["a","b"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)

	tags, err = decodeTags(nil)
	require.NoError(t, err)
	assert.Nil(t, tags)

	tags, err = decodeTags([]byte(`[]`))
	require.NoError(t, err)
	assert.Nil(t, tags)

	_, err = decodeTags([]byte(`{`))
	assert.ErrorIs(t, err, ErrEncodingValue)
}
