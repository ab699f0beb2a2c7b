// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-quran-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// bookmarkColumns is the scan order used by scanBookmark.
var bookmarkColumns = []string{
	"id",
	"surah",
	"surah_name",
	"surah_name_arabic",
	"ayah",
	"ayah_text",
	"ayah_text_arabic",
	"translation",
	"transliteration",
	"note",
	"tags",
	"color",
	"collection_id",
	"created_at",
	"updated_at",
}

// upsertBookmarkSuffix replaces a row only for the same owner and only
// when the incoming copy is not older.
var upsertBookmarkSuffix = func() string {
	sets := make([]string, 0, len(bookmarkColumns))
	for _, col := range bookmarkColumns {
		if col == "id" || col == "created_at" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	return "ON CONFLICT (id) DO UPDATE SET " + strings.Join(sets, ", ") +
		" WHERE bookmarks.owner_id = EXCLUDED.owner_id AND bookmarks.updated_at <= EXCLUDED.updated_at"
}()

func buildListBookmarksQuery(ownerID string) (string, []any, error) {
	query, args, err := psql.
		Select(bookmarkColumns...).
		From("bookmarks").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertBookmarkQuery(ownerID string, b models.Bookmark) (string, []any, error) {
	tags, err := encodeTags(b.Tags)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Insert("bookmarks").
		Columns(append([]string{"owner_id"}, bookmarkColumns...)...).
		Values(
			ownerID,
			b.ID,
			b.Surah,
			b.SurahName,
			b.SurahNameArabic,
			b.Ayah,
			b.AyahText,
			b.AyahTextArabic,
			b.Translation,
			b.Transliteration,
			b.Note,
			tags,
			b.Color,
			b.CollectionID,
			b.CreatedAt.UTC(),
			b.UpdatedAt.UTC(),
		).
		Suffix(upsertBookmarkSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteBookmarkQuery(ownerID, id string) (string, []any, error) {
	query, args, err := psql.
		Delete("bookmarks").
		Where(sq.And{sq.Eq{"owner_id": ownerID}, sq.Eq{"id": id}}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// encodeTags stores an absent or empty tag list as SQL NULL.
func encodeTags(tags []string) (any, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("%w: tags: %w", ErrEncodingValue, err)
	}
	return string(raw), nil
}

func decodeTags(raw []byte) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("%w: tags: %w", ErrEncodingValue, err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags, nil
}
