// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

// bookmarkRepository is the PostgreSQL-backed implementation of
// [BookmarkRepository] over the "bookmarks" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions carry the request's
// trace fields.
type bookmarkRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookmarkRepository constructs a [BookmarkRepository] on db.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		DB:     db,
		logger: logger,
	}
}

// List returns the owner's bookmarks, newest first. Server rows are by
// definition synced.
func (r *bookmarkRepository) List(ctx context.Context, ownerID string) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBookmarksQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.List").
			Str("owner_id", ownerID).
			Msg("failed to execute query for listing bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Bookmark, 0, 32)
	for rows.Next() {
		b, scanErr := scanBookmark(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "bookmarkRepository.List").
				Str("owner_id", ownerID).
				Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		results = append(results, b)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.List").
			Str("owner_id", ownerID).
			Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// Upsert writes all bookmarks in one transaction. Rows that belong to
// another owner or carry a newer updated_at are left untouched and are not
// counted.
func (r *bookmarkRepository) Upsert(ctx context.Context, ownerID string, bookmarks ...models.Bookmark) (int64, error) {
	log := logger.FromContext(ctx)

	if len(bookmarks) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.Upsert").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var written int64
	for i, b := range bookmarks {
		query, args, buildErr := buildUpsertBookmarkQuery(ownerID, b)
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "bookmarkRepository.Upsert").
				Str("id", b.ID).
				Msg("failed to create query")
			return 0, buildErr
		}

		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "bookmarkRepository.Upsert").
				Str("owner_id", ownerID).
				Str("id", b.ID).
				Int("iteration", i).
				Msg("failed to upsert bookmark")
			return 0, r.DB.wrapWriteError(execErr)
		}

		affected, _ := res.RowsAffected()
		written += affected
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "bookmarkRepository.Upsert").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return written, nil
}

// Delete removes one bookmark of the owner.
func (r *bookmarkRepository) Delete(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookmarkQuery(ownerID, id)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.Delete").Msg("failed to create query")
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.Delete").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to delete bookmark")
		return r.DB.wrapWriteError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}

func (r *bookmarkRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (models.Bookmark, error) {
	var (
		b               models.Bookmark
		transliteration sql.NullString
		note            sql.NullString
		tags            []byte
		color           sql.NullString
		collectionID    sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.Surah,
		&b.SurahName,
		&b.SurahNameArabic,
		&b.Ayah,
		&b.AyahText,
		&b.AyahTextArabic,
		&b.Translation,
		&transliteration,
		&note,
		&tags,
		&color,
		&collectionID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return models.Bookmark{}, err
	}

	if b.Tags, err = decodeTags(tags); err != nil {
		return models.Bookmark{}, err
	}
	b.Transliteration = nullableString(transliteration)
	b.Note = nullableString(note)
	b.Color = nullableString(color)
	b.CollectionID = nullableString(collectionID)
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	b.SyncStatus = models.SyncStatusSynced

	return b, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
