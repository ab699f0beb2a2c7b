// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/store"
	"github.com/MKhiriev/go-quran-keeper/internal/validators"
	"github.com/MKhiriev/go-quran-keeper/models"
)

// serverBookmarkService validates requests and delegates to the
// PostgreSQL repository. Sync status is a client concern and is never
// stored or returned by the server.
type serverBookmarkService struct {
	repository store.BookmarkRepository
	validator  validators.Validator
}

func NewServerBookmarkService(repository store.BookmarkRepository) ServerBookmarkService {
	return &serverBookmarkService{
		repository: repository,
		validator:  validators.NewBookmarkValidator(),
	}
}

func (s *serverBookmarkService) List(ctx context.Context, ownerID string) ([]models.Bookmark, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrEmptyOwnerID
	}

	bookmarks, err := s.repository.List(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "serverBookmarkService.List").Msg("listing bookmarks failed")
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	for i := range bookmarks {
		bookmarks[i].SyncStatus = ""
	}
	return bookmarks, nil
}

// Upsert normalises every bookmark (UTC millisecond timestamps, trimmed
// tags, no sync status) before validating the batch.
func (s *serverBookmarkService) Upsert(ctx context.Context, ownerID string, batch models.BookmarkBatch) (int64, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(ownerID) == "" {
		return 0, ErrEmptyOwnerID
	}
	if batch.Length != 0 && batch.Length != len(batch.Bookmarks) {
		log.Error().Int("length", batch.Length).Int("actual", len(batch.Bookmarks)).Msg("batch length mismatch")
		return 0, fmt.Errorf("%w: length %d does not match %d bookmarks", ErrInvalidDataProvided, batch.Length, len(batch.Bookmarks))
	}

	for i := range batch.Bookmarks {
		b := &batch.Bookmarks[i]
		b.CreatedAt = b.CreatedAt.UTC().Truncate(time.Millisecond)
		b.UpdatedAt = b.UpdatedAt.UTC().Truncate(time.Millisecond)
		b.Tags = validators.NormalizeTags(b.Tags)
		b.SyncStatus = ""
	}

	if err := s.validator.Validate(ctx, batch); err != nil {
		log.Err(err).Str("func", "serverBookmarkService.Upsert").Msg("invalid bookmark batch")
		return 0, fmt.Errorf("%w: %w", ErrInvalidBookmark, err)
	}

	written, err := s.repository.Upsert(ctx, ownerID, batch.Bookmarks...)
	if err != nil {
		log.Err(err).Str("func", "serverBookmarkService.Upsert").Int("count", len(batch.Bookmarks)).Msg("upsert failed")
		return 0, fmt.Errorf("upsert bookmarks: %w", err)
	}

	log.Debug().Int("received", len(batch.Bookmarks)).Int64("written", written).Msg("bookmarks upserted")
	return written, nil
}

func (s *serverBookmarkService) Delete(ctx context.Context, ownerID, id string) error {
	if strings.TrimSpace(ownerID) == "" {
		return ErrEmptyOwnerID
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty bookmark id", ErrInvalidDataProvided)
	}

	if err := s.repository.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete bookmark %s: %w", id, err)
	}
	return nil
}

func (s *serverBookmarkService) Ping(ctx context.Context) error {
	return s.repository.Ping(ctx)
}
