// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-quran-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ServerBookmarkService is the bookmark server's view of one owner's
// bookmarks.
type ServerBookmarkService interface {
	// List returns every bookmark of the owner.
	List(ctx context.Context, ownerID string) ([]models.Bookmark, error)

	// Upsert validates the batch and stores it. Rows that are newer on the
	// server are kept; the returned count is the number of rows written.
	Upsert(ctx context.Context, ownerID string, batch models.BookmarkBatch) (int64, error)

	// Delete removes one bookmark or returns store.ErrBookmarkNotFound.
	Delete(ctx context.Context, ownerID, id string) error

	// Ping checks that the backing database is reachable.
	Ping(ctx context.Context) error
}

// AuthService issues and verifies bearer tokens. The token subject is the
// bookmark owner id.
type AuthService interface {
	CreateToken(ctx context.Context, ownerID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
