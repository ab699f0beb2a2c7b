// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to every upstream the client depends on: the
// bookmark server and the public prayer-time, hadith and Quran APIs.
//
// All adapters send their requests through [apiclient.Client] and guard
// each upstream with its own retry policy and circuit breaker, so one
// failing provider never trips another. Failures surface as
// *apiclient.Error (wrapped with the operation name) and can be matched
// with errors.Is against the apiclient sentinels or the ones in errors.go.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quran-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteBookmarkStore is the bookmark server as seen by the synchronizer.
// Every call acts on the owner identified by the bearer token.
type RemoteBookmarkStore interface {
	// SetToken replaces the bearer token used for subsequent calls.
	SetToken(token string)

	// Token returns the bearer token currently in use.
	Token() string

	// List returns all remote bookmarks of the owner.
	List(ctx context.Context) ([]models.Bookmark, error)

	// Upsert creates or replaces bookmarks by id. The server keeps a row
	// whose updated_at is newer than the incoming one.
	Upsert(ctx context.Context, bookmarks ...models.Bookmark) error

	// Delete removes a bookmark. Deleting an id the server does not know
	// is not an error.
	Delete(ctx context.Context, id string) error

	// Health probes the server; nil means reachable and healthy.
	Health(ctx context.Context) error
}

// PrayerTimesProvider returns a daily timetable from one upstream.
type PrayerTimesProvider interface {
	Name() string
	PrayerTimes(ctx context.Context, query models.PrayerTimesQuery) (models.PrayerTimes, error)
}

// HadithProvider looks up a single hadith.
type HadithProvider interface {
	Hadith(ctx context.Context, query models.HadithQuery) (models.Hadith, error)
}

// VerseProvider returns Quran text with a translation.
type VerseProvider interface {
	Ayah(ctx context.Context, surah, ayah int) (models.Verse, error)
	Surah(ctx context.Context, surah int) (models.Surah, error)
}
