// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quran-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// BookmarkService is the offline-first bookmark synchronizer. Every mutation
// is written to the local store before any network I/O and is pushed to the
// bookmark server when it is reachable; what cannot be pushed is kept in the
// sync queue and retried by Reconcile.
type BookmarkService interface {
	// Add validates input, assigns a new id and timestamps, stores the
	// bookmark locally as pending and pushes it when online. The returned
	// bookmark is the local record, synced or not.
	// Returns ErrInvalidBookmark (wrapping the validator error) for bad input.
	Add(ctx context.Context, input models.BookmarkInput) (models.Bookmark, error)

	// Update merges changes into the bookmark with the given id, bumps
	// updated_at and follows the same push-or-enqueue policy as Add.
	// Returns store.ErrBookmarkNotFound for an unknown id.
	Update(ctx context.Context, id string, changes models.BookmarkChanges) (models.Bookmark, error)

	// Remove deletes the bookmark locally and makes sure the remote copy
	// goes away too, now or on a later Reconcile. Unknown ids are a no-op.
	// Remote failures are logged and never returned.
	Remove(ctx context.Context, id string) error

	// Get returns the local copy of one bookmark or store.ErrBookmarkNotFound.
	Get(ctx context.Context, id string) (models.Bookmark, error)

	// List returns the local bookmarks, newest first. When online it
	// reconciles first; reconcile errors are logged only.
	List(ctx context.Context) ([]models.Bookmark, error)

	// Reconcile merges the local and the remote sets with last-writer-wins
	// and drains the sync queue. A call made while another pass is running
	// returns nil immediately without doing anything.
	Reconcile(ctx context.Context) error

	// SetOnline records the connectivity state observed by the caller.
	SetOnline(online bool)

	// Online reports the last known connectivity state.
	Online() bool
}

// Connectivity holds the online/offline flag shared by the synchronizer
// and the monitor.
type Connectivity interface {
	Online() bool
	// SetOnline stores the state and reports whether it changed.
	SetOnline(online bool) bool
}

// ConnectivityMonitor probes the bookmark server and updates Connectivity.
type ConnectivityMonitor interface {
	// Probe checks the server once and returns the resulting state. A
	// transition from offline to online triggers a reconcile.
	Probe(ctx context.Context) bool
}

// BookmarkSyncJob runs the background probe-and-reconcile loop.
type BookmarkSyncJob interface {
	// Start stops any running loop and launches a new one that ticks every
	// interval until ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}

// PrayerTimesService returns a daily timetable, falling back across
// providers in order.
type PrayerTimesService interface {
	PrayerTimes(ctx context.Context, query models.PrayerTimesQuery) (models.PrayerTimes, error)
}

// HadithService looks up hadiths.
type HadithService interface {
	Hadith(ctx context.Context, query models.HadithQuery) (models.Hadith, error)
}

// VerseService reads Quran text.
type VerseService interface {
	Ayah(ctx context.Context, surah, ayah int) (models.Verse, error)
	Surah(ctx context.Context, surah int) (models.Surah, error)

	// FillBookmarkInput loads the ayah referenced by input and fills the
	// text fields the caller left empty.
	FillBookmarkInput(ctx context.Context, input *models.BookmarkInput) error
}
