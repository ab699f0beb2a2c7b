// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-quran-keeper/internal/adapter"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/store"
)

type ClientServices struct {
	Connectivity Connectivity
	Bookmarks    BookmarkService
	Monitor      ConnectivityMonitor
	SyncJob      BookmarkSyncJob
	PrayerTimes  PrayerTimesService
	Hadith       HadithService
	Verses       VerseService
}

// NewClientServices wires the client services. The client starts offline;
// the first monitor probe decides the real state.
func NewClientServices(storages *store.ClientStorages, adapters *adapter.Adapters, log *logger.Logger) *ClientServices {
	conn := NewConnectivity(false)
	bookmarks := NewBookmarkService(storages.BookmarkRepository, adapters.Bookmarks, conn, log)
	monitor := NewConnectivityMonitor(adapters.Bookmarks, conn, bookmarks, log)

	return &ClientServices{
		Connectivity: conn,
		Bookmarks:    bookmarks,
		Monitor:      monitor,
		SyncJob:      NewBookmarkSyncJob(monitor, conn, bookmarks, log),
		PrayerTimes:  NewPrayerTimesService(adapters.PrayerTimes, log),
		Hadith:       NewHadithService(adapters.Hadith, log),
		Verses:       NewVerseService(adapters.Verses, log),
	}
}
