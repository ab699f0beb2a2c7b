// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-quran-keeper/internal/config"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
)

// Adapters groups every upstream the client talks to.
type Adapters struct {
	Bookmarks   RemoteBookmarkStore
	// PrayerTimes lists providers in fallback order: Aladhan, then JAKIM.
	PrayerTimes []PrayerTimesProvider
	Hadith      HadithProvider
	Verses      VerseProvider
}

// NewAdapters builds all client adapters from cfg. Data providers are
// wrapped in a TTL cache of cfg.CacheSize entries.
func NewAdapters(cfg config.ClientAdapter, token string, res Resilience, log *logger.Logger) (*Adapters, error) {
	bookmarks, err := NewHTTPBookmarkStore(cfg.BookmarksAddress, cfg.RequestTimeout, token, res, log)
	if err != nil {
		return nil, fmt.Errorf("bookmark server adapter: %w", err)
	}

	aladhan, err := NewAladhanProvider(cfg.AladhanURL, cfg.RateLimit, res, log)
	if err != nil {
		return nil, fmt.Errorf("aladhan adapter: %w", err)
	}

	jakim, err := NewJakimProvider(cfg.JakimURL, cfg.RateLimit, res, log)
	if err != nil {
		return nil, fmt.Errorf("jakim adapter: %w", err)
	}

	hadith, err := NewHadithProvider(cfg.HadithURL, cfg.HadithAPIKey, cfg.RateLimit, res, log)
	if err != nil {
		return nil, fmt.Errorf("hadith adapter: %w", err)
	}

	verses, err := NewVerseProvider(cfg.QuranURL, cfg.RequestTimeout, cfg.RateLimit, res, log)
	if err != nil {
		return nil, fmt.Errorf("quran adapter: %w", err)
	}

	prayerTimes := []PrayerTimesProvider{
		WithPrayerTimesCache(aladhan, cfg.CacheSize, cfg.CacheTTL),
		WithPrayerTimesCache(jakim, cfg.CacheSize, cfg.CacheTTL),
	}

	return &Adapters{
		Bookmarks:   bookmarks,
		PrayerTimes: prayerTimes,
		Hadith:      WithHadithCache(hadith, cfg.CacheSize, cfg.CacheTTL),
		Verses:      WithVerseCache(verses, cfg.CacheSize, cfg.CacheTTL),
	}, nil
}
