// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/go-quran-keeper/models"
)

// responseCache memoises successful upstream answers for a fixed TTL.
// Errors are never cached.
type responseCache[V any] struct {
	lru *expirable.LRU[string, V]
}

// newResponseCache returns nil when size is not positive, which disables
// caching.
func newResponseCache[V any](size int, ttl time.Duration) *responseCache[V] {
	if size <= 0 {
		return nil
	}
	return &responseCache[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}
}

func (c *responseCache[V]) getOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if c == nil {
		return load(ctx)
	}

	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	c.lru.Add(key, v)
	return v, nil
}

func (c *responseCache[V]) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

type cachedPrayerTimes struct {
	PrayerTimesProvider
	cache *responseCache[models.PrayerTimes]
}

// WithPrayerTimesCache memoises p's successful answers per query.
func WithPrayerTimesCache(p PrayerTimesProvider, size int, ttl time.Duration) PrayerTimesProvider {
	return &cachedPrayerTimes{PrayerTimesProvider: p, cache: newResponseCache[models.PrayerTimes](size, ttl)}
}

func (c *cachedPrayerTimes) PrayerTimes(ctx context.Context, q models.PrayerTimesQuery) (models.PrayerTimes, error) {
	key := fmt.Sprintf("%s|%s|%s|%d|%s|%s", c.Name(), q.City, q.Country, q.Method, q.Zone, q.Date)
	return c.cache.getOrLoad(ctx, key, func(ctx context.Context) (models.PrayerTimes, error) {
		return c.PrayerTimesProvider.PrayerTimes(ctx, q)
	})
}

type cachedHadith struct {
	HadithProvider
	cache *responseCache[models.Hadith]
}

// WithHadithCache memoises p's successful answers per book and number.
func WithHadithCache(p HadithProvider, size int, ttl time.Duration) HadithProvider {
	return &cachedHadith{HadithProvider: p, cache: newResponseCache[models.Hadith](size, ttl)}
}

func (c *cachedHadith) Hadith(ctx context.Context, q models.HadithQuery) (models.Hadith, error) {
	return c.cache.getOrLoad(ctx, q.Book+"/"+q.Number, func(ctx context.Context) (models.Hadith, error) {
		return c.HadithProvider.Hadith(ctx, q)
	})
}

type cachedVerse struct {
	VerseProvider
	ayahs  *responseCache[models.Verse]
	surahs *responseCache[models.Surah]
}

// WithVerseCache memoises ayahs and whole surahs separately.
func WithVerseCache(p VerseProvider, size int, ttl time.Duration) VerseProvider {
	return &cachedVerse{
		VerseProvider: p,
		ayahs:         newResponseCache[models.Verse](size, ttl),
		surahs:        newResponseCache[models.Surah](size, ttl),
	}
}

func (c *cachedVerse) Ayah(ctx context.Context, surah, ayah int) (models.Verse, error) {
	return c.ayahs.getOrLoad(ctx, fmt.Sprintf("%d:%d", surah, ayah), func(ctx context.Context) (models.Verse, error) {
		return c.VerseProvider.Ayah(ctx, surah, ayah)
	})
}

func (c *cachedVerse) Surah(ctx context.Context, surah int) (models.Surah, error) {
	return c.surahs.getOrLoad(ctx, strconv.Itoa(surah), func(ctx context.Context) (models.Surah, error) {
		return c.VerseProvider.Surah(ctx, surah)
	})
}
