// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

const (
	QuranName = "alquran"

	// a whole surah with two editions can be several megabytes
	surahTimeout = 30 * time.Second

	arabicEdition      = "quran-uthmani"
	translationEdition = "en.asad"
)

type quranSurahRef struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
}

type quranAyah struct {
	Text          string        `json:"text"`
	NumberInSurah int           `json:"numberInSurah"`
	Surah         quranSurahRef `json:"surah"`
}

type quranAyahResponse struct {
	Code int         `json:"code"`
	Data []quranAyah `json:"data"`
}

type quranSurahResponse struct {
	Code int `json:"code"`
	Data []struct {
		quranSurahRef
		Ayahs []quranAyah `json:"ayahs"`
	} `json:"data"`
}

type verseProvider struct {
	upstream
	logger *logger.Logger
}

// NewVerseProvider returns the api.alquran.cloud provider. Ayah lookups use
// timeout; whole surahs always get a longer per-call timeout.
func NewVerseProvider(baseURL string, timeout time.Duration, rateLimit float64, res Resilience, log *logger.Logger) (VerseProvider, error) {
	up, err := newUpstream(apiclient.Config{
		Name:      QuranName,
		BaseURL:   baseURL,
		Timeout:   timeout,
		RateLimit: rateLimit,
	}, res, log)
	if err != nil {
		return nil, err
	}
	return &verseProvider{upstream: up, logger: log}, nil
}

// Ayah calls /v1/ayah/{surah}:{ayah}/editions/{arabic},{translation}.
func (p *verseProvider) Ayah(ctx context.Context, surah, ayah int) (models.Verse, error) {
	if surah < 1 || surah > 114 || ayah < 1 {
		return models.Verse{}, ErrInvalidQuery
	}

	path := fmt.Sprintf("/v1/ayah/%d:%d/editions/%s,%s", surah, ayah, arabicEdition, translationEdition)
	resp, err := apiclient.Call[quranAyahResponse](ctx, p.client, p.breaker, p.retry,
		http.MethodGet, path, apiclient.RequestOptions{})
	if err != nil {
		return models.Verse{}, mapAPIError(QuranName, err)
	}
	if len(resp.Data) < 2 {
		return models.Verse{}, invalidResponse(QuranName, fmt.Sprintf("expected 2 editions, got %d", len(resp.Data)))
	}

	arabic, translation := resp.Data[0], resp.Data[1]
	return models.Verse{
		Surah:           arabic.Surah.Number,
		SurahName:       arabic.Surah.EnglishName,
		SurahNameArabic: arabic.Surah.Name,
		Ayah:            arabic.NumberInSurah,
		TextArabic:      arabic.Text,
		Translation:     translation.Text,
	}, nil
}

// Surah calls /v1/surah/{n}/editions/{arabic},{translation}.
func (p *verseProvider) Surah(ctx context.Context, surah int) (models.Surah, error) {
	if surah < 1 || surah > 114 {
		return models.Surah{}, ErrInvalidQuery
	}

	path := fmt.Sprintf("/v1/surah/%d/editions/%s,%s", surah, arabicEdition, translationEdition)
	resp, err := apiclient.Call[quranSurahResponse](ctx, p.client, p.breaker, p.retry,
		http.MethodGet, path, apiclient.RequestOptions{Timeout: surahTimeout})
	if err != nil {
		return models.Surah{}, mapAPIError(QuranName, err)
	}
	if len(resp.Data) < 2 {
		return models.Surah{}, invalidResponse(QuranName, fmt.Sprintf("expected 2 editions, got %d", len(resp.Data)))
	}

	arabic, translation := resp.Data[0], resp.Data[1]
	if len(arabic.Ayahs) != len(translation.Ayahs) {
		return models.Surah{}, invalidResponse(QuranName, "editions differ in length")
	}

	out := models.Surah{
		Number:     arabic.Number,
		Name:       arabic.EnglishName,
		NameArabic: arabic.Name,
		Verses:     make([]models.Verse, len(arabic.Ayahs)),
	}
	for i, a := range arabic.Ayahs {
		out.Verses[i] = models.Verse{
			Surah:           arabic.Number,
			SurahName:       arabic.EnglishName,
			SurahNameArabic: arabic.Name,
			Ayah:            a.NumberInSurah,
			TextArabic:      a.Text,
			Translation:     translation.Ayahs[i].Text,
		}
	}
	return out, nil
}
