// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

const (
	HadithName    = "hadithapi"
	hadithTimeout = 15 * time.Second
	hadithPath    = "/api/hadiths"
)

type hadithResponse struct {
	Status  int `json:"status"`
	Hadiths struct {
		Data []struct {
			HadithNumber    string `json:"hadithNumber"`
			EnglishNarrator string `json:"englishNarrator"`
			HadithEnglish   string `json:"hadithEnglish"`
			HadithArabic    string `json:"hadithArabic"`
			BookSlug        string `json:"bookSlug"`
			Status          string `json:"status"`
			Chapter         struct {
				ChapterEnglish string `json:"chapterEnglish"`
			} `json:"chapter"`
		} `json:"data"`
	} `json:"hadiths"`
}

type hadithProvider struct {
	upstream
	apiKey string
	logger *logger.Logger
}

// NewHadithProvider returns the hadithapi.com provider. The API key is sent
// as a query parameter on every call.
func NewHadithProvider(baseURL, apiKey string, rateLimit float64, res Resilience, log *logger.Logger) (HadithProvider, error) {
	up, err := newUpstream(apiclient.Config{
		Name:      HadithName,
		BaseURL:   baseURL,
		Timeout:   hadithTimeout,
		RateLimit: rateLimit,
	}, res, log)
	if err != nil {
		return nil, err
	}
	return &hadithProvider{upstream: up, apiKey: apiKey, logger: log}, nil
}

func (p *hadithProvider) Hadith(ctx context.Context, query models.HadithQuery) (models.Hadith, error) {
	if p.apiKey == "" {
		return models.Hadith{}, ErrMissingAPIKey
	}
	if strings.TrimSpace(query.Book) == "" || strings.TrimSpace(query.Number) == "" {
		return models.Hadith{}, ErrInvalidQuery
	}

	resp, err := apiclient.Call[hadithResponse](ctx, p.client, p.breaker, p.retry,
		http.MethodGet, hadithPath, apiclient.RequestOptions{Query: map[string]string{
			"apiKey":       p.apiKey,
			"book":         query.Book,
			"hadithNumber": query.Number,
		}})
	if err != nil {
		return models.Hadith{}, mapAPIError(HadithName, err)
	}
	if len(resp.Hadiths.Data) == 0 {
		return models.Hadith{}, invalidResponse(HadithName, "no hadith "+query.Book+"/"+query.Number)
	}

	h := resp.Hadiths.Data[0]
	book := h.BookSlug
	if book == "" {
		book = query.Book
	}
	return models.Hadith{
		Book:        book,
		Number:      h.HadithNumber,
		Chapter:     h.Chapter.ChapterEnglish,
		Narrator:    strings.TrimSpace(h.EnglishNarrator),
		TextEnglish: strings.TrimSpace(h.HadithEnglish),
		TextArabic:  strings.TrimSpace(h.HadithArabic),
		Grade:       h.Status,
	}, nil
}
