// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quran-keeper/internal/adapter"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

type hadithService struct {
	provider adapter.HadithProvider
	logger   *logger.Logger
}

func NewHadithService(provider adapter.HadithProvider, log *logger.Logger) HadithService {
	return &hadithService{provider: provider, logger: log}
}

func (s *hadithService) Hadith(ctx context.Context, query models.HadithQuery) (models.Hadith, error) {
	query.Book = strings.TrimSpace(query.Book)
	query.Number = strings.TrimSpace(query.Number)
	if query.Book == "" || query.Number == "" {
		return models.Hadith{}, fmt.Errorf("%w: book and number are required", adapter.ErrInvalidQuery)
	}

	h, err := s.provider.Hadith(ctx, query)
	if err != nil {
		s.logger.Err(err).
			Str("func", "hadithService.Hadith").
			Str("book", query.Book).
			Str("number", query.Number).
			Msg("hadith lookup failed")
		return models.Hadith{}, fmt.Errorf("get hadith %s/%s: %w", query.Book, query.Number, err)
	}
	return h, nil
}

type verseService struct {
	provider adapter.VerseProvider
	logger   *logger.Logger
}

func NewVerseService(provider adapter.VerseProvider, log *logger.Logger) VerseService {
	return &verseService{provider: provider, logger: log}
}

func (s *verseService) Ayah(ctx context.Context, surah, ayah int) (models.Verse, error) {
	v, err := s.provider.Ayah(ctx, surah, ayah)
	if err != nil {
		return models.Verse{}, fmt.Errorf("get ayah %d:%d: %w", surah, ayah, err)
	}
	return v, nil
}

func (s *verseService) Surah(ctx context.Context, surah int) (models.Surah, error) {
	sr, err := s.provider.Surah(ctx, surah)
	if err != nil {
		return models.Surah{}, fmt.Errorf("get surah %d: %w", surah, err)
	}
	return sr, nil
}

// FillBookmarkInput never overwrites text the caller already supplied.
func (s *verseService) FillBookmarkInput(ctx context.Context, input *models.BookmarkInput) error {
	v, err := s.Ayah(ctx, input.Surah, input.Ayah)
	if err != nil {
		return err
	}

	fill := func(dst *string, value string) {
		if *dst == "" {
			*dst = value
		}
	}
	fill(&input.SurahName, v.SurahName)
	fill(&input.SurahNameArabic, v.SurahNameArabic)
	fill(&input.AyahTextArabic, v.TextArabic)
	fill(&input.Translation, v.Translation)
	fill(&input.AyahText, v.Translation)

	return nil
}
