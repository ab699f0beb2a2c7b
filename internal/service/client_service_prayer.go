// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quran-keeper/internal/adapter"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

type prayerTimesService struct {
	providers []adapter.PrayerTimesProvider

	logger *logger.Logger
}

// NewPrayerTimesService asks providers in order and returns the first
// timetable any of them produces.
func NewPrayerTimesService(providers []adapter.PrayerTimesProvider, log *logger.Logger) PrayerTimesService {
	return &prayerTimesService{providers: providers, logger: log}
}

// PrayerTimes skips providers that cannot answer the query (for example a
// zone-only query for a city-based provider) without counting them as
// failures. When nobody answers, the error wraps adapter.ErrNoProviderResult
// together with every provider failure.
func (s *prayerTimesService) PrayerTimes(ctx context.Context, query models.PrayerTimesQuery) (models.PrayerTimes, error) {
	if len(s.providers) == 0 {
		return models.PrayerTimes{}, ErrNoPrayerTimesProviders
	}

	var errs []error
	for _, p := range s.providers {
		times, err := p.PrayerTimes(ctx, query)
		if err == nil {
			return times, nil
		}
		if ctx.Err() != nil {
			return models.PrayerTimes{}, fmt.Errorf("%s: %w", p.Name(), err)
		}

		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		if errors.Is(err, adapter.ErrInvalidQuery) {
			s.logger.Debug().Err(err).Str("provider", p.Name()).Msg("provider cannot serve query, trying next")
			continue
		}
		s.logger.Warn().Err(err).Str("provider", p.Name()).Msg("prayer times provider failed, trying next")
	}

	return models.PrayerTimes{}, fmt.Errorf("%w: %w", adapter.ErrNoProviderResult, errors.Join(errs...))
}
