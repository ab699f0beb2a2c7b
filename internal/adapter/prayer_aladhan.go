// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

const (
	AladhanName    = "aladhan"
	aladhanTimeout = 8 * time.Second
)

type aladhanResponse struct {
	Code int `json:"code"`
	Data *struct {
		Timings map[string]string `json:"timings"`
		Date    struct {
			Gregorian struct {
				Date string `json:"date"`
			} `json:"gregorian"`
		} `json:"date"`
	} `json:"data"`
}

type aladhanProvider struct {
	upstream
	logger *logger.Logger
}

// NewAladhanProvider returns the api.aladhan.com prayer-time provider.
func NewAladhanProvider(baseURL string, rateLimit float64, res Resilience, log *logger.Logger) (PrayerTimesProvider, error) {
	up, err := newUpstream(apiclient.Config{
		Name:      AladhanName,
		BaseURL:   baseURL,
		Timeout:   aladhanTimeout,
		RateLimit: rateLimit,
	}, res, log)
	if err != nil {
		return nil, err
	}
	return &aladhanProvider{upstream: up, logger: log}, nil
}

func (p *aladhanProvider) Name() string {
	return AladhanName
}

// PrayerTimes calls /v1/timingsByCity[/DD-MM-YYYY].
func (p *aladhanProvider) PrayerTimes(ctx context.Context, query models.PrayerTimesQuery) (models.PrayerTimes, error) {
	if query.City == "" || query.Country == "" {
		return models.PrayerTimes{}, ErrInvalidQuery
	}

	path := "/v1/timingsByCity"
	if query.Date != "" {
		path += "/" + query.Date
	}
	params := map[string]string{
		"city":    query.City,
		"country": query.Country,
	}
	if query.Method > 0 {
		params["method"] = strconv.Itoa(query.Method)
	}

	resp, err := apiclient.Call[aladhanResponse](ctx, p.client, p.breaker, p.retry,
		http.MethodGet, path, apiclient.RequestOptions{Query: params})
	if err != nil {
		return models.PrayerTimes{}, mapAPIError(AladhanName, err)
	}
	if resp.Data == nil || len(resp.Data.Timings) == 0 {
		return models.PrayerTimes{}, invalidResponse(AladhanName, "missing timings")
	}

	t := resp.Data.Timings
	return models.PrayerTimes{
		Provider: AladhanName,
		Date:     resp.Data.Date.Gregorian.Date,
		Fajr:     clockTime(t["Fajr"]),
		Sunrise:  clockTime(t["Sunrise"]),
		Dhuhr:    clockTime(t["Dhuhr"]),
		Asr:      clockTime(t["Asr"]),
		Maghrib:  clockTime(t["Maghrib"]),
		Isha:     clockTime(t["Isha"]),
	}, nil
}

// clockTime reduces "05:12 (+03)" or "05:12:00" to "05:12".
func clockTime(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	if len(s) > 5 && s[2] == ':' && s[5] == ':' {
		s = s[:5]
	}
	return s
}
