// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

const (
	JakimName    = "jakim"
	jakimTimeout = 8 * time.Second
	jakimPath    = "/index.php"
)

type jakimResponse struct {
	Status     string `json:"status"`
	Zone       string `json:"zone"`
	PrayerTime []struct {
		Date    string `json:"date"`
		Fajr    string `json:"fajr"`
		Syuruk  string `json:"syuruk"`
		Dhuhr   string `json:"dhuhr"`
		Asr     string `json:"asr"`
		Maghrib string `json:"maghrib"`
		Isha    string `json:"isha"`
	} `json:"prayerTime"`
}

type jakimProvider struct {
	upstream
	logger *logger.Logger
}

// NewJakimProvider returns the JAKIM e-Solat provider. It only knows
// Malaysian zones such as "SGR01".
func NewJakimProvider(baseURL string, rateLimit float64, res Resilience, log *logger.Logger) (PrayerTimesProvider, error) {
	up, err := newUpstream(apiclient.Config{
		Name:      JakimName,
		BaseURL:   baseURL,
		Timeout:   jakimTimeout,
		RateLimit: rateLimit,
	}, res, log)
	if err != nil {
		return nil, err
	}
	return &jakimProvider{upstream: up, logger: log}, nil
}

func (p *jakimProvider) Name() string {
	return JakimName
}

// PrayerTimes calls esolatApi/takwimsolat for today's timetable of the zone.
func (p *jakimProvider) PrayerTimes(ctx context.Context, query models.PrayerTimesQuery) (models.PrayerTimes, error) {
	if query.Zone == "" {
		return models.PrayerTimes{}, ErrInvalidQuery
	}

	resp, err := apiclient.Call[jakimResponse](ctx, p.client, p.breaker, p.retry,
		http.MethodGet, jakimPath, apiclient.RequestOptions{Query: map[string]string{
			"r":      "esolatApi/takwimsolat",
			"period": "today",
			"zone":   query.Zone,
		}})
	if err != nil {
		return models.PrayerTimes{}, mapAPIError(JakimName, err)
	}
	if len(resp.PrayerTime) == 0 {
		return models.PrayerTimes{}, invalidResponse(JakimName, "empty prayerTime for zone "+query.Zone)
	}

	day := resp.PrayerTime[0]
	return models.PrayerTimes{
		Provider: JakimName,
		Date:     day.Date,
		Fajr:     clockTime(day.Fajr),
		Sunrise:  clockTime(day.Syuruk),
		Dhuhr:    clockTime(day.Dhuhr),
		Asr:      clockTime(day.Asr),
		Maghrib:  clockTime(day.Maghrib),
		Isha:     clockTime(day.Isha),
	}, nil
}
