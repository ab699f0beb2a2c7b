// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

const hadithBody = `{
  "status": 200,
  "message": "Hadiths has been found.",
  "hadiths": {
    "current_page": 1,
    "data": [{
      "id": 1,
      "hadithNumber": "1",
      "englishNarrator": " Narrated 'Umar bin Al-Khattab: ",
      "hadithEnglish": "Actions are judged by intentions.",
      "hadithArabic": "إنما الأعمال بالنيات",
      "bookSlug": "sahih-bukhari",
      "status": "Sahih",
      "chapter": {"chapterEnglish": "Revelation"}
    }]
  }
}`

func TestHadithProvider_Hadith(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/hadiths", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "sahih-bukhari", r.URL.Query().Get("book"))
		assert.Equal(t, "1", r.URL.Query().Get("hadithNumber"))
		_, _ = w.Write([]byte(hadithBody))
	}))
	defer srv.Close()

	p, err := NewHadithProvider(srv.URL, "key", 0, testResilience(), logger.Nop())
	require.NoError(t, err)

	got, err := p.Hadith(context.Background(), models.HadithQuery{Book: "sahih-bukhari", Number: "1"})
	require.NoError(t, err)
	assert.Equal(t, models.Hadith{
		Book:        "sahih-bukhari",
		Number:      "1",
		Chapter:     "Revelation",
		Narrator:    "Narrated 'Umar bin Al-Khattab:",
		TextEnglish: "Actions are judged by intentions.",
		TextArabic:  "إنما الأعمال بالنيات",
		Grade:       "Sahih",
	}, got)
}

func TestHadithProvider_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"Hadiths not found."}`))
	}))
	defer srv.Close()

	noKey, err := NewHadithProvider(srv.URL, "", 0, testResilience(), logger.Nop())
	require.NoError(t, err)
	_, err = noKey.Hadith(context.Background(), models.HadithQuery{Book: "b", Number: "1"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	p, err := NewHadithProvider(srv.URL, "key", 0, testResilience(), logger.Nop())
	require.NoError(t, err)

	_, err = p.Hadith(context.Background(), models.HadithQuery{Book: " "})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = p.Hadith(context.Background(), models.HadithQuery{Book: "b", Number: "99999"})
	assert.ErrorIs(t, err, apiclient.ErrNotFound)
	assert.Equal(t, apiclient.CodeNotFound.UserMessage(), apiclient.UserMessage(err))
}
