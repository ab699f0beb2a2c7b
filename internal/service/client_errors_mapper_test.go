// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-quran-keeper/internal/adapter"
	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/app"
	"github.com/MKhiriev/go-quran-keeper/internal/store"
	"github.com/MKhiriev/go-quran-keeper/internal/validators"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "invalid bookmark names the rule",
			err:  fmt.Errorf("%w: %w", ErrInvalidBookmark, validators.ErrInvalidSurah),
			want: app.MsgInvalidBookmark + ": " + validators.ErrInvalidSurah.Error(),
		},
		{
			name: "not found",
			err:  fmt.Errorf("get bookmark x: %w", store.ErrBookmarkNotFound),
			want: app.MsgBookmarkNotFound,
		},
		{
			name: "sync incomplete",
			err:  fmt.Errorf("%w: 2 operations failed: %w", ErrSyncIncomplete, apiclient.ErrServer),
			want: app.MsgSyncIncomplete,
		},
		{
			name: "missing api key",
			err:  fmt.Errorf("get hadith: %w", adapter.ErrMissingAPIKey),
			want: app.MsgMissingAPIKey,
		},
		{
			name: "invalid query",
			err:  fmt.Errorf("%w: book and number are required", adapter.ErrInvalidQuery),
			want: app.MsgInvalidQuery,
		},
		{
			name: "no providers configured",
			err:  ErrNoPrayerTimesProviders,
			want: app.MsgNoProviders,
		},
		{
			name: "transport error uses its own message",
			err:  fmt.Errorf("list remote bookmarks: %w", apiclient.FromStatus(429, "slow down")),
			want: apiclient.CodeRateLimit.UserMessage(),
		},
		{
			name: "no provider result without transport detail",
			err:  fmt.Errorf("%w: %w", adapter.ErrNoProviderResult, errors.New("boom")),
			want: app.MsgNoProviders,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UserMessage(tc.err))
		})
	}
}

func TestUserMessage_UnknownError_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, UserMessage(errors.New("disk on fire")))
}
