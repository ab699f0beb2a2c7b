// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-quran-keeper/internal/adapter"
	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/app"
	"github.com/MKhiriev/go-quran-keeper/internal/store"
	"github.com/MKhiriev/go-quran-keeper/internal/validators"
)

// UserMessage turns a client service error into text that can be shown to
// the user. Transport failures fall through to the resilient client's
// classification.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrInvalidBookmark):
		var details error = err
		for _, known := range validatorErrors {
			if errors.Is(err, known) {
				details = known
				break
			}
		}
		return app.MsgInvalidBookmark + ": " + details.Error()

	case errors.Is(err, store.ErrBookmarkNotFound):
		return app.MsgBookmarkNotFound

	case errors.Is(err, ErrSyncIncomplete):
		return app.MsgSyncIncomplete

	case errors.Is(err, adapter.ErrMissingAPIKey):
		return app.MsgMissingAPIKey

	case errors.Is(err, adapter.ErrInvalidQuery):
		return app.MsgInvalidQuery

	case errors.Is(err, ErrNoPrayerTimesProviders):
		return app.MsgNoProviders
	}

	if _, ok := apiclient.AsError(err); ok {
		return apiclient.UserMessage(err)
	}
	if errors.Is(err, adapter.ErrNoProviderResult) {
		return app.MsgNoProviders
	}

	return apiclient.UserMessage(err)
}

var validatorErrors = []error{
	validators.ErrInvalidSurah,
	validators.ErrInvalidAyah,
	validators.ErrInvalidColor,
	validators.ErrInvalidTag,
	validators.ErrTooManyTags,
	validators.ErrInvalidNote,
	validators.ErrNoFieldsToUpdate,
}
