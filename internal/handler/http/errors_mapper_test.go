// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quran-keeper/internal/app"
	"github.com/MKhiriev/go-quran-keeper/internal/service"
	"github.com/MKhiriev/go-quran-keeper/internal/store"
	"github.com/MKhiriev/go-quran-keeper/internal/utils"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid json", fmt.Errorf("%w: unexpected EOF", errInvalidJSON), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"invalid bookmark", service.ErrInvalidBookmark, http.StatusUnprocessableEntity, app.MsgInvalidBookmark},
		{"constraint violation", store.ErrInvalidBookmark, http.StatusUnprocessableEntity, app.MsgInvalidBookmark},
		{"no owner", service.ErrEmptyOwnerID, http.StatusUnauthorized, app.MsgNoOwnerIDProvided},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"no header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgMissingToken},
		{"not bearer", ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgMissingToken},
		{"empty token", ErrEmptyToken, http.StatusUnauthorized, app.MsgMissingToken},
		{"no version", service.ErrVersionIsNotSpecified, http.StatusInternalServerError, app.MsgVersionIsNotSpecified},
		{"not found", fmt.Errorf("delete: %w", store.ErrBookmarkNotFound), http.StatusNotFound, app.MsgBookmarkNotFound},
		{"transient", fmt.Errorf("list: %w", store.ErrTransient), http.StatusServiceUnavailable, app.MsgServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantMsg, resp.message)
		})
	}
}

func TestWriteError_UsesTraceIDHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set(traceIDHeader, "trace-42")
	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)

	writeError(rec, req, "test", store.ErrBookmarkNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "trace-42", body.TraceID)
	assert.Equal(t, app.MsgBookmarkNotFound, body.Error)
}

func TestWriteError_InternalDetailsHidden(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)

	writeError(rec, req, "test", errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}
