// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-quran-keeper/internal/app"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/service"
	"github.com/MKhiriev/go-quran-keeper/internal/store"
	"github.com/MKhiriev/go-quran-keeper/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is consulted in order; the first matching sentinel wins.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{errInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidBookmark, errorResponse{http.StatusUnprocessableEntity, app.MsgInvalidBookmark}},
	{service.ErrEmptyOwnerID, errorResponse{http.StatusUnauthorized, app.MsgNoOwnerIDProvided}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgMissingToken}},
	{ErrInvalidAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgMissingToken}},
	{ErrEmptyToken, errorResponse{http.StatusUnauthorized, app.MsgMissingToken}},
	{service.ErrVersionIsNotSpecified, errorResponse{http.StatusInternalServerError, app.MsgVersionIsNotSpecified}},

	{store.ErrBookmarkNotFound, errorResponse{http.StatusNotFound, app.MsgBookmarkNotFound}},
	{store.ErrInvalidBookmark, errorResponse{http.StatusUnprocessableEntity, app.MsgInvalidBookmark}},
	{store.ErrTransient, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with the mapped status and message.
// Validation details are appended for 422 so the client can show which rule
// failed; internal errors never leak.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	var event *zerolog.Event
	if resp.status >= http.StatusInternalServerError {
		event = log.Err(err)
	} else {
		event = log.Warn().Err(err)
	}
	event.Str("func", funcName).Int("status", resp.status).Msg(resp.message)

	message := resp.message
	if resp.status == http.StatusUnprocessableEntity || resp.status == http.StatusBadRequest {
		message = message + ": " + err.Error()
	}

	utils.WriteError(w, resp.status, message, w.Header().Get(traceIDHeader))
}
