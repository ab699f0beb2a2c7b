// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/service"
	"github.com/MKhiriev/go-quran-keeper/internal/utils"
	"github.com/MKhiriev/go-quran-keeper/models"
)

// maxBodyBytes bounds a decoded PUT body.
const maxBodyBytes = 8 << 20

type upsertResponse struct {
	Received int   `json:"received"`
	Written  int64 `json:"written"`
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.listBookmarks", service.ErrEmptyOwnerID)
		return
	}

	bookmarks, err := h.services.BookmarkService.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, "Handler.listBookmarks", err)
		return
	}
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}

	utils.WriteJSON(w, models.BookmarkBatch{Bookmarks: bookmarks, Length: len(bookmarks)}, http.StatusOK)
}

// upsertBookmarks stores a batch. Rows the server already holds in a newer
// version are skipped, so Written can be less than Received.
func (h *Handler) upsertBookmarks(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.upsertBookmarks", service.ErrEmptyOwnerID)
		return
	}

	var batch models.BookmarkBatch
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&batch); err != nil {
		writeError(w, r, "Handler.upsertBookmarks", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	written, err := h.services.BookmarkService.Upsert(r.Context(), ownerID, batch)
	if err != nil {
		writeError(w, r, "Handler.upsertBookmarks", err)
		return
	}

	logger.FromRequest(r).Debug().
		Int("received", len(batch.Bookmarks)).
		Int64("written", written).
		Msg("bookmarks stored")

	utils.WriteJSON(w, upsertResponse{Received: len(batch.Bookmarks), Written: written}, http.StatusOK)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.deleteBookmark", service.ErrEmptyOwnerID)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.services.BookmarkService.Delete(r.Context(), ownerID, id); err != nil {
		writeError(w, r, "Handler.deleteBookmark", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
