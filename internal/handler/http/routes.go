// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	router.Use(withGzipRequest)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", promhttp.Handler())
	})

	// bookmark routes, scoped to the token owner
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/bookmarks", h.listBookmarks)
		r.Put("/api/bookmarks", h.upsertBookmarks)
		r.Delete("/api/bookmarks/{id}", h.deleteBookmark)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
