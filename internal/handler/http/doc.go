// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the REST transport of the bookmark server.
//
// Routes are wired on a chi router. Every request gets a trace id and an
// access log line; bookmark routes additionally require a bearer token whose
// subject becomes the owner of every row the request touches. Errors are
// answered with a JSON [utils.ErrorResponse] whose status comes from
// errorStatusMap.
package http
