// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the bookmark server
// handlers and the client CLI.
//
// Server messages are written into HTTP error bodies; client messages are
// printed to the terminal. Keeping them in one place keeps the wording
// consistent between the two.
package app

// Server response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidBookmark is returned when a bookmark in a batch fails
	// validation (surah, ayah, colour, tags, note or timestamps).
	MsgInvalidBookmark = "invalid bookmark"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the database failure is
	// transient and the client should retry.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMissingToken is returned when the Authorization header is absent or
	// is not a bearer token.
	MsgMissingToken = "missing bearer token"

	// MsgNoOwnerIDProvided is returned when a handler requires the owner id
	// taken from the token but none is present in the request context.
	MsgNoOwnerIDProvided = "no owner ID provided"

	// MsgBookmarkNotFound is returned when a delete targets a bookmark that
	// does not exist for the current owner.
	MsgBookmarkNotFound = "bookmark not found"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// binary was built without version information.
	MsgVersionIsNotSpecified = "version is not specified"
)

// Client messages.
const (
	// MsgSyncIncomplete is shown when a reconcile pass left work queued.
	MsgSyncIncomplete = "some changes could not be synced yet and will be retried"

	// MsgMissingAPIKey is shown when the hadith API key is not configured.
	MsgMissingAPIKey = "hadith API key is not configured"

	// MsgInvalidQuery is shown when a lookup lacks the parameters a provider
	// needs.
	MsgInvalidQuery = "the query is missing required parameters"

	// MsgNoProviders is shown when no data provider could answer.
	MsgNoProviders = "no provider could answer the request"
)
