// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the auth middleware when parsing the
// "Authorization" header.
var (
	// ErrEmptyAuthorizationHeader means the request has no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not of the form
	// "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme is present but the token is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	errInvalidJSON = errors.New("invalid JSON was passed")
)
