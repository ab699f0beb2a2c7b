// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnauthorized     = errors.New("client unauthorized")
	ErrInvalidResponse  = errors.New("unexpected upstream response")
	ErrEmptyResponse    = errors.New("upstream returned no data")
	ErrMissingAPIKey    = errors.New("api key is not configured")
	ErrInvalidQuery     = errors.New("invalid query")
	ErrNoProviderResult = errors.New("no provider returned a result")
)
