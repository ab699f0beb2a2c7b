// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input checks for bookmarks. The same validator
// guards the client synchronizer (before anything is stored locally) and
// the bookmark server (before a batch reaches PostgreSQL).
package validators

import "context"

// Validator validates a value, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
