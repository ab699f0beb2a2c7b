// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid bookmark id")
	ErrInvalidSurah      = errors.New("surah must be between 1 and 114")
	ErrInvalidAyah       = errors.New("ayah must be a positive number")
	ErrInvalidColor      = errors.New("color must be in #RRGGBB form")
	ErrInvalidTag        = errors.New("tags must be non-empty and at most 64 characters")
	ErrTooManyTags       = errors.New("too many tags")
	ErrInvalidNote       = errors.New("note is too long")
	ErrInvalidTimestamps = errors.New("invalid bookmark timestamps")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrEmptyBatch        = errors.New("bookmark list cannot be empty")
	ErrBatchTooLarge     = errors.New("bookmark list is too large")
)
