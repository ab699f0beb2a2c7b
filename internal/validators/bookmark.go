// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-quran-keeper/models"
)

const (
	FieldID         = "id"
	FieldSurah      = "surah"
	FieldAyah       = "ayah"
	FieldColor      = "color"
	FieldTags       = "tags"
	FieldNote       = "note"
	FieldTimestamps = "timestamps"
	FieldBookmarks  = "bookmarks"
)

const (
	MinSurah = 1
	MaxSurah = 114

	MaxTags        = 32
	MaxTagLength   = 64
	MaxNoteLength  = 4096
	MaxBatchLength = 1000
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// BookmarkValidator checks bookmarks, new-bookmark input, partial updates
// and upload batches. Value and pointer forms are both accepted.
type BookmarkValidator struct {
}

func NewBookmarkValidator() Validator {
	return &BookmarkValidator{}
}

func (v *BookmarkValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Bookmark:
		return v.validateBookmark(ctx, value, fields...)
	case *models.Bookmark:
		return v.validateBookmark(ctx, *value, fields...)

	case models.BookmarkInput:
		return v.validateInput(ctx, value, fields...)
	case *models.BookmarkInput:
		return v.validateInput(ctx, *value, fields...)

	case models.BookmarkChanges:
		return v.validateChanges(ctx, value)
	case *models.BookmarkChanges:
		return v.validateChanges(ctx, *value)

	case models.BookmarkBatch:
		return v.validateBatch(ctx, value, fields...)
	case *models.BookmarkBatch:
		return v.validateBatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BookmarkValidator) validateBookmark(ctx context.Context, b models.Bookmark, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldSurah, FieldAyah, FieldColor, FieldTags, FieldNote, FieldTimestamps}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			if strings.TrimSpace(b.ID) == "" || len(b.ID) > 64 {
				err = ErrInvalidID
			}
		case FieldSurah:
			err = checkSurah(b.Surah)
		case FieldAyah:
			err = checkAyah(b.Ayah)
		case FieldColor:
			err = checkColor(b.Color)
		case FieldTags:
			err = checkTags(b.Tags)
		case FieldNote:
			err = checkNote(b.Note)
		case FieldTimestamps:
			if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() || b.UpdatedAt.Before(b.CreatedAt) {
				err = ErrInvalidTimestamps
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BookmarkValidator) validateInput(ctx context.Context, in models.BookmarkInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSurah, FieldAyah, FieldColor, FieldTags, FieldNote}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldSurah:
			err = checkSurah(in.Surah)
		case FieldAyah:
			err = checkAyah(in.Ayah)
		case FieldColor:
			err = checkColor(in.Color)
		case FieldTags:
			err = checkTags(in.Tags)
		case FieldNote:
			err = checkNote(in.Note)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateChanges always checks every present field.
func (v *BookmarkValidator) validateChanges(ctx context.Context, c models.BookmarkChanges) error {
	if c.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if err := checkColor(c.Color); err != nil {
		return err
	}
	if c.Tags != nil {
		if err := checkTags(*c.Tags); err != nil {
			return err
		}
	}
	return checkNote(c.Note)
}

func (v *BookmarkValidator) validateBatch(ctx context.Context, batch models.BookmarkBatch, fields ...string) error {
	if len(batch.Bookmarks) == 0 {
		return ErrEmptyBatch
	}
	if len(batch.Bookmarks) > MaxBatchLength {
		return ErrBatchTooLarge
	}

	for i, b := range batch.Bookmarks {
		if err := v.validateBookmark(ctx, b, fields...); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}
	return nil
}

func checkSurah(surah int) error {
	if surah < MinSurah || surah > MaxSurah {
		return ErrInvalidSurah
	}
	return nil
}

func checkAyah(ayah int) error {
	if ayah < 1 {
		return ErrInvalidAyah
	}
	return nil
}

func checkColor(color *string) error {
	if color != nil && !colorPattern.MatchString(*color) {
		return ErrInvalidColor
	}
	return nil
}

func checkTags(tags []string) error {
	if len(tags) > MaxTags {
		return ErrTooManyTags
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" || utf8.RuneCountInString(tag) > MaxTagLength {
			return ErrInvalidTag
		}
	}
	return nil
}

func checkNote(note *string) error {
	if note != nil && utf8.RuneCountInString(*note) > MaxNoteLength {
		return ErrInvalidNote
	}
	return nil
}

// NormalizeTags trims every tag, drops blanks and duplicates and keeps the
// first-seen order. An input without any usable tag returns nil.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
