// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus describes how a local bookmark relates to its remote copy.
type SyncStatus string

const (
	// SyncStatusSynced means the remote copy is known to match the local one.
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusPending means a local mutation has not been confirmed remotely.
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusConflict is reserved for divergence that needs a manual
	// decision. Last-writer-wins reconciliation never produces it.
	SyncStatusConflict SyncStatus = "conflict"
)

// Bookmark is a saved ayah reference together with a snapshot of its text.
//
// ID is generated on the client and never reassigned by the server, so the
// local and remote copies of one bookmark always share identity. Optional
// text fields are pointers so that "absent" and "empty" survive a JSON
// round-trip unchanged. Tags have no such distinction: an empty list is
// normalized to absent.
type Bookmark struct {
	ID              string     `json:"id"`
	Surah           int        `json:"surah"`
	SurahName       string     `json:"surah_name"`
	SurahNameArabic string     `json:"surah_name_arabic"`
	Ayah            int        `json:"ayah"`
	AyahText        string     `json:"ayah_text"`
	AyahTextArabic  string     `json:"ayah_text_arabic"`
	Translation     string     `json:"translation"`
	Transliteration *string    `json:"transliteration,omitempty"`
	Note            *string    `json:"note,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Color           *string    `json:"color,omitempty"`
	CollectionID    *string    `json:"collection_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	SyncStatus      SyncStatus `json:"sync_status"`
}

// BookmarkInput holds caller-supplied fields for a new bookmark. Identity,
// timestamps and sync status are assigned by the synchronizer.
type BookmarkInput struct {
	Surah           int
	SurahName       string
	SurahNameArabic string
	Ayah            int
	AyahText        string
	AyahTextArabic  string
	Translation     string
	Transliteration *string
	Note            *string
	Tags            []string
	Color           *string
	CollectionID    *string
}

// BookmarkChanges is a partial update. Nil fields are left untouched; a
// non-nil Tags slice replaces the tag list (an empty slice clears it).
type BookmarkChanges struct {
	SurahName       *string
	SurahNameArabic *string
	AyahText        *string
	AyahTextArabic  *string
	Translation     *string
	Transliteration *string
	Note            *string
	Tags            *[]string
	Color           *string
	CollectionID    *string
}

// Apply merges c into b. It does not touch identity, timestamps or sync
// status.
func (c BookmarkChanges) Apply(b *Bookmark) {
	if c.SurahName != nil {
		b.SurahName = *c.SurahName
	}
	if c.SurahNameArabic != nil {
		b.SurahNameArabic = *c.SurahNameArabic
	}
	if c.AyahText != nil {
		b.AyahText = *c.AyahText
	}
	if c.AyahTextArabic != nil {
		b.AyahTextArabic = *c.AyahTextArabic
	}
	if c.Translation != nil {
		b.Translation = *c.Translation
	}
	if c.Transliteration != nil {
		b.Transliteration = c.Transliteration
	}
	if c.Note != nil {
		b.Note = c.Note
	}
	if c.Tags != nil {
		b.Tags = *c.Tags
	}
	if c.Color != nil {
		b.Color = c.Color
	}
	if c.CollectionID != nil {
		b.CollectionID = c.CollectionID
	}
}

// IsEmpty reports whether c changes nothing.
func (c BookmarkChanges) IsEmpty() bool {
	return c == BookmarkChanges{}
}
