// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncOperation is the remote action a queued bookmark is waiting for.
type SyncOperation string

const (
	SyncOperationUpsert SyncOperation = "upsert"
	SyncOperationDelete SyncOperation = "delete"
)

// SyncQueueEntry records a bookmark whose local mutation has not been
// confirmed by the remote store yet. There is at most one entry per ID; the
// latest operation replaces an earlier one.
type SyncQueueEntry struct {
	ID        string        `json:"id"`
	Operation SyncOperation `json:"operation"`
	QueuedAt  time.Time     `json:"queued_at"`
	Attempts  int           `json:"attempts,omitempty"`
	LastError string        `json:"last_error,omitempty"`
}

// ReconcilePlan is the outcome of comparing the local and the remote
// bookmark sets. Every bookmark lands in at most one category.
type ReconcilePlan struct {
	// Push holds local bookmarks that are newer than, or missing from, the
	// remote store.
	Push []Bookmark
	// Pull holds remote bookmarks that are newer than, or missing from, the
	// local store.
	Pull []Bookmark
	// MarkSynced holds local bookmarks whose remote copy carries the same
	// timestamp while the local status is still pending.
	MarkSynced []Bookmark
	// DropLocal holds previously synced local bookmarks that no longer exist
	// remotely, i.e. they were deleted from another device.
	DropLocal []Bookmark
}

// IsEmpty reports whether the plan requires no action.
func (p ReconcilePlan) IsEmpty() bool {
	return len(p.Push) == 0 && len(p.Pull) == 0 && len(p.MarkSynced) == 0 && len(p.DropLocal) == 0
}

// BookmarkBatch is the wire body for batch upserts and listings exchanged
// with the bookmark server.
type BookmarkBatch struct {
	Bookmarks []Bookmark `json:"bookmarks"`
	Length    int        `json:"length"`
}
