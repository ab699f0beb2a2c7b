// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-quran-keeper/models"
)

// BuildReconcilePlan compares the local and the remote bookmark sets and
// classifies every id into at most one action. It is a pure function: it
// reads nothing but its arguments and changes nothing.
//
// Conflicts are resolved with whole-record last-writer-wins on updated_at:
//
//   - both sides, local newer: Push; remote newer: Pull; equal: nothing,
//     except that a local pending record becomes MarkSynced;
//   - local only: a pending record is Push (never uploaded), a synced one is
//     DropLocal (deleted on another device);
//   - remote only: Pull, unless queue holds a delete for the id.
//
// ctx is checked on every iteration so a long comparison can be abandoned.
func BuildReconcilePlan(
	ctx context.Context,
	local, remote []models.Bookmark,
	queue []models.SyncQueueEntry,
) (models.ReconcilePlan, error) {
	var plan models.ReconcilePlan

	localIndex := make(map[string]models.Bookmark, len(local))
	for _, b := range local {
		localIndex[b.ID] = b
	}

	queuedDeletes := make(map[string]struct{})
	for _, e := range queue {
		if e.Operation == models.SyncOperationDelete {
			queuedDeletes[e.ID] = struct{}{}
		}
	}

	remoteIDs := make(map[string]struct{}, len(remote))

	// ── Pass 1: remote records ──────────────────────────────────────────────
	for _, rb := range remote {
		if err := ctx.Err(); err != nil {
			return models.ReconcilePlan{}, err
		}
		remoteIDs[rb.ID] = struct{}{}

		lb, existsLocally := localIndex[rb.ID]
		if !existsLocally {
			if _, deleted := queuedDeletes[rb.ID]; deleted {
				// stale copy, the queued delete removes it during the drain
				continue
			}
			plan.Pull = append(plan.Pull, rb)
			continue
		}

		switch {
		case lb.UpdatedAt.After(rb.UpdatedAt):
			plan.Push = append(plan.Push, lb)
		case rb.UpdatedAt.After(lb.UpdatedAt):
			plan.Pull = append(plan.Pull, rb)
		case lb.SyncStatus != models.SyncStatusSynced:
			plan.MarkSynced = append(plan.MarkSynced, lb)
		}
	}

	// ── Pass 2: local-only records ──────────────────────────────────────────
	for _, lb := range local {
		if err := ctx.Err(); err != nil {
			return models.ReconcilePlan{}, err
		}

		if _, existsRemotely := remoteIDs[lb.ID]; existsRemotely {
			continue
		}

		if lb.SyncStatus == models.SyncStatusSynced {
			plan.DropLocal = append(plan.DropLocal, lb)
		} else {
			plan.Push = append(plan.Push, lb)
		}
	}

	return plan, nil
}
