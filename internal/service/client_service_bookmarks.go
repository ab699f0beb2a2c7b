// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/adapter"
	"github.com/MKhiriev/go-quran-keeper/internal/apiclient"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/store"
	"github.com/MKhiriev/go-quran-keeper/internal/utils"
	"github.com/MKhiriev/go-quran-keeper/internal/validators"
	"github.com/MKhiriev/go-quran-keeper/models"
)

// pushBatchSize bounds one PUT during reconcile.
const pushBatchSize = 100

type bookmarkService struct {
	local        store.LocalBookmarkRepository
	remote       adapter.RemoteBookmarkStore
	validator    validators.Validator
	connectivity Connectivity
	ids          *utils.UUIDGenerator
	clock        func() time.Time

	// mu serialises read-modify-write cycles on the local store. It is never
	// held across a remote call.
	mu sync.Mutex
	// confirmed maps ids to the moment a push was confirmed. Reconcile uses
	// it to tell a bookmark pushed during the pass from one deleted remotely.
	confirmed map[string]time.Time

	reconciling atomic.Bool

	logger *logger.Logger
}

// NewBookmarkService builds the synchronizer on top of the local repository
// and the remote store. connectivity decides whether mutations are pushed
// immediately or only queued.
func NewBookmarkService(
	local store.LocalBookmarkRepository,
	remote adapter.RemoteBookmarkStore,
	connectivity Connectivity,
	log *logger.Logger,
) BookmarkService {
	return &bookmarkService{
		local:        local,
		remote:       remote,
		validator:    validators.NewBookmarkValidator(),
		connectivity: connectivity,
		ids:          utils.NewUUIDGenerator(),
		clock:        time.Now,
		confirmed:    make(map[string]time.Time),
		logger:       log,
	}
}

func (s *bookmarkService) Add(ctx context.Context, input models.BookmarkInput) (models.Bookmark, error) {
	input.Tags = validators.NormalizeTags(input.Tags)
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidBookmark, err)
	}

	now := s.now()
	b := models.Bookmark{
		ID:              s.ids.Generate(),
		Surah:           input.Surah,
		SurahName:       input.SurahName,
		SurahNameArabic: input.SurahNameArabic,
		Ayah:            input.Ayah,
		AyahText:        input.AyahText,
		AyahTextArabic:  input.AyahTextArabic,
		Translation:     input.Translation,
		Transliteration: input.Transliteration,
		Note:            input.Note,
		Tags:            input.Tags,
		Color:           input.Color,
		CollectionID:    input.CollectionID,
		CreatedAt:       now,
		UpdatedAt:       now,
		SyncStatus:      models.SyncStatusPending,
	}

	if err := s.saveAndEnqueue(ctx, b); err != nil {
		return models.Bookmark{}, err
	}

	return s.push(ctx, b), nil
}

func (s *bookmarkService) Update(ctx context.Context, id string, changes models.BookmarkChanges) (models.Bookmark, error) {
	if changes.Tags != nil {
		tags := validators.NormalizeTags(*changes.Tags)
		changes.Tags = &tags
	}
	if err := s.validator.Validate(ctx, changes); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidBookmark, err)
	}

	b, err := s.applyChanges(ctx, id, changes)
	if err != nil {
		return models.Bookmark{}, err
	}

	return s.push(ctx, b), nil
}

func (s *bookmarkService) applyChanges(ctx context.Context, id string, changes models.BookmarkChanges) (models.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.local.Get(ctx, id)
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("get bookmark %s: %w", id, err)
	}

	changes.Apply(&b)

	// updated_at must move forward even when the clock did not, otherwise
	// last-writer-wins could lose this edit.
	now := s.now()
	if !now.After(b.UpdatedAt) {
		now = b.UpdatedAt.Add(time.Millisecond)
	}
	b.UpdatedAt = now
	b.SyncStatus = models.SyncStatusPending

	if err = s.local.Save(ctx, b); err != nil {
		return models.Bookmark{}, fmt.Errorf("save bookmark %s locally: %w", id, err)
	}
	if err = s.local.Enqueue(ctx, s.queueEntry(id, models.SyncOperationUpsert)); err != nil {
		return models.Bookmark{}, fmt.Errorf("enqueue bookmark %s: %w", id, err)
	}

	return b, nil
}

func (s *bookmarkService) Remove(ctx context.Context, id string) error {
	removed, found, err := s.removeLocal(ctx, id)
	if err != nil || !found {
		return err
	}

	if removed.SyncStatus != models.SyncStatusSynced || !s.Online() {
		return nil
	}

	err = s.remote.Delete(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "bookmarkService.Remove").
			Str("id", id).
			Msg("remote delete failed, keeping it queued")
	}
	s.settle(ctx, id, models.SyncOperationDelete, err)

	return nil
}

// removeLocal records the delete intent and then deletes the bookmark, in
// one locked step. The queue entry is written first: a crash between the two
// writes leaves a bookmark with a queued delete, never a missing bookmark
// without one.
func (s *bookmarkService) removeLocal(ctx context.Context, id string) (models.Bookmark, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.local.Get(ctx, id)
	if errors.Is(err, store.ErrBookmarkNotFound) {
		return models.Bookmark{}, false, nil
	}
	if err != nil {
		return models.Bookmark{}, false, fmt.Errorf("get bookmark %s: %w", id, err)
	}

	queue, err := s.local.Queue(ctx)
	if err != nil {
		return models.Bookmark{}, false, fmt.Errorf("read sync queue: %w", err)
	}

	if err = s.local.Enqueue(ctx, s.queueEntry(id, models.SyncOperationDelete)); err != nil {
		return models.Bookmark{}, false, fmt.Errorf("enqueue delete of %s: %w", id, err)
	}
	if err = s.local.Delete(ctx, id); err != nil {
		s.restoreQueueEntry(ctx, id, queue)
		return models.Bookmark{}, false, fmt.Errorf("delete bookmark %s locally: %w", id, err)
	}
	delete(s.confirmed, id)

	return b, true, nil
}

// restoreQueueEntry puts back the entry id had in queue before a failed
// remove, or drops the delete when there was none.
func (s *bookmarkService) restoreQueueEntry(ctx context.Context, id string, queue []models.SyncQueueEntry) {
	var err error
	restored := false
	for _, e := range queue {
		if e.ID == id {
			err = s.local.Enqueue(ctx, e)
			restored = true
			break
		}
	}
	if !restored {
		err = s.local.Dequeue(ctx, id)
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "bookmarkService.restoreQueueEntry").
			Str("id", id).
			Msg("failed to roll back queued delete")
	}
}

func (s *bookmarkService) Get(ctx context.Context, id string) (models.Bookmark, error) {
	b, err := s.local.Get(ctx, id)
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("get bookmark %s: %w", id, err)
	}
	return b, nil
}

func (s *bookmarkService) List(ctx context.Context) ([]models.Bookmark, error) {
	if s.Online() {
		if err := s.Reconcile(ctx); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "bookmarkService.List").
				Msg("reconcile before list failed")
		}
	}

	bookmarks, err := s.local.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (s *bookmarkService) SetOnline(online bool) {
	if s.connectivity.SetOnline(online) {
		s.logger.Info().Bool("online", online).Msg("connectivity changed")
	}
}

func (s *bookmarkService) Online() bool {
	return s.connectivity.Online()
}

// reconcileStats is logged at the end of every pass.
type reconcileStats struct {
	pulled  int
	dropped int
	marked  int
	pushed  int
	drained int
	failed  int
	lastErr error
}

func (s *bookmarkService) Reconcile(ctx context.Context) error {
	if !s.reconciling.CompareAndSwap(false, true) {
		s.logger.Debug().Str("func", "bookmarkService.Reconcile").Msg("reconcile already running, skipped")
		return nil
	}
	defer s.reconciling.Store(false)

	snapshotAt := s.now()
	remote, err := s.remote.List(ctx)
	if err != nil {
		return fmt.Errorf("list remote bookmarks: %w", err)
	}

	var stats reconcileStats

	plan, err := s.mergeRemote(ctx, remote, snapshotAt, &stats)
	if err != nil {
		return err
	}

	failedPush := s.pushAll(ctx, plan.Push, &stats)
	if err = s.drainQueue(ctx, failedPush, &stats); err != nil {
		return err
	}

	s.logger.Info().
		Str("func", "bookmarkService.Reconcile").
		Int("pulled", stats.pulled).
		Int("dropped", stats.dropped).
		Int("marked_synced", stats.marked).
		Int("pushed", stats.pushed).
		Int("drained", stats.drained).
		Int("failed", stats.failed).
		Msg("reconcile finished")

	if stats.failed > 0 {
		return fmt.Errorf("%w: %d operations failed: %w", ErrSyncIncomplete, stats.failed, stats.lastErr)
	}
	return nil
}

// mergeRemote builds the plan against the current local state and applies
// its local half (Pull, DropLocal, MarkSynced) under one lock.
func (s *bookmarkService) mergeRemote(
	ctx context.Context,
	remote []models.Bookmark,
	snapshotAt time.Time,
	stats *reconcileStats,
) (models.ReconcilePlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	local, err := s.local.List(ctx)
	if err != nil {
		return models.ReconcilePlan{}, fmt.Errorf("list local bookmarks: %w", err)
	}
	queue, err := s.local.Queue(ctx)
	if err != nil {
		return models.ReconcilePlan{}, fmt.Errorf("load sync queue: %w", err)
	}

	plan, err := BuildReconcilePlan(ctx, local, remote, queue)
	if err != nil {
		return models.ReconcilePlan{}, fmt.Errorf("build reconcile plan: %w", err)
	}

	queued := make(map[string]models.SyncOperation, len(queue))
	for _, e := range queue {
		queued[e.ID] = e.Operation
	}
	// a pulled or confirmed record no longer needs its queued upsert
	dropQueuedUpsert := func(id string) error {
		if queued[id] != models.SyncOperationUpsert {
			return nil
		}
		return s.local.Dequeue(ctx, id)
	}

	if len(plan.Pull) > 0 {
		pulled := make([]models.Bookmark, 0, len(plan.Pull))
		for _, b := range plan.Pull {
			b.SyncStatus = models.SyncStatusSynced
			pulled = append(pulled, b)
		}
		if err = s.local.Save(ctx, pulled...); err != nil {
			return models.ReconcilePlan{}, fmt.Errorf("save pulled bookmarks: %w", err)
		}
		for _, b := range pulled {
			if err = dropQueuedUpsert(b.ID); err != nil {
				return models.ReconcilePlan{}, fmt.Errorf("dequeue pulled bookmark %s: %w", b.ID, err)
			}
		}
		stats.pulled = len(pulled)
	}

	for _, b := range plan.DropLocal {
		if t, ok := s.confirmed[b.ID]; ok && !t.Before(snapshotAt) {
			// pushed after the remote snapshot was taken
			continue
		}
		if err = s.local.Delete(ctx, b.ID); err != nil {
			return models.ReconcilePlan{}, fmt.Errorf("drop bookmark %s deleted remotely: %w", b.ID, err)
		}
		if err = dropQueuedUpsert(b.ID); err != nil {
			return models.ReconcilePlan{}, fmt.Errorf("dequeue dropped bookmark %s: %w", b.ID, err)
		}
		stats.dropped++
	}

	for _, b := range plan.MarkSynced {
		b.SyncStatus = models.SyncStatusSynced
		if err = s.local.Save(ctx, b); err != nil {
			return models.ReconcilePlan{}, fmt.Errorf("mark bookmark %s synced: %w", b.ID, err)
		}
		if err = dropQueuedUpsert(b.ID); err != nil {
			return models.ReconcilePlan{}, fmt.Errorf("dequeue synced bookmark %s: %w", b.ID, err)
		}
		stats.marked++
	}

	for id, t := range s.confirmed {
		if t.Before(snapshotAt) {
			delete(s.confirmed, id)
		}
	}

	return plan, nil
}

// pushAll uploads bookmarks in batches and returns the ids whose push
// failed; they stay pending and queued.
func (s *bookmarkService) pushAll(ctx context.Context, bookmarks []models.Bookmark, stats *reconcileStats) map[string]struct{} {
	failed := make(map[string]struct{})

	for start := 0; start < len(bookmarks); start += pushBatchSize {
		chunk := bookmarks[start:min(start+pushBatchSize, len(bookmarks))]

		if err := s.remote.Upsert(ctx, chunk...); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "bookmarkService.pushAll").
				Int("count", len(chunk)).
				Msg("push failed, bookmarks stay queued")
			for _, b := range chunk {
				s.settle(ctx, b.ID, models.SyncOperationUpsert, err)
				failed[b.ID] = struct{}{}
			}
			stats.failed += len(chunk)
			stats.lastErr = err
			continue
		}

		for _, b := range chunk {
			s.markSynced(ctx, b)
		}
		stats.pushed += len(chunk)
	}

	return failed
}

// drainQueue replays queued operations oldest first. Entries that failed
// earlier in the same pass are skipped, and an open circuit stops the
// drain since every further call would fail the same way.
func (s *bookmarkService) drainQueue(ctx context.Context, skip map[string]struct{}, stats *reconcileStats) error {
	queue, err := s.local.Queue(ctx)
	if err != nil {
		return fmt.Errorf("load sync queue: %w", err)
	}

	for _, e := range queue {
		if ctx.Err() != nil {
			break
		}
		if _, ok := skip[e.ID]; ok {
			continue
		}

		switch e.Operation {
		case models.SyncOperationDelete:
			err = s.remote.Delete(ctx, e.ID)
			s.settle(ctx, e.ID, e.Operation, err)

		case models.SyncOperationUpsert:
			var b models.Bookmark
			b, err = s.local.Get(ctx, e.ID)
			if errors.Is(err, store.ErrBookmarkNotFound) {
				s.settle(ctx, e.ID, e.Operation, nil)
				continue
			}
			if err != nil {
				return fmt.Errorf("get queued bookmark %s: %w", e.ID, err)
			}
			if err = s.remote.Upsert(ctx, b); err != nil {
				s.settle(ctx, e.ID, e.Operation, err)
			} else {
				s.markSynced(ctx, b)
			}

		default:
			s.logger.Warn().
				Str("func", "bookmarkService.drainQueue").
				Str("id", e.ID).
				Str("operation", string(e.Operation)).
				Msg("unknown queue operation, dropping entry")
			s.settle(ctx, e.ID, e.Operation, nil)
			continue
		}

		if err != nil {
			stats.failed++
			stats.lastErr = err
			if errors.Is(err, apiclient.ErrCircuitOpen) {
				break
			}
			continue
		}
		stats.drained++
	}

	return nil
}

// push uploads one bookmark when online. Failures are recorded on the
// queue entry and the pending bookmark is returned unchanged.
func (s *bookmarkService) push(ctx context.Context, b models.Bookmark) models.Bookmark {
	if !s.Online() {
		return b
	}

	if err := s.remote.Upsert(ctx, b); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "bookmarkService.push").
			Str("id", b.ID).
			Msg("push failed, bookmark queued")
		s.settle(ctx, b.ID, models.SyncOperationUpsert, err)
		return b
	}

	if s.markSynced(ctx, b) {
		b.SyncStatus = models.SyncStatusSynced
	}
	return b
}

// markSynced flags the local copy as synced and drops its queued upsert,
// unless the bookmark was edited or removed after b was read.
func (s *bookmarkService) markSynced(ctx context.Context, b models.Bookmark) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.local.Get(ctx, b.ID)
	if err != nil || !cur.UpdatedAt.Equal(b.UpdatedAt) {
		return false
	}

	cur.SyncStatus = models.SyncStatusSynced
	if err = s.local.Save(ctx, cur); err != nil {
		s.logger.Err(err).
			Str("func", "bookmarkService.markSynced").
			Str("id", b.ID).
			Msg("failed to mark bookmark synced")
		return false
	}
	s.confirmed[b.ID] = s.now()

	if err = s.dequeueIf(ctx, b.ID, models.SyncOperationUpsert); err != nil {
		s.logger.Err(err).
			Str("func", "bookmarkService.markSynced").
			Str("id", b.ID).
			Msg("failed to dequeue synced bookmark")
	}
	return true
}

// settle resolves the queue entry of id after a remote attempt for op:
// success removes it, failure counts the attempt. An entry replaced by a
// different operation in the meantime is left alone.
func (s *bookmarkService) settle(ctx context.Context, id string, op models.SyncOperation, attemptErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if attemptErr == nil {
		err = s.dequeueIf(ctx, id, op)
	} else {
		err = s.recordFailure(ctx, id, op, attemptErr)
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "bookmarkService.settle").
			Str("id", id).
			Str("operation", string(op)).
			Msg("failed to update sync queue")
	}
}

// dequeueIf expects s.mu to be held.
func (s *bookmarkService) dequeueIf(ctx context.Context, id string, op models.SyncOperation) error {
	entry, ok, err := s.findEntry(ctx, id)
	if err != nil || !ok || entry.Operation != op {
		return err
	}
	return s.local.Dequeue(ctx, id)
}

// recordFailure expects s.mu to be held.
func (s *bookmarkService) recordFailure(ctx context.Context, id string, op models.SyncOperation, attemptErr error) error {
	entry, ok, err := s.findEntry(ctx, id)
	if err != nil {
		return err
	}
	if ok && entry.Operation != op {
		return nil
	}
	if !ok {
		entry = s.queueEntry(id, op)
	}

	entry.Attempts++
	entry.LastError = attemptErr.Error()
	return s.local.Enqueue(ctx, entry)
}

func (s *bookmarkService) findEntry(ctx context.Context, id string) (models.SyncQueueEntry, bool, error) {
	queue, err := s.local.Queue(ctx)
	if err != nil {
		return models.SyncQueueEntry{}, false, err
	}
	for _, e := range queue {
		if e.ID == id {
			return e, true, nil
		}
	}
	return models.SyncQueueEntry{}, false, nil
}

func (s *bookmarkService) saveAndEnqueue(ctx context.Context, b models.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.local.Save(ctx, b); err != nil {
		return fmt.Errorf("save bookmark %s locally: %w", b.ID, err)
	}
	if err := s.local.Enqueue(ctx, s.queueEntry(b.ID, models.SyncOperationUpsert)); err != nil {
		return fmt.Errorf("enqueue bookmark %s: %w", b.ID, err)
	}
	return nil
}

func (s *bookmarkService) queueEntry(id string, op models.SyncOperation) models.SyncQueueEntry {
	return models.SyncQueueEntry{ID: id, Operation: op, QueuedAt: s.now()}
}

// now returns UTC time truncated to the millisecond precision stored on
// both sides.
func (s *bookmarkService) now() time.Time {
	return s.clock().UTC().Truncate(time.Millisecond)
}
