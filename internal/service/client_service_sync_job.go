// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
)

// DefaultSyncInterval is used when Start gets a non-positive interval.
const DefaultSyncInterval = 5 * time.Minute

type bookmarkSyncJob struct {
	monitor      ConnectivityMonitor
	connectivity Connectivity
	bookmarks    BookmarkService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewBookmarkSyncJob creates a job that probes the bookmark server and
// reconciles on a ticker. The job is idle until Start is called.
func NewBookmarkSyncJob(
	monitor ConnectivityMonitor,
	connectivity Connectivity,
	bookmarks BookmarkService,
	log *logger.Logger,
) BookmarkSyncJob {
	return &bookmarkSyncJob{
		monitor:      monitor,
		connectivity: connectivity,
		bookmarks:    bookmarks,
		logger:       log,
	}
}

// Start implements BookmarkSyncJob. Every tick probes the server; when it
// was already online before the probe a reconcile pass follows (a fresh
// reconnect has just been reconciled by the monitor).
func (j *bookmarkSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *bookmarkSyncJob) tick(ctx context.Context) {
	wasOnline := j.connectivity.Online()
	if !j.monitor.Probe(ctx) || !wasOnline {
		return
	}

	if err := j.bookmarks.Reconcile(ctx); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).Str("func", "bookmarkSyncJob.tick").Msg("background reconcile failed")
	}
}

// Stop implements BookmarkSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited.
func (j *bookmarkSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
