// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/config"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the client workers. Today that is the bookmark sync loop.
func NewWorkers(services *service.ClientServices, cfg config.ClientWorkers, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{newSyncWorker(services.SyncJob, cfg.SyncInterval)},
		logger:  log,
	}
}

func (w *Workers) Run(ctx context.Context) {
	w.logger.Debug().Int("count", len(w.workers)).Msg("starting workers")
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.logger.Debug().Msg("workers stopped")
}

type syncWorker struct {
	job      service.BookmarkSyncJob
	interval time.Duration
}

func newSyncWorker(job service.BookmarkSyncJob, interval time.Duration) *syncWorker {
	return &syncWorker{job: job, interval: interval}
}

func (s *syncWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *syncWorker) Stop() {
	s.job.Stop()
}
