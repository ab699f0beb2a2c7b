// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/adapter"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
)

// probeTimeout bounds one health check.
const probeTimeout = 5 * time.Second

type connectivity struct {
	online atomic.Bool
}

// NewConnectivity returns a Connectivity starting in the given state.
func NewConnectivity(online bool) Connectivity {
	c := &connectivity{}
	c.online.Store(online)
	return c
}

func (c *connectivity) Online() bool {
	return c.online.Load()
}

func (c *connectivity) SetOnline(online bool) bool {
	return c.online.Swap(online) != online
}

type connectivityMonitor struct {
	remote       adapter.RemoteBookmarkStore
	connectivity Connectivity
	bookmarks    BookmarkService

	logger *logger.Logger
}

// NewConnectivityMonitor probes remote's health endpoint and reconciles
// bookmarks when the server becomes reachable again.
func NewConnectivityMonitor(
	remote adapter.RemoteBookmarkStore,
	connectivity Connectivity,
	bookmarks BookmarkService,
	log *logger.Logger,
) ConnectivityMonitor {
	return &connectivityMonitor{
		remote:       remote,
		connectivity: connectivity,
		bookmarks:    bookmarks,
		logger:       log,
	}
}

func (m *connectivityMonitor) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	err := m.remote.Health(probeCtx)
	cancel()

	online := err == nil
	if !m.connectivity.SetOnline(online) {
		return online
	}

	if !online {
		m.logger.Warn().Err(err).Str("func", "connectivityMonitor.Probe").Msg("bookmark server unreachable, working offline")
		return online
	}

	m.logger.Info().Str("func", "connectivityMonitor.Probe").Msg("bookmark server reachable again, reconciling")
	if err = m.bookmarks.Reconcile(ctx); err != nil {
		m.logger.Warn().Err(err).Str("func", "connectivityMonitor.Probe").Msg("reconcile after reconnect failed")
	}

	return online
}
