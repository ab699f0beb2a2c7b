// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/mock"
)

// ── Connectivity ─────────────────────────────────────────────────────────────

func TestConnectivity_SetOnline_ReportsTransitions(t *testing.T) {
	c := NewConnectivity(false)

	assert.False(t, c.Online())
	assert.True(t, c.SetOnline(true), "offline → online is a change")
	assert.False(t, c.SetOnline(true), "repeated state is not")
	assert.True(t, c.Online())
	assert.True(t, c.SetOnline(false))
	assert.False(t, c.Online())
}

func TestConnectivity_ConcurrentSwitch_OneWinner(t *testing.T) {
	c := NewConnectivity(false)

	var wg sync.WaitGroup
	var mu sync.Mutex
	changed := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.SetOnline(true) {
				mu.Lock()
				changed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, changed)
}

// ── connectivityMonitor.Probe ────────────────────────────────────────────────

func TestConnectivityMonitor_Probe(t *testing.T) {
	tests := []struct {
		name          string
		startOnline   bool
		healthErr     error
		wantOnline    bool
		wantReconcile bool
	}{
		{name: "reconnect reconciles", startOnline: false, healthErr: nil, wantOnline: true, wantReconcile: true},
		{name: "still online", startOnline: true, healthErr: nil, wantOnline: true, wantReconcile: false},
		{name: "goes offline", startOnline: true, healthErr: serverError(), wantOnline: false, wantReconcile: false},
		{name: "still offline", startOnline: false, healthErr: serverError(), wantOnline: false, wantReconcile: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			remote := mock.NewMockRemoteBookmarkStore(ctrl)
			bookmarks := mock.NewMockBookmarkService(ctrl)
			conn := NewConnectivity(tc.startOnline)

			remote.EXPECT().Health(gomock.Any()).Return(tc.healthErr)
			if tc.wantReconcile {
				bookmarks.EXPECT().Reconcile(gomock.Any()).Return(nil)
			}

			m := NewConnectivityMonitor(remote, conn, bookmarks, logger.Nop())

			assert.Equal(t, tc.wantOnline, m.Probe(context.Background()))
			assert.Equal(t, tc.wantOnline, conn.Online())
		})
	}
}

func TestConnectivityMonitor_Probe_ReconcileError_StillOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteBookmarkStore(ctrl)
	bookmarks := mock.NewMockBookmarkService(ctrl)
	conn := NewConnectivity(false)

	remote.EXPECT().Health(gomock.Any()).Return(nil)
	bookmarks.EXPECT().Reconcile(gomock.Any()).Return(ErrSyncIncomplete)

	m := NewConnectivityMonitor(remote, conn, bookmarks, logger.Nop())

	assert.True(t, m.Probe(context.Background()))
	assert.True(t, conn.Online())
}

func TestConnectivityMonitor_Probe_HealthHasDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteBookmarkStore(ctrl)
	conn := NewConnectivity(true)

	remote.EXPECT().Health(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(probeTimeout), deadline, time.Second)
		return nil
	})

	m := NewConnectivityMonitor(remote, conn, mock.NewMockBookmarkService(ctrl), logger.Nop())
	assert.True(t, m.Probe(context.Background()))
}
