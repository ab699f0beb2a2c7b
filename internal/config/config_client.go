// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Token is the bearer token presented to the bookmark server.
	Token string
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogPath is the client log file.
	LogPath string
}

// ClientAdapter holds the upstream endpoints used by the client.
type ClientAdapter struct {
	BookmarksAddress string
	RequestTimeout   time.Duration
	AladhanURL       string
	JakimURL         string
	HadithURL        string
	HadithAPIKey     string
	QuranURL         string
	CacheTTL         time.Duration
	CacheSize        int
	RateLimit        float64
}

// ClientStorage locates the local bookmark store.
type ClientStorage struct {
	// Driver is [DriverSQLite] or [DriverPebble].
	Driver string
	// Path is the SQLite file or pebble directory.
	Path string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Token:    cfg.App.Token,
			LogLevel: cfg.App.LogLevel,
			LogPath:  cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			BookmarksAddress: cfg.Adapter.BookmarksAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			AladhanURL:       cfg.Adapter.AladhanURL,
			JakimURL:         cfg.Adapter.JakimURL,
			HadithURL:        cfg.Adapter.HadithURL,
			HadithAPIKey:     cfg.Adapter.HadithAPIKey,
			QuranURL:         cfg.Adapter.QuranURL,
			CacheTTL:         cfg.Adapter.CacheTTL,
			CacheSize:        cfg.Adapter.CacheSize,
			RateLimit:        cfg.Adapter.RateLimit,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Local.Driver,
			Path:   cfg.Storage.Local.Path,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
}
