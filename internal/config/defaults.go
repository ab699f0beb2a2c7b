// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverSQLite = "sqlite"
	DriverPebble = "pebble"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "quran-keeper",
			TokenDuration: 30 * 24 * time.Hour,
			LogLevel:      "info",
		},
		Storage: Storage{
			Local: Local{
				Driver: DriverSQLite,
				Path:   "bookmarks.db",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			GRPCAddress:     "localhost:9090",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			BookmarksAddress: "http://localhost:8080",
			RequestTimeout:   10 * time.Second,
			AladhanURL:       "https://api.aladhan.com",
			JakimURL:         "https://www.e-solat.gov.my",
			HadithURL:        "https://hadithapi.com",
			QuranURL:         "https://api.alquran.cloud",
			CacheTTL:         time.Hour,
			CacheSize:        256,
		},
		Workers: Workers{
			SyncInterval: time.Minute,
		},
	}
}
