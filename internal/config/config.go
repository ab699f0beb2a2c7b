// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the bookmark server. It is populated by merging values from
// environment variables, command-line flags and an optional JSON file; the
// client and server then take their own views with [GetClientConfig] and
// [GetServerConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, logging and version settings.
	App App `envPrefix:"APP_"`

	// Storage holds the server database and the client local store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the bookmark server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the upstream endpoints used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// MintToken, when set, makes the server print a signed token for this
	// owner id and exit.
	MintToken string `env:"MINT_TOKEN"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs and verifies JWT tokens on the server.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a minted token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Token is the bearer token the client presents to the bookmark server.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogPath is the client log file. Empty means a "logs" file next to the
	// executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB is the server PostgreSQL database.
	DB DB `envPrefix:"DB_"`

	// Local is the client bookmark store.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local selects and locates the client key-value store.
type Local struct {
	// Driver is "sqlite" or "pebble".
	// Env: STORAGE_LOCAL_DRIVER
	Driver string `env:"DRIVER"`

	// Path is the SQLite database or pebble directory. ":memory:" keeps everything
	// in process memory.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port the gRPC health server listens on.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the endpoints the client talks to.
type Adapter struct {
	// BookmarksAddress is the bookmark server base URL.
	// Env: ADAPTER_BOOKMARKS_ADDRESS
	BookmarksAddress string `env:"BOOKMARKS_ADDRESS"`

	// RequestTimeout is the default per-attempt timeout of outbound calls.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Env: ADAPTER_ALADHAN_URL
	AladhanURL string `env:"ALADHAN_URL"`
	// Env: ADAPTER_JAKIM_URL
	JakimURL string `env:"JAKIM_URL"`
	// Env: ADAPTER_HADITH_URL
	HadithURL string `env:"HADITH_URL"`
	// Env: ADAPTER_HADITH_API_KEY
	HadithAPIKey string `env:"HADITH_API_KEY"`
	// Env: ADAPTER_QURAN_URL
	QuranURL string `env:"QURAN_URL"`

	// CacheTTL is how long prayer times, hadith and verses stay cached.
	// Env: ADAPTER_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`

	// CacheSize is the number of cached responses per provider.
	// Env: ADAPTER_CACHE_SIZE
	CacheSize int `env:"CACHE_SIZE"`

	// RateLimit caps requests per second to each public API; zero disables it.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is the period of the background bookmark sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
