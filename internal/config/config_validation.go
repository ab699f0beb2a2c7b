// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks settings shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverPebble:
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BookmarksAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.CacheSize < 0 || cfg.Adapter.RateLimit < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	// minting a token needs only the signing settings
	if cfg.MintToken != "" {
		if cfg.App.TokenSignKey == "" {
			return ErrInvalidAppConfigs
		}
		return nil
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
