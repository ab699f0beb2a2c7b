// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds token and logging settings of the bookmark server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	LogLevel      string
}

// ServerConfig is the bookmark server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Storage DB
	// MintToken is the owner id to mint a token for; empty for normal runs.
	MintToken string
}

// GetServerConfig builds and validates the bookmark server config.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.serverView()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) serverView() *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			LogLevel:      cfg.App.LogLevel,
		},
		Server:    cfg.Server,
		Storage:   cfg.Storage.DB,
		MintToken: cfg.MintToken,
	}
}
