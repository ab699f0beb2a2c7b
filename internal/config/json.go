// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key,omitempty"`
		TokenIssuer   string   `json:"token_issuer,omitempty"`
		TokenDuration Duration `json:"token_duration,omitempty"`
		Token         string   `json:"token,omitempty"`
		LogLevel      string   `json:"log_level,omitempty"`
		LogPath       string   `json:"log_path,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn,omitempty"`
		} `json:"db,omitempty"`

		Local struct {
			Driver string `json:"driver,omitempty"`
			Path   string `json:"path,omitempty"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address,omitempty"`
		GRPCAddress     string   `json:"grpc_address,omitempty"`
		RequestTimeout  Duration `json:"request_timeout,omitempty"`
		ShutdownTimeout Duration `json:"shutdown_timeout,omitempty"`
	} `json:"server,omitempty"`

	Adapter struct {
		BookmarksAddress string   `json:"bookmarks_address,omitempty"`
		RequestTimeout   Duration `json:"request_timeout,omitempty"`
		AladhanURL       string   `json:"aladhan_url,omitempty"`
		JakimURL         string   `json:"jakim_url,omitempty"`
		HadithURL        string   `json:"hadith_url,omitempty"`
		HadithAPIKey     string   `json:"hadith_api_key,omitempty"`
		QuranURL         string   `json:"quran_url,omitempty"`
		CacheTTL         Duration `json:"cache_ttl,omitempty"`
		CacheSize        int      `json:"cache_size,omitempty"`
		RateLimit        float64  `json:"rate_limit,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval,omitempty"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Token:         jsonCfg.App.Token,
			LogLevel:      jsonCfg.App.LogLevel,
			LogPath:       jsonCfg.App.LogPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Local: Local{
				Driver: jsonCfg.Storage.Local.Driver,
				Path:   jsonCfg.Storage.Local.Path,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			BookmarksAddress: jsonCfg.Adapter.BookmarksAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			AladhanURL:       jsonCfg.Adapter.AladhanURL,
			JakimURL:         jsonCfg.Adapter.JakimURL,
			HadithURL:        jsonCfg.Adapter.HadithURL,
			HadithAPIKey:     jsonCfg.Adapter.HadithAPIKey,
			QuranURL:         jsonCfg.Adapter.QuranURL,
			CacheTTL:         time.Duration(jsonCfg.Adapter.CacheTTL),
			CacheSize:        jsonCfg.Adapter.CacheSize,
			RateLimit:        jsonCfg.Adapter.RateLimit,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
