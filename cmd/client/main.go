// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-quran-keeper/internal/adapter"
	"github.com/MKhiriev/go-quran-keeper/internal/client"
	"github.com/MKhiriev/go-quran-keeper/internal/config"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/service"
	"github.com/MKhiriev/go-quran-keeper/internal/store"
	"github.com/MKhiriev/go-quran-keeper/internal/utils"
	"github.com/MKhiriev/go-quran-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("quran-keeper-client", cfg.App.LogPath)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}
	log.Debug().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("client started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// without a token the client works offline as the local owner
	ownerID, err := utils.ParseOwnerIDFromJWT(cfg.App.Token)
	if err != nil {
		log.Err(err).Msg("invalid client token")
		fmt.Fprintln(os.Stderr, "the configured token is not a valid JWT")
		return 2
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, ownerID, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		fmt.Fprintf(os.Stderr, "cannot open local storage: %v\n", err)
		return 1
	}
	defer storages.Close()

	adapters, err := adapter.NewAdapters(cfg.Adapter, cfg.App.Token, adapter.DefaultResilience(), log)
	if err != nil {
		log.Err(err).Msg("create adapters")
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 2
	}

	services := service.NewClientServices(storages, adapters, log)
	app := client.NewApp(services, workers.NewWorkers(services, cfg.Workers, log), os.Stdout, os.Stderr, log)

	if err = app.Run(ctx, flag.Args()); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, client.Message(err))
		return 1
	}

	return 0
}
