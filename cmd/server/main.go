// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quran-keeper/internal/config"
	"github.com/MKhiriev/go-quran-keeper/internal/handler"
	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/server"
	"github.com/MKhiriev/go-quran-keeper/internal/service"
	"github.com/MKhiriev/go-quran-keeper/internal/store"
	"github.com/MKhiriev/go-quran-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("quran-keeper-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}

	if cfg.MintToken != "" {
		mintToken(cfg, log)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// mintToken prints a signed bearer token for cfg.MintToken.
func mintToken(cfg *config.ServerConfig, log *logger.Logger) {
	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), cfg.MintToken)
	if err != nil {
		log.Fatal().Err(err).Msg("error minting token")
	}
	fmt.Println(token.SignedString)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
