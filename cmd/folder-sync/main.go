// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-folder-sync/internal/adapter"
	"github.com/MKhiriev/go-folder-sync/internal/client"
	"github.com/MKhiriev/go-folder-sync/internal/config"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/internal/service"
	"github.com/MKhiriev/go-folder-sync/internal/store"
	"github.com/MKhiriev/go-folder-sync/internal/utils"
	"github.com/MKhiriev/go-folder-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "go-folder-sync"

func main() {
	os.Exit(run())
}

func run() int {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	cfg, err := config.GetSyncConfig(os.Args[1:])
	if err != nil {
		logger.NewConsoleLogger(role, "error").Error().Err(err).Msg("error getting configs")
		return 1
	}

	log := logger.New(os.Stdout, role, logger.ParseLevel(cfg.Log.Level), logger.Format(cfg.Log.Format))
	log.Debug().
		Strs("profiles", cfg.Profiles).
		Str("api_url", cfg.Adapter.APIURL).
		Int("folder_urls", len(cfg.Sync.FolderURLs)).
		Str("version", info.Version).
		Str("commit", info.Commit).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	filtering, err := adapter.NewHTTPFilteringAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create filtering adapter")
		return 1
	}
	source := adapter.NewHTTPDefinitionSource(cfg.Adapter.RequestTimeout)

	journal, err := store.NewSyncJournal(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create sync journal")
		return 1
	}

	services := service.NewSyncServices(filtering, source, journal, cfg.Sync, log)

	app, err := client.NewApp(cfg, services, journal, utils.NewUUIDGenerator(), log)
	if err != nil {
		_ = journal.Close()
		log.Error().Err(err).Msg("init sync app error")
		return 1
	}

	return app.Run(ctx).ExitCode()
}
