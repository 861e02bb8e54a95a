// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-folder-sync/internal/config"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/internal/service"
	"github.com/MKhiriev/go-folder-sync/internal/store"
	"github.com/MKhiriev/go-folder-sync/models"
)

type App struct {
	profiles []string
	services *service.SyncServices
	journal  store.SyncJournal
	ids      IDGenerator

	logger *logger.Logger
}

func NewApp(cfg *config.SyncConfig, services *service.SyncServices, journal store.SyncJournal, ids IDGenerator, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if services == nil || services.SyncService == nil {
		return nil, errors.New("sync service is nil")
	}
	if journal == nil {
		return nil, errors.New("sync journal is nil")
	}
	if ids == nil {
		return nil, errors.New("id generator is nil")
	}

	return &App{
		profiles: cfg.Profiles,
		services: services,
		journal:  journal,
		ids:      ids,
		logger:   logger,
	}, nil
}

// Run syncs every profile once under a fresh run id and closes the journal.
func (a *App) Run(ctx context.Context) models.RunSummary {
	runID := a.ids.Generate()
	log := &logger.Logger{Logger: a.logger.With().Str("run_id", runID).Logger()}
	ctx = log.WithContext(ctx)
	log.Info().Strs("profiles", a.profiles).Msg("starting run")

	defer func() {
		if err := a.journal.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close sync journal")
		}
	}()

	summary := a.services.SyncService.SyncAll(ctx, runID, a.profiles)
	if ctx.Err() != nil {
		log.Warn().Err(ctx.Err()).Msg("run interrupted")
	}
	return summary
}
