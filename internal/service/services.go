// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-folder-sync/internal/adapter"
	"github.com/MKhiriev/go-folder-sync/internal/config"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/internal/store"
)

// SyncServices groups the services of one run.
type SyncServices struct {
	DefinitionService DefinitionService
	DirectoryService  DirectoryService
	FolderService     FolderService
	RuleService       RuleService
	SyncService       SyncService
}

// NewSyncServices wires the services around one filtering adapter, one
// definition source and one journal. The definition cache lives as long as
// the returned value.
func NewSyncServices(
	filtering adapter.FilteringAdapter,
	source adapter.DefinitionSource,
	journal store.SyncJournal,
	opts config.SyncOptions,
	logger *logger.Logger,
) *SyncServices {
	definitionSvc := NewDefinitionService(source, logger)
	directorySvc := NewDirectoryService(filtering, logger)
	folderSvc := NewFolderService(filtering, opts, logger)
	ruleSvc := NewRuleService(filtering, opts, logger)

	return &SyncServices{
		DefinitionService: definitionSvc,
		DirectoryService:  directorySvc,
		FolderService:     folderSvc,
		RuleService:       ruleSvc,
		SyncService: &syncService{
			definitions: definitionSvc,
			directory:   directorySvc,
			folders:     folderSvc,
			rules:       ruleSvc,
			journal:     journal,
			folderURLs:  opts.FolderURLs,
			now:         time.Now,
			logger:      logger,
		},
	}
}
