// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-folder-sync/internal/adapter"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/models"
)

type directoryService struct {
	adapter adapter.FilteringAdapter
	logger  *logger.Logger
}

func NewDirectoryService(filtering adapter.FilteringAdapter, logger *logger.Logger) DirectoryService {
	return &directoryService{
		adapter: filtering,
		logger:  logger,
	}
}

func (s *directoryService) List(ctx context.Context, profileID string) models.FolderDirectory {
	log := logger.FromContext(ctx, s.logger)
	folders, err := s.adapter.ListFolders(ctx, profileID)
	if err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrDirectory, err)).
			Str("profile_id", profileID).
			Msg("failed to list existing folders, treating every folder as new")
		return models.NewFolderDirectory(nil)
	}

	dir := models.NewFolderDirectory(folders)
	log.Debug().
		Str("profile_id", profileID).
		Int("folders", dir.Len()).
		Msg("listed existing folders")
	return dir
}
