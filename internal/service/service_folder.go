// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-folder-sync/internal/adapter"
	"github.com/MKhiriev/go-folder-sync/internal/config"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/models"
)

// sleepFunc waits for d or until ctx is done.
type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type folderService struct {
	adapter         adapter.FilteringAdapter
	settleDelay     time.Duration
	resolveAttempts int
	sleep           sleepFunc

	logger *logger.Logger
}

func NewFolderService(filtering adapter.FilteringAdapter, opts config.SyncOptions, logger *logger.Logger) FolderService {
	attempts := opts.ResolveAttempts
	if attempts < 1 {
		attempts = config.DefaultResolveAttempts
	}

	return &folderService{
		adapter:         filtering,
		settleDelay:     opts.SettleDelay,
		resolveAttempts: attempts,
		sleep:           sleepContext,
		logger:          logger,
	}
}

func (s *folderService) Delete(ctx context.Context, profileID, name, folderID string) error {
	log := logger.FromContext(ctx, s.logger)
	if err := s.adapter.DeleteFolder(ctx, profileID, folderID); err != nil {
		log.Err(err).
			Str("profile_id", profileID).
			Str("folder", name).
			Str("folder_id", folderID).
			Msg("failed to delete folder")
		return fmt.Errorf("%w %q (id %s): %w", ErrDelete, name, folderID, err)
	}

	log.Info().
		Str("profile_id", profileID).
		Str("folder", name).
		Str("folder_id", folderID).
		Msg("deleted folder")
	return nil
}

func (s *folderService) Create(ctx context.Context, profileID string, def models.FolderDefinition, known models.FolderDirectory) (string, error) {
	log := logger.FromContext(ctx, s.logger).With().
		Str("profile_id", profileID).
		Str("folder", def.Name).
		Logger()

	if err := s.adapter.CreateFolder(ctx, profileID, models.NewFolderRequest(def)); err != nil {
		log.Err(err).Msg("failed to create folder")
		return "", fmt.Errorf("%w %q: %w", ErrCreation, def.Name, err)
	}

	var listErr error
	for attempt := 1; attempt <= s.resolveAttempts; attempt++ {
		if attempt > 1 {
			if err := s.sleep(ctx, s.settleDelay); err != nil {
				return "", fmt.Errorf("%w %q: %w", ErrCreationVerification, def.Name, err)
			}
		}

		folders, err := s.adapter.ListFolders(ctx, profileID)
		if err != nil {
			listErr = err
			log.Warn().Err(err).Int("attempt", attempt).Msg("failed to list folders after creation")
			continue
		}

		id, ok := resolveCreated(models.NewFolderDirectory(folders), def.Name, known)
		if !ok {
			continue
		}
		if known.ContainsID(id) {
			log.Warn().Str("folder_id", id).Msg("created folder not distinguishable from a pre-existing one")
		}

		log.Info().Str("folder_id", id).Msg("created folder")
		if err := s.sleep(ctx, s.settleDelay); err != nil {
			return "", fmt.Errorf("%w %q (id %s): %w", ErrCreation, def.Name, id, err)
		}
		return id, nil
	}

	err := fmt.Errorf("%w: %q after %d listing(s)", ErrCreationVerification, def.Name, s.resolveAttempts)
	if listErr != nil {
		err = errors.Join(err, listErr)
	}
	log.Err(err).Msg("folder was not found after creation")
	return "", err
}

// resolveCreated picks the id of the folder called name, preferring one that
// was not in known.
func resolveCreated(dir models.FolderDirectory, name string, known models.FolderDirectory) (string, bool) {
	matches := dir.Matching(name)
	if len(matches) == 0 {
		return "", false
	}

	for _, f := range matches {
		if !known.ContainsID(f.ID) {
			return f.ID, true
		}
	}
	return matches[0].ID, true
}
