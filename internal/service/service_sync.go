// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/internal/store"
	"github.com/MKhiriev/go-folder-sync/models"
)

type syncService struct {
	definitions DefinitionService
	directory   DirectoryService
	folders     FolderService
	rules       RuleService
	journal     store.SyncJournal

	folderURLs []string
	now        func() time.Time

	logger *logger.Logger
}

// SyncProfile runs FetchDefinitions, DeleteStale and CreateAndPush for one
// profile. Only an empty definition set fails the pass early; every other
// failure is confined to the folder it happened in.
func (s *syncService) SyncProfile(ctx context.Context, profileID string) models.SyncResult {
	log := logger.FromContext(ctx, s.logger).WithProfile(profileID)
	result := models.SyncResult{ProfileID: profileID, StartedAt: s.now()}

	log.Info().Msg("starting sync")

	defs := s.definitions.FetchAll(ctx, s.folderURLs)
	if len(defs) == 0 {
		result.Err = ErrNoDefinitions
		result.FinishedAt = s.now()
		log.Error().Err(result.Err).Msg("sync failed")
		return result
	}
	result.Total = len(defs)

	existing := s.directory.List(ctx, profileID)
	for _, def := range defs {
		for _, folder := range existing.Matching(def.Name) {
			// failures are logged by the folder service and never abort the pass
			_ = s.folders.Delete(ctx, profileID, folder.Name, folder.ID)
		}
	}

	for _, def := range defs {
		folderID, err := s.folders.Create(ctx, profileID, def, existing)
		if err != nil {
			continue
		}
		if err = s.rules.Push(ctx, profileID, folderID, def); err != nil {
			continue
		}
		result.Succeeded++
	}

	result.FinishedAt = s.now()
	log.Info().
		Int("succeeded", result.Succeeded).
		Int("total", result.Total).
		Dur("took", result.Duration()).
		Msgf("sync complete: %d/%d folders processed successfully", result.Succeeded, result.Total)
	return result
}

func (s *syncService) SyncAll(ctx context.Context, runID string, profileIDs []string) models.RunSummary {
	log := logger.FromContext(ctx, s.logger)
	summary := models.RunSummary{RunID: runID, Results: make([]models.SyncResult, 0, len(profileIDs))}

	for _, profileID := range profileIDs {
		s.logPreviousRun(ctx, profileID)

		result := s.SyncProfile(ctx, profileID)
		summary.Results = append(summary.Results, result)

		if err := s.journal.SaveRun(ctx, models.NewSyncRun(runID, result)); err != nil {
			log.Warn().Err(err).Str("profile_id", profileID).Msg("failed to record sync run")
		}
	}

	log.Info().
		Int("succeeded", summary.Succeeded()).
		Int("total", len(summary.Results)).
		Msgf("all profiles processed: %d/%d successful", summary.Succeeded(), len(summary.Results))
	return summary
}

func (s *syncService) logPreviousRun(ctx context.Context, profileID string) {
	log := logger.FromContext(ctx, s.logger)
	runs, err := s.journal.LastRuns(ctx, profileID, 1)
	if err != nil {
		log.Warn().Err(err).Str("profile_id", profileID).Msg("failed to read sync journal")
		return
	}
	if len(runs) == 0 {
		return
	}

	prev := runs[0]
	log.Info().
		Str("profile_id", profileID).
		Str("run_id", prev.RunID).
		Bool("success", prev.Success).
		Int("succeeded", prev.Succeeded).
		Int("total", prev.Total).
		Time("finished_at", prev.FinishedAt).
		Msg("previous sync")
}
