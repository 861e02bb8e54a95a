// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-folder-sync/internal/adapter"
	"github.com/MKhiriev/go-folder-sync/internal/config"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/models"
	"github.com/rs/zerolog"
)

var errDuplicateWithoutHostname = errors.New("duplicate rule reported without a hostname")

type ruleService struct {
	adapter     adapter.FilteringAdapter
	batchSize   int
	blockAction int

	logger *logger.Logger
}

func NewRuleService(filtering adapter.FilteringAdapter, opts config.SyncOptions, logger *logger.Logger) RuleService {
	return &ruleService{
		adapter:     filtering,
		batchSize:   opts.BatchSize,
		blockAction: opts.BlockAction,
		logger:      logger,
	}
}

func (s *ruleService) Push(ctx context.Context, profileID, folderID string, def models.FolderDefinition) error {
	log := logger.FromContext(ctx, s.logger).With().
		Str("profile_id", profileID).
		Str("folder", def.Name).
		Str("folder_id", folderID).
		Logger()

	if len(def.Hostnames) == 0 {
		log.Info().Msg("no rules to push")
		return nil
	}

	batches := models.SplitBatches(def.Hostnames, s.batchSize)
	for i, hostnames := range batches {
		batch := models.RuleBatch{
			Index:     i + 1,
			FolderID:  folderID,
			Action:    def.Action,
			Status:    def.Status,
			Hostnames: hostnames,
		}

		if err := s.pushBatch(ctx, profileID, batch, log); err != nil {
			log.Err(err).
				Int("batch", batch.Index).
				Int("batches", len(batches)).
				Msg("failed to push rules, abandoning remaining batches")
			return fmt.Errorf("%w %d/%d of folder %q (id %s): %w",
				ErrBatchPush, batch.Index, len(batches), def.Name, folderID, err)
		}
	}

	log.Info().Int("rules", len(def.Hostnames)).Int("batches", len(batches)).Msg("finished pushing rules")
	return nil
}

// pushBatch uploads one batch. A duplicate-rule rejection is recovered at
// most once: block folders delete the conflicting rule and resend the batch,
// other folders treat the batch as already satisfied.
func (s *ruleService) pushBatch(ctx context.Context, profileID string, batch models.RuleBatch, log zerolog.Logger) error {
	err := s.adapter.CreateRules(ctx, profileID, batch)
	if err == nil {
		log.Info().Int("batch", batch.Index).Int("rules", len(batch.Hostnames)).Msg("added rules")
		return nil
	}

	dup, ok := adapter.IsDuplicateRule(err)
	if !ok {
		return err
	}

	if batch.Action != s.blockAction {
		log.Warn().
			Int("batch", batch.Index).
			Str("hostname", dup.Hostname).
			Msg("rule already exists in allow folder, counting batch as satisfied")
		return nil
	}

	if dup.Hostname == "" {
		return fmt.Errorf("%w: %w", errDuplicateWithoutHostname, err)
	}
	if err := s.adapter.DeleteRule(ctx, profileID, dup.Hostname); err != nil {
		return fmt.Errorf("delete conflicting rule %s: %w", dup.Hostname, err)
	}
	log.Info().
		Int("batch", batch.Index).
		Str("hostname", dup.Hostname).
		Msg("deleted conflicting rule, retrying batch")

	err = s.adapter.CreateRules(ctx, profileID, batch)
	switch {
	case err == nil:
		log.Info().Int("batch", batch.Index).Int("rules", len(batch.Hostnames)).Msg("added rules")
		return nil
	case isDuplicate(err):
		log.Warn().Err(err).Int("batch", batch.Index).Msg("batch still reports a duplicate, counting as satisfied")
		return nil
	default:
		return err
	}
}

func isDuplicate(err error) bool {
	_, ok := adapter.IsDuplicateRule(err)
	return ok
}
