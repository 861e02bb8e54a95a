// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/models"
)

type syncRunRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncRunRepository returns the SQL implementation of [SyncJournal].
func NewSyncRunRepository(db *DB, logger *logger.Logger) SyncJournal {
	return &syncRunRepository{
		db:     db,
		logger: logger,
	}
}

func (r *syncRunRepository) SaveRun(ctx context.Context, run models.SyncRun) error {
	query, args, err := buildInsertSyncRunQuery(run)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "syncRunRepository.SaveRun").
			Str("run_id", run.RunID).
			Str("profile_id", run.ProfileID).
			Msg("failed to insert sync run")
		return fmt.Errorf("%w: save sync run: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *syncRunRepository) LastRuns(ctx context.Context, profileID string, limit uint64) ([]models.SyncRun, error) {
	query, args, err := buildSelectLastSyncRunsQuery(profileID, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncRunRepository.LastRuns").
			Str("profile_id", profileID).
			Msg("failed to query sync runs")
		return nil, fmt.Errorf("%w: last sync runs: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var runs []models.SyncRun
	for rows.Next() {
		var run models.SyncRun
		if err = rows.Scan(
			&run.RunID,
			&run.ProfileID,
			&run.Total,
			&run.Succeeded,
			&run.Success,
			&run.Error,
			&run.StartedAt,
			&run.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}

func (r *syncRunRepository) Close() error {
	return r.db.Close()
}

// nopJournal is used when no journal database is configured.
type nopJournal struct{}

func (nopJournal) SaveRun(context.Context, models.SyncRun) error { return nil }

func (nopJournal) LastRuns(context.Context, string, uint64) ([]models.SyncRun, error) {
	return nil, nil
}

func (nopJournal) Close() error { return nil }
