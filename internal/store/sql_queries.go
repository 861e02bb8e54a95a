// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-folder-sync/models"
)

const syncRunsTable = "sync_runs"

var syncRunColumns = []string{
	"run_id",
	"profile_id",
	"folders_total",
	"folders_succeeded",
	"success",
	"error",
	"started_at",
	"finished_at",
}

// sqlite uses ? placeholders
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertSyncRunQuery(run models.SyncRun) (string, []any, error) {
	query, args, err := qb.
		Insert(syncRunsTable).
		Columns(syncRunColumns...).
		Values(
			run.RunID,
			run.ProfileID,
			run.Total,
			run.Succeeded,
			run.Success,
			run.Error,
			run.StartedAt.UTC(),
			run.FinishedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: insert sync run: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectLastSyncRunsQuery(profileID string, limit uint64) (string, []any, error) {
	query, args, err := qb.
		Select(syncRunColumns...).
		From(syncRunsTable).
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("started_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select sync runs: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
