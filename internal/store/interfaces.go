// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-folder-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncJournal records the outcome of every profile pass.
type SyncJournal interface {
	// SaveRun appends one profile result.
	SaveRun(ctx context.Context, run models.SyncRun) error

	// LastRuns returns up to limit results of profileID, newest first.
	LastRuns(ctx context.Context, profileID string, limit uint64) ([]models.SyncRun, error)

	// Close releases the underlying database.
	Close() error
}
