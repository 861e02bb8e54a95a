// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-folder-sync/internal/config"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
)

// NewSyncJournal initialises the sync journal. With an empty cfg.DSN the
// returned journal discards every run. Otherwise it:
//  1. Opens the SQLite database, creating the file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Returns a [SyncJournal] backed by that database.
func NewSyncJournal(ctx context.Context, cfg config.SyncStorage, logger *logger.Logger) (SyncJournal, error) {
	if cfg.DSN == "" {
		logger.Debug().Msg("sync journal disabled")
		return nopJournal{}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSyncRunRepository(db, logger), nil
}
