// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// SyncAdapter holds the filtering service client settings.
type SyncAdapter struct {
	APIURL         string        `validate:"required"`
	Token          string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gt=0"`
	RetryAttempts  int           `validate:"gte=1,lte=10"`
	RetryDelay     time.Duration `validate:"gt=0"`
	DuplicateCodes []string
}

// SyncOptions tunes the reconciliation.
type SyncOptions struct {
	FolderURLs      []string      `validate:"min=1,dive,url"`
	BatchSize       int           `validate:"gte=1,lte=500"`
	SettleDelay     time.Duration `validate:"gte=0"`
	ResolveAttempts int           `validate:"gte=1,lte=10"`
	BlockAction     int           `validate:"gte=0"`
}

// SyncStorage holds the journal DSN. Empty disables the journal.
type SyncStorage struct {
	DSN string
}

// SyncLog selects the logger.
type SyncLog struct {
	Level  string
	Format string `validate:"oneof=json console"`
}

// SyncConfig is the validated configuration of one folder sync run.
type SyncConfig struct {
	Profiles []string `validate:"min=1,dive,required"`
	Adapter  SyncAdapter
	Sync     SyncOptions
	Storage  SyncStorage
	Log      SyncLog
}

// GetSyncConfig loads, merges and validates the configuration. args are the
// command-line arguments without the program name.
//
// The returned error wraps [ErrMissingToken], [ErrMissingProfiles] or
// [ErrInvalidConfig] when validation fails.
func GetSyncConfig(args []string) (*SyncConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	syncCfg := cfg.SyncConfig()
	if err := syncCfg.validate(); err != nil {
		return nil, err
	}
	return syncCfg, nil
}

// SyncConfig projects the merged configuration into the run view.
func (cfg *StructuredConfig) SyncConfig() *SyncConfig {
	return &SyncConfig{
		Profiles: cfg.Profiles,
		Adapter: SyncAdapter{
			APIURL:         cfg.Adapter.APIURL,
			Token:          cfg.Token,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryAttempts:  cfg.Adapter.RetryAttempts,
			RetryDelay:     cfg.Adapter.RetryDelay,
			DuplicateCodes: cfg.Adapter.DuplicateCodes,
		},
		Sync: SyncOptions{
			FolderURLs:      cfg.Sync.FolderURLs,
			BatchSize:       cfg.Sync.BatchSize,
			SettleDelay:     cfg.Sync.SettleDelay,
			ResolveAttempts: cfg.Sync.ResolveAttempts,
			BlockAction:     blockActionOrDefault(cfg.Sync.BlockAction),
		},
		Storage: SyncStorage{
			DSN: cfg.Storage.DB.DSN,
		},
		Log: SyncLog{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
		},
	}
}

func blockActionOrDefault(v *int) int {
	if v == nil {
		return DefaultBlockAction
	}
	return *v
}
