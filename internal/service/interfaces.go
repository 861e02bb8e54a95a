// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-folder-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DefinitionService fetches folder definitions and caches them for the
// lifetime of the service, which is one run.
type DefinitionService interface {
	// Fetch returns the definition published at url. Successful fetches are
	// cached per URL; failures are not. The error wraps [ErrFetch].
	Fetch(ctx context.Context, url string) (models.FolderDefinition, error)

	// FetchAll fetches every url in order. Failed URLs are logged and
	// skipped. A definition whose name equals an earlier one (trimmed,
	// case-insensitive) is dropped with a warning.
	FetchAll(ctx context.Context, urls []string) []models.FolderDefinition
}

// DirectoryService reads the folders of a profile.
type DirectoryService interface {
	// List returns the current folders. A listing failure is logged and
	// yields an empty directory.
	List(ctx context.Context, profileID string) models.FolderDirectory
}

// FolderService deletes and creates folders.
type FolderService interface {
	// Delete removes one folder. Failures are logged and returned wrapped in
	// [ErrDelete]; callers treat them as non-fatal.
	Delete(ctx context.Context, profileID, name, folderID string) error

	// Create creates the folder of def and resolves its id by listing the
	// profile again. known is the directory read before any deletion; ids
	// present there are only used when no new folder matches.
	Create(ctx context.Context, profileID string, def models.FolderDefinition, known models.FolderDirectory) (string, error)
}

// RuleService uploads the hostnames of a definition into a folder.
type RuleService interface {
	// Push uploads def.Hostnames in order, in batches. It stops at the first
	// batch that fails; earlier batches stay in place.
	Push(ctx context.Context, profileID, folderID string, def models.FolderDefinition) error
}

// SyncService reconciles profiles with the configured definitions.
type SyncService interface {
	// SyncProfile runs one pass over a single profile.
	SyncProfile(ctx context.Context, profileID string) models.SyncResult

	// SyncAll runs SyncProfile for every profile in order and records each
	// result in the journal under runID.
	SyncAll(ctx context.Context, runID string, profileIDs []string) models.RunSummary
}
