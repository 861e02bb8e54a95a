// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer of the folder sync: the
// filtering-service REST client and the definition document source.
//
// [FilteringAdapter] hides the REST API of the DNS-filtering service. Every
// call it makes goes through a [Retrier]. Non-2xx responses are mapped to the
// sentinel errors in errors.go so callers can use [errors.Is]; rejected rule
// uploads that a [DuplicateClassifier] recognises come back as
// [*DuplicateRuleError] and are never retried.
//
// [DefinitionSource] fetches externally hosted folder definitions. Those
// fetches are not retried.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-folder-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FilteringAdapter defines the calls made against the DNS-filtering service
// for a single profile.
type FilteringAdapter interface {
	// ListFolders returns every folder of the profile.
	ListFolders(ctx context.Context, profileID string) ([]models.ExistingFolder, error)

	// CreateFolder creates a folder. The service does not reliably return
	// the new folder's id; callers resolve it by listing again.
	CreateFolder(ctx context.Context, profileID string, req models.FolderRequest) error

	// DeleteFolder deletes a folder and the rules it holds.
	DeleteFolder(ctx context.Context, profileID, folderID string) error

	// CreateRules adds one batch of hostname rules to a folder. A rejection
	// caused by an already existing hostname is returned as
	// [*DuplicateRuleError].
	CreateRules(ctx context.Context, profileID string, batch models.RuleBatch) error

	// DeleteRule removes the rule for hostname from the profile.
	DeleteRule(ctx context.Context, profileID, hostname string) error
}

// DefinitionSource fetches and parses a remote folder definition document.
type DefinitionSource interface {
	Fetch(ctx context.Context, url string) (models.FolderDefinition, error)
}
