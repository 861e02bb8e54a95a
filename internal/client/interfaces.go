// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-folder-sync/models"
)

// Client defines the lifecycle contract of a runnable sync application.
type Client interface {
	// Run syncs every configured profile once and blocks until done.
	Run(ctx context.Context) models.RunSummary
}

// IDGenerator hands out run identifiers.
type IDGenerator interface {
	Generate() string
}
