// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrFetch marks a definition that could not be fetched or parsed.
	ErrFetch = errors.New("fetch folder definition")

	// ErrNoDefinitions is set on a pass when every definition fetch failed.
	ErrNoDefinitions = errors.New("no folder definitions could be fetched")

	// ErrDirectory marks a failed folder listing.
	ErrDirectory = errors.New("list folders")

	// ErrDelete marks a failed folder deletion.
	ErrDelete = errors.New("delete folder")

	// ErrCreation marks a rejected folder creation.
	ErrCreation = errors.New("create folder")

	// ErrCreationVerification is returned when a created folder cannot be
	// found by listing the profile again.
	ErrCreationVerification = errors.New("created folder not found")

	// ErrBatchPush marks a rule batch that could not be uploaded.
	ErrBatchPush = errors.New("push rule batch")
)
