// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrMissingToken is returned when no API token is configured.
	ErrMissingToken = errors.New("missing API token (TOKEN)")

	// ErrMissingProfiles is returned when no profile id is configured.
	ErrMissingProfiles = errors.New("missing profile ids (PROFILE)")

	// ErrInvalidConfig wraps every other validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)
