// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func (cfg *SyncConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.Token) == "" {
		return ErrMissingToken
	}
	if len(cfg.Profiles) == 0 {
		return ErrMissingProfiles
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// normalizeList trims every item and drops the empty ones.
func normalizeList(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
