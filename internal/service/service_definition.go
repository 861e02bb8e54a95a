// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-folder-sync/internal/adapter"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/models"
)

// definitionService is not safe for concurrent use; a run is sequential.
type definitionService struct {
	source adapter.DefinitionSource
	cache  map[string]models.FolderDefinition

	logger *logger.Logger
}

func NewDefinitionService(source adapter.DefinitionSource, logger *logger.Logger) DefinitionService {
	return &definitionService{
		source: source,
		cache:  make(map[string]models.FolderDefinition),
		logger: logger,
	}
}

func (s *definitionService) Fetch(ctx context.Context, url string) (models.FolderDefinition, error) {
	if def, ok := s.cache[url]; ok {
		return def, nil
	}

	def, err := s.source.Fetch(ctx, url)
	if err != nil {
		return models.FolderDefinition{}, fmt.Errorf("%w %s: %w", ErrFetch, url, err)
	}

	s.cache[url] = def
	logger.FromContext(ctx, s.logger).Debug().
		Str("url", url).
		Str("folder", def.Name).
		Int("hostnames", len(def.Hostnames)).
		Msg("fetched folder definition")
	return def, nil
}

func (s *definitionService) FetchAll(ctx context.Context, urls []string) []models.FolderDefinition {
	log := logger.FromContext(ctx, s.logger)
	defs := make([]models.FolderDefinition, 0, len(urls))

	for _, url := range urls {
		def, err := s.Fetch(ctx, url)
		if err != nil {
			log.Err(err).Str("url", url).Msg("failed to fetch folder definition, skipping")
			continue
		}

		if dup := findByName(defs, def.Name); dup != nil {
			log.Warn().
				Str("url", url).
				Str("folder", def.Name).
				Str("first_url", dup.SourceURL).
				Msg("duplicate folder name, keeping the first definition")
			continue
		}
		defs = append(defs, def)
	}

	return defs
}

func findByName(defs []models.FolderDefinition, name string) *models.FolderDefinition {
	for i := range defs {
		if models.SameFolderName(defs[i].Name, name) {
			return &defs[i]
		}
	}
	return nil
}
