// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-folder-sync/internal/utils"
	"github.com/MKhiriev/go-folder-sync/models"
	"github.com/tidwall/gjson"
)

// Paths of the required fields of a definition document.
const (
	definitionNamePath   = "group.group"
	definitionActionPath = "group.action.do"
	definitionStatusPath = "group.action.status"
	definitionRulesPath  = "rules"
)

type httpDefinitionSource struct {
	client *utils.HTTPClient
}

// NewHTTPDefinitionSource returns a [DefinitionSource] that GETs documents
// without authentication. Calls are not retried.
func NewHTTPDefinitionSource(timeout time.Duration) DefinitionSource {
	return &httpDefinitionSource{client: utils.NewHTTPClient(timeout)}
}

// Fetch implements [DefinitionSource].
func (s *httpDefinitionSource) Fetch(ctx context.Context, url string) (models.FolderDefinition, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return models.FolderDefinition{}, fmt.Errorf("fetch definition %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		return models.FolderDefinition{}, fmt.Errorf("fetch definition %s: http %d", url, resp.StatusCode())
	}

	def, err := ParseDefinition(resp.Body())
	if err != nil {
		return models.FolderDefinition{}, fmt.Errorf("parse definition %s: %w", url, err)
	}
	def.SourceURL = url
	return def, nil
}

// ParseDefinition decodes a definition document of the form
//
//	{"group": {"group": <name>, "action": {"do": <int>, "status": <int>}},
//	 "rules": [{"PK": <hostname>}, ...]}
//
// The three group fields are required. Rules without a non-empty PK are
// dropped; the rest keep their order, duplicates included.
func ParseDefinition(body []byte) (models.FolderDefinition, error) {
	if !gjson.ValidBytes(body) {
		return models.FolderDefinition{}, fmt.Errorf("%w: not valid json", ErrInvalidDefinition)
	}

	fields := gjson.GetManyBytes(body, definitionNamePath, definitionActionPath, definitionStatusPath)
	for i, path := range []string{definitionNamePath, definitionActionPath, definitionStatusPath} {
		if !fields[i].Exists() {
			return models.FolderDefinition{}, fmt.Errorf("%w: missing %s", ErrInvalidDefinition, path)
		}
	}

	name := strings.TrimSpace(fields[0].String())
	if name == "" {
		return models.FolderDefinition{}, fmt.Errorf("%w: empty %s", ErrInvalidDefinition, definitionNamePath)
	}

	rules := gjson.GetBytes(body, definitionRulesPath).Array()
	hostnames := make([]string, 0, len(rules))
	for _, r := range rules {
		if pk := r.Get("PK").String(); pk != "" {
			hostnames = append(hostnames, pk)
		}
	}

	return models.FolderDefinition{
		Name:      name,
		Action:    int(fields[1].Int()),
		Status:    int(fields[2].Int()),
		Hostnames: hostnames,
	}, nil
}
