// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"token":    "tok",
		"profiles": []string{"p1", "p2"},
		"adapter": map[string]any{
			"api_url":         "http://localhost:8080",
			"request_timeout": "10s",
			"retry_attempts":  5,
			"retry_delay":     int64(250 * time.Millisecond),
			"duplicate_codes": []string{"40003"},
		},
		"sync": map[string]any{
			"folder_urls":      []string{"https://example.com/a.json"},
			"batch_size":       100,
			"settle_delay":     "500ms",
			"resolve_attempts": 3,
			"block_action":     2,
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "file:journal.db"}},
		"log":     map[string]any{"level": "debug", "format": "console"},
	})

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		Token:    "tok",
		Profiles: []string{"p1", "p2"},
		Adapter: Adapter{
			APIURL:         "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
			RetryAttempts:  5,
			RetryDelay:     250 * time.Millisecond,
			DuplicateCodes: []string{"40003"},
		},
		Sync: Sync{
			FolderURLs:      []string{"https://example.com/a.json"},
			BatchSize:       100,
			SettleDelay:     500 * time.Millisecond,
			ResolveAttempts: 3,
			BlockAction:     new(2),
		},
		Storage: Storage{DB: DB{DSN: "file:journal.db"}},
		Log:     Log{Level: "debug", Format: "console"},
	}, cfg)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "config.yml", `
token: tok
profiles:
  - p1
adapter:
  request_timeout: 1m
  retry_delay: 1000000
storage:
  db:
    dsn: journal.db
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, []string{"p1"}, cfg.Profiles)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Millisecond, cfg.Adapter.RetryDelay)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "file not found",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "invalid json",
			path: func(t *testing.T) string { return writeTempFile(t, "config.json", "{not json") },
		},
		{
			name: "invalid json duration",
			path: func(t *testing.T) string {
				return writeTempFile(t, "config.json", `{"adapter":{"retry_delay":"soon"}}`)
			},
		},
		{
			name: "json duration of wrong type",
			path: func(t *testing.T) string {
				return writeTempFile(t, "config.json", `{"adapter":{"retry_delay":true}}`)
			},
		},
		{
			name: "invalid yaml duration",
			path: func(t *testing.T) string {
				return writeTempFile(t, "config.yaml", "sync:\n  settle_delay: [1, 2]\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
