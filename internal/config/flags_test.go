// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListValue_Set(t *testing.T) {
	var l ListValue
	require.NoError(t, l.Set("a, b,,c"))
	require.NoError(t, l.Set("d"))

	assert.Equal(t, ListValue{"a", "b", "c", "d"}, l)
	assert.Equal(t, "a,b,c,d", l.String())
}

func TestListValue_StringNil(t *testing.T) {
	var l *ListValue
	assert.Equal(t, "", l.String())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		want        *StructuredConfig
		wantDotEnv  string
		expectError bool
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-token", "tok",
				"-profile", "p1,p2",
				"-profile", "p3",
				"-api-url", "http://localhost:9000",
				"-request-timeout", "5s",
				"-retry-attempts", "4",
				"-retry-delay", "10ms",
				"-duplicate-codes", "40003",
				"-folder-url", "https://example.com/a.json",
				"-batch-size", "250",
				"-settle-delay", "0s",
				"-resolve-attempts", "2",
				"-block-action", "1",
				"-d", "journal.db",
				"-log-level", "debug",
				"-log-format", "console",
				"-config", "cfg.yaml",
				"-env-file", "prod.env",
			},
			want: &StructuredConfig{
				Token:    "tok",
				Profiles: []string{"p1", "p2", "p3"},
				Adapter: Adapter{
					APIURL:         "http://localhost:9000",
					RequestTimeout: 5 * time.Second,
					RetryAttempts:  4,
					RetryDelay:     10 * time.Millisecond,
					DuplicateCodes: []string{"40003"},
				},
				Sync: Sync{
					FolderURLs:      []string{"https://example.com/a.json"},
					BatchSize:       250,
					ResolveAttempts: 2,
					BlockAction:     new(1),
				},
				Storage:  Storage{DB: DB{DSN: "journal.db"}},
				Log:      Log{Level: "debug", Format: "console"},
				FilePath: "cfg.yaml",
			},
			wantDotEnv: "prod.env",
		},
		{
			name: "short config alias",
			args: []string{"-c", "cfg.json"},
			want: &StructuredConfig{FilePath: "cfg.json"},
		},
		{name: "unknown flag", args: []string{"-nope"}, expectError: true},
		{name: "invalid duration", args: []string{"-retry-delay", "soon"}, expectError: true},
		{name: "invalid int", args: []string{"-batch-size", "x"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dotEnv, err := parseFlags(tt.args)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDotEnv, dotEnv)
			assert.Equal(t, tt.want.Token, got.Token)
			assert.Equal(t, tt.want.Adapter, normalizeAdapter(got.Adapter))
			assert.Equal(t, tt.want.Sync, normalizeSync(got.Sync))
			assert.Equal(t, tt.want.Storage, got.Storage)
			assert.Equal(t, tt.want.Log, got.Log)
			assert.Equal(t, tt.want.FilePath, got.FilePath)
			assert.Equal(t, normalizeList(tt.want.Profiles), normalizeList(got.Profiles))
		})
	}
}

// normalizeAdapter and normalizeSync turn empty ListValue slices into nil so
// they compare equal to zero-value expectations.
func normalizeAdapter(a Adapter) Adapter {
	a.DuplicateCodes = normalizeList(a.DuplicateCodes)
	return a
}

func normalizeSync(s Sync) Sync {
	s.FolderURLs = normalizeList(s.FolderURLs)
	return s
}
