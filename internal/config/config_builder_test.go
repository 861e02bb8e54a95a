// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempFile(t, "config.json", string(data))
}

// noDotEnv returns an -env-file argument pointing at a file that does not
// exist, so tests never pick up a stray .env from the working directory.
func noDotEnv(t *testing.T) []string {
	t.Helper()
	return []string{"-env-file", filepath.Join(t.TempDir(), "absent.env")}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers())
	assert.Equal(t, defaultDotEnvPath, b.dotEnvPath)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LayerPriority(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.file = &StructuredConfig{Token: "file", Adapter: Adapter{RetryAttempts: 5}, Log: Log{Level: "warn"}}
	b.env = &StructuredConfig{Token: "env", Log: Log{Level: "debug"}}
	b.flags = &StructuredConfig{Token: "flag"}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag", cfg.Token)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Adapter.RetryAttempts)
	assert.Equal(t, DefaultRetryDelay, cfg.Adapter.RetryDelay)
	assert.Equal(t, DefaultFolderURLs, cfg.Sync.FolderURLs)
}

func TestBuild_BlockActionLastSetLayerWins(t *testing.T) {
	tests := []struct {
		name  string
		file  *int
		env   *int
		flags *int
		want  int
	}{
		{name: "default", want: DefaultBlockAction},
		{name: "env zero overrides default", env: new(0), want: 0},
		{name: "file zero overrides default", file: new(0), want: 0},
		{name: "flag zero overrides env", env: new(2), flags: new(0), want: 0},
		{name: "env overrides file", file: new(0), env: new(3), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder().withDefaults()
			b.file = &StructuredConfig{Sync: Sync{BlockAction: tt.file}}
			b.env = &StructuredConfig{Sync: Sync{BlockAction: tt.env}}
			b.flags = &StructuredConfig{Sync: Sync{BlockAction: tt.flags}}

			cfg, err := b.build()
			require.NoError(t, err)
			require.NotNil(t, cfg.Sync.BlockAction)
			assert.Equal(t, tt.want, *cfg.Sync.BlockAction)
			assert.Equal(t, DefaultBlockAction, *b.defaults.Sync.BlockAction)
		})
	}
}

func TestBuild_SlicesReplaceLowerLayers(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.env = &StructuredConfig{Sync: Sync{FolderURLs: []string{"https://example.com/a.json"}}}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/a.json"}, cfg.Sync.FolderURLs)
}

func TestBuild_NormalizesLists(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{Profiles: []string{" p1 ", "", "p2", "  "}}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, cfg.Profiles)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{}

	b.withFile()
	assert.NoError(t, b.err)
	assert.Nil(t, b.file)
}

func TestWithFile_FlagPathWinsOverEnv(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"token": "from-env-file"})
	flagPath := writeTempJSONConfig(t, map[string]any{"token": "from-flag-file"})

	b := newConfigBuilder()
	b.env = &StructuredConfig{FilePath: envPath}
	b.flags = &StructuredConfig{FilePath: flagPath}

	b.withFile()
	require.NoError(t, b.err)
	require.NotNil(t, b.file)
	assert.Equal(t, "from-flag-file", b.file.Token)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "missing.json")}

	b.withFile()
	require.Error(t, b.err)
	assert.Nil(t, b.file)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_AllSources(t *testing.T) {
	file := writeTempFile(t, "config.yaml", `
token: file-token
profiles: [file-profile]
adapter:
  retry_attempts: 4
sync:
  batch_size: 100
  settle_delay: 2s
log:
  level: warn
`)
	dotEnv := writeTempFile(t, "sync.env", "PROFILE=dotenv-a,dotenv-b\nLOG_FORMAT=console\n")

	t.Setenv("CONFIG", file)
	t.Setenv("SYNC_BATCH_SIZE", "200")

	cfg, err := GetStructuredConfig([]string{"-env-file", dotEnv, "-token", "flag-token"})
	require.NoError(t, err)

	assert.Equal(t, "flag-token", cfg.Token)
	assert.Equal(t, []string{"dotenv-a", "dotenv-b"}, cfg.Profiles)
	assert.Equal(t, 4, cfg.Adapter.RetryAttempts)
	assert.Equal(t, 200, cfg.Sync.BatchSize)
	assert.Equal(t, 2*time.Second, cfg.Sync.SettleDelay)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, DefaultAPIURL, cfg.Adapter.APIURL)
}

func TestGetStructuredConfig_InvalidFlag(t *testing.T) {
	_, err := GetStructuredConfig([]string{"-batch-size", "many"})
	require.Error(t, err)
}
