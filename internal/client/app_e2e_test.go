// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-folder-sync/internal/adapter"
	"github.com/MKhiriev/go-folder-sync/internal/config"
	"github.com/MKhiriev/go-folder-sync/internal/controldtest"
	"github.com/MKhiriev/go-folder-sync/internal/logger"
	"github.com/MKhiriev/go-folder-sync/internal/service"
	"github.com/MKhiriev/go-folder-sync/internal/store"
	"github.com/MKhiriev/go-folder-sync/internal/utils"
	"github.com/MKhiriev/go-folder-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "e2e-token"

type fixture struct {
	api  *controldtest.Server
	defs *controldtest.DefinitionServer
	dsn  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		api:  controldtest.NewServer(testToken),
		defs: controldtest.NewDefinitionServer(),
	}
	t.Cleanup(f.api.Close)
	t.Cleanup(f.defs.Close)
	return f
}

func (f *fixture) config(urls []string, profiles ...string) *config.SyncConfig {
	return &config.SyncConfig{
		Profiles: profiles,
		Adapter: config.SyncAdapter{
			APIURL:         f.api.URL,
			Token:          testToken,
			RequestTimeout: 5 * time.Second,
			RetryAttempts:  3,
			RetryDelay:     time.Millisecond,
		},
		Sync: config.SyncOptions{
			FolderURLs:      urls,
			BatchSize:       models.MaxBatchSize,
			ResolveAttempts: 1,
			BlockAction:     config.DefaultBlockAction,
		},
		Storage: config.SyncStorage{DSN: f.dsn},
	}
}

// run wires the production stack against the fakes and performs one run.
func (f *fixture) run(t *testing.T, cfg *config.SyncConfig) models.RunSummary {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	filtering, err := adapter.NewHTTPFilteringAdapter(cfg.Adapter, log)
	require.NoError(t, err)
	source := adapter.NewHTTPDefinitionSource(cfg.Adapter.RequestTimeout)

	journal, err := store.NewSyncJournal(ctx, cfg.Storage, log)
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED") {
		t.Skip("sqlite driver built without cgo")
	}
	require.NoError(t, err)

	services := service.NewSyncServices(filtering, source, journal, cfg.Sync, log)
	app, err := NewApp(cfg, services, journal, utils.NewUUIDGenerator(), log)
	require.NoError(t, err)

	return app.Run(ctx)
}

// ── scenarios ────────────────────────────────────────────────────────────────

func TestE2E_CreatesFolderAndPushesRules(t *testing.T) {
	f := newFixture(t)
	url := f.defs.Add("spam-tlds.json", controldtest.Definition{
		Name: "spam-tlds", Action: 1, Status: 1, Hostnames: []string{"a.com", "b.com"},
	})

	summary := f.run(t, f.config([]string{url}, "p1"))

	assert.Equal(t, 0, summary.ExitCode())
	require.Len(t, summary.Results, 1)
	assert.Equal(t, 1, summary.Results[0].Succeeded)

	assert.Equal(t, 2, f.api.CountCalls(http.MethodGet, "/groups"))
	assert.Equal(t, 1, f.api.CountCalls(http.MethodPost, "/groups"))
	assert.Equal(t, 0, f.api.CountCalls(http.MethodDelete, ""))
	require.Equal(t, 1, f.api.CountCalls(http.MethodPost, "/rules"))

	folders := f.api.FoldersNamed("p1", "spam-tlds")
	require.Len(t, folders, 1)
	assert.Equal(t, 1, folders[0].Action)
	assert.Equal(t, 1, folders[0].Status)
	assert.Equal(t, []string{"a.com", "b.com"}, f.api.RulesIn("p1", folders[0].ID))

	for _, c := range f.api.Calls() {
		if c.Method == http.MethodPost && strings.HasSuffix(c.Path, "/rules") {
			assert.Equal(t, []string{"a.com", "b.com"}, c.Form["hostnames[]"])
			assert.Equal(t, folders[0].ID, c.Form.Get("group"))
			assert.Equal(t, "1", c.Form.Get("do"))
			assert.Equal(t, "1", c.Form.Get("status"))
		}
	}
}

func TestE2E_SecondRunReplacesFolder(t *testing.T) {
	f := newFixture(t)
	url := f.defs.Add("ads.json", controldtest.Definition{
		Name: "Ads", Action: 0, Status: 1, Hostnames: []string{"ads.example.com"},
	})
	cfg := f.config([]string{url}, "p1")

	require.Equal(t, 0, f.run(t, cfg).ExitCode())
	first := f.api.FoldersNamed("p1", "Ads")
	require.Len(t, first, 1)

	require.Equal(t, 0, f.run(t, cfg).ExitCode())
	second := f.api.FoldersNamed("p1", "Ads")
	require.Len(t, second, 1)

	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.Equal(t, 1, f.api.CountCalls(http.MethodDelete, "/groups/"+first[0].ID))
	assert.Equal(t, []string{"ads.example.com"}, f.api.RulesIn("p1", second[0].ID))
	assert.Len(t, f.api.Rules("p1"), 1)
}

func TestE2E_LeavesUnrelatedFoldersAlone(t *testing.T) {
	f := newFixture(t)
	keep := f.api.AddFolder("p1", "Personal", 1, 1)
	f.api.AddRule("p1", "mine.example.com", keep, 1, 1)
	url := f.defs.Add("ads.json", controldtest.Definition{Name: "Ads", Status: 1, Hostnames: []string{"x.com"}})

	require.Equal(t, 0, f.run(t, f.config([]string{url}, "p1")).ExitCode())

	assert.Len(t, f.api.FoldersNamed("p1", "Personal"), 1)
	assert.Equal(t, []string{"mine.example.com"}, f.api.RulesIn("p1", keep))
}

func TestE2E_DeletesEveryFolderWithTargetName(t *testing.T) {
	f := newFixture(t)
	f.api.AddFolder("p1", "Ads", 0, 1)
	f.api.AddFolder("p1", " ads", 0, 1)
	url := f.defs.Add("ads.json", controldtest.Definition{Name: "Ads", Status: 1, Hostnames: []string{"x.com"}})

	require.Equal(t, 0, f.run(t, f.config([]string{url}, "p1")).ExitCode())

	assert.Equal(t, 2, f.api.CountCalls(http.MethodDelete, ""))
	assert.Len(t, f.api.Folders("p1"), 1)
}

func TestE2E_BlockFolderReclaimsDuplicateRule(t *testing.T) {
	f := newFixture(t)
	other := f.api.AddFolder("p1", "Other", 0, 1)
	f.api.AddRule("p1", "b.com", other, 0, 1)
	url := f.defs.Add("spam-tlds.json", controldtest.Definition{
		Name: "spam-tlds", Action: 1, Status: 1, Hostnames: []string{"a.com", "b.com"},
	})

	summary := f.run(t, f.config([]string{url}, "p1"))
	assert.Equal(t, 0, summary.ExitCode())

	folders := f.api.FoldersNamed("p1", "spam-tlds")
	require.Len(t, folders, 1)
	assert.Equal(t, []string{"a.com", "b.com"}, f.api.RulesIn("p1", folders[0].ID))
	assert.Empty(t, f.api.RulesIn("p1", other))
	assert.Equal(t, 1, f.api.CountCalls(http.MethodDelete, "/rules/b.com"))
	// the duplicate rejection is not retried by the backoff wrapper
	assert.Equal(t, 2, f.api.CountCalls(http.MethodPost, "/rules"))
}

func TestE2E_AllowFolderSkipsDuplicateBatch(t *testing.T) {
	f := newFixture(t)
	other := f.api.AddFolder("p1", "Other", 1, 1)
	f.api.AddRule("p1", "b.com", other, 1, 1)
	url := f.defs.Add("allow.json", controldtest.Definition{
		Name: "Allow", Action: 0, Status: 1, Hostnames: []string{"a.com", "b.com"},
	})

	summary := f.run(t, f.config([]string{url}, "p1"))
	assert.Equal(t, 0, summary.ExitCode())

	assert.Equal(t, 1, f.api.CountCalls(http.MethodPost, "/rules"))
	assert.Equal(t, 0, f.api.CountCalls(http.MethodDelete, "/rules/b.com"))
	assert.Equal(t, []string{"b.com"}, f.api.RulesIn("p1", other))
}

func TestE2E_RetriesTransientFailures(t *testing.T) {
	f := newFixture(t)
	url := f.defs.Add("ads.json", controldtest.Definition{Name: "Ads", Status: 1, Hostnames: []string{"x.com"}})
	f.api.FailNext(http.MethodPost, "/rules", http.StatusServiceUnavailable, 2)
	f.api.FailNext(http.MethodGet, "/groups", http.StatusBadGateway, 1)

	summary := f.run(t, f.config([]string{url}, "p1"))

	assert.Equal(t, 0, summary.ExitCode())
	assert.Equal(t, 3, f.api.CountCalls(http.MethodPost, "/rules"))
	assert.Equal(t, 3, f.api.CountCalls(http.MethodGet, "/groups"))
}

func TestE2E_BatchFailureFailsProfile(t *testing.T) {
	f := newFixture(t)
	url := f.defs.Add("ads.json", controldtest.Definition{Name: "Ads", Status: 1, Hostnames: []string{"x.com"}})
	f.api.FailNext(http.MethodPost, "/rules", http.StatusInternalServerError, 3)

	summary := f.run(t, f.config([]string{url}, "p1"))

	assert.Equal(t, 1, summary.ExitCode())
	require.Len(t, summary.Results, 1)
	assert.Equal(t, 0, summary.Results[0].Succeeded)
	assert.Equal(t, 1, summary.Results[0].Total)
	// the folder stays, without rules
	assert.Len(t, f.api.FoldersNamed("p1", "Ads"), 1)
	assert.Empty(t, f.api.Rules("p1"))
}

func TestE2E_UnverifiedCreationSkipsRules(t *testing.T) {
	f := newFixture(t)
	f.api.HideCreatedFolders(true)
	url := f.defs.Add("ads.json", controldtest.Definition{Name: "Ads", Status: 1, Hostnames: []string{"x.com"}})

	summary := f.run(t, f.config([]string{url}, "p1"))

	assert.Equal(t, 1, summary.ExitCode())
	assert.Equal(t, 0, f.api.CountCalls(http.MethodPost, "/rules"))
}

func TestE2E_NoDefinitionsMakesNoServiceCalls(t *testing.T) {
	f := newFixture(t)
	f.defs.Fail("ads.json", http.StatusBadGateway)
	url := f.defs.URL + "/ads.json"

	summary := f.run(t, f.config([]string{url, f.defs.URL + "/missing.json"}, "p1"))

	assert.Equal(t, 1, summary.ExitCode())
	assert.Empty(t, f.api.Calls())
	// definition fetches are not retried
	assert.Equal(t, 1, f.defs.Hits("ads.json"))
}

func TestE2E_PartialDefinitionsStillSync(t *testing.T) {
	f := newFixture(t)
	good := f.defs.Add("ads.json", controldtest.Definition{Name: "Ads", Status: 1, Hostnames: []string{"x.com"}})
	bad := f.defs.AddRaw("broken.json", []byte(`{"group":{"group":"Broken"}}`))

	summary := f.run(t, f.config([]string{bad, good}, "p1"))

	assert.Equal(t, 0, summary.ExitCode())
	assert.Equal(t, 1, summary.Results[0].Total)
	assert.Empty(t, f.api.FoldersNamed("p1", "Broken"))
}

func TestE2E_ProfilesShareFetchedDefinitions(t *testing.T) {
	f := newFixture(t)
	url := f.defs.Add("ads.json", controldtest.Definition{Name: "Ads", Status: 1, Hostnames: []string{"x.com"}})

	summary := f.run(t, f.config([]string{url}, "p1", "p2"))

	assert.Equal(t, 0, summary.ExitCode())
	assert.Equal(t, 2, summary.Succeeded())
	assert.Equal(t, 1, f.defs.Hits("ads.json"))
	assert.Len(t, f.api.FoldersNamed("p1", "Ads"), 1)
	assert.Len(t, f.api.FoldersNamed("p2", "Ads"), 1)
}

func TestE2E_WrongTokenFailsEveryFolder(t *testing.T) {
	f := newFixture(t)
	url := f.defs.Add("ads.json", controldtest.Definition{Name: "Ads", Status: 1, Hostnames: []string{"x.com"}})
	cfg := f.config([]string{url}, "p1")
	cfg.Adapter.Token = "wrong"

	summary := f.run(t, cfg)

	assert.Equal(t, 1, summary.ExitCode())
	assert.Empty(t, f.api.Folders("p1"))
}

func TestE2E_JournalRecordsRuns(t *testing.T) {
	f := newFixture(t)
	f.dsn = filepath.Join(t.TempDir(), "journal.db")
	url := f.defs.Add("ads.json", controldtest.Definition{Name: "Ads", Status: 1, Hostnames: []string{"x.com"}})
	cfg := f.config([]string{url}, "p1")

	first := f.run(t, cfg)
	second := f.run(t, cfg)
	require.NotEqual(t, first.RunID, second.RunID)

	journal, err := store.NewSyncJournal(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	defer journal.Close()

	runs, err := journal.LastRuns(context.Background(), "p1", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.RunID, runs[0].RunID)
	assert.Equal(t, first.RunID, runs[1].RunID)
	assert.True(t, runs[0].Success)
	assert.Equal(t, 1, runs[0].Total)
}
