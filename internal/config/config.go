// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, an optional
// config file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Token is the bearer token of the filtering service API.
	Token string `env:"TOKEN"`

	// Profiles lists the profile ids to synchronise, in order.
	Profiles []string `env:"PROFILE" envSeparator:","`

	// Adapter holds the filtering service connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the folder sync tuning knobs.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the sync journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the logger settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Adapter configures the filtering service REST client.
type Adapter struct {
	APIURL         string        `env:"API_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	RetryAttempts  int           `env:"RETRY_ATTEMPTS"`
	RetryDelay     time.Duration `env:"RETRY_DELAY"`

	// DuplicateCodes are service error codes that mean "rule already exists".
	DuplicateCodes []string `env:"DUPLICATE_CODES" envSeparator:","`
}

// Sync configures the reconciliation of folders.
type Sync struct {
	FolderURLs      []string      `env:"FOLDER_URLS" envSeparator:","`
	BatchSize       int           `env:"BATCH_SIZE"`
	SettleDelay     time.Duration `env:"SETTLE_DELAY"`
	ResolveAttempts int           `env:"RESOLVE_ATTEMPTS"`

	// BlockAction is nil when the layer does not set it, so an explicit 0
	// still overrides the default.
	BlockAction *int `env:"BLOCK_ACTION"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the journal database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the journal database DSN. An empty DSN disables the journal.
type DB struct {
	DSN string `env:"DSN"`
}

// Log selects the log level and output format.
type Log struct {
	Level  string `env:"LEVEL"`
	Format string `env:"FORMAT"`
}

// Built-in defaults.
const (
	DefaultAPIURL          = "https://api.controld.com"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultRetryAttempts   = 3
	DefaultRetryDelay      = time.Second
	DefaultBatchSize       = 500
	DefaultSettleDelay     = time.Second
	DefaultResolveAttempts = 1
	DefaultBlockAction     = 1
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
)

// DefaultFolderURLs are the definition documents synchronised when no list is
// configured.
var DefaultFolderURLs = []string{
	"https://raw.githubusercontent.com/hagezi/dns-blocklists/main/controld/badware-hoster-folder.json",
	"https://raw.githubusercontent.com/hagezi/dns-blocklists/main/controld/native-tracker-amazon-folder.json",
	"https://raw.githubusercontent.com/hagezi/dns-blocklists/main/controld/native-tracker-microsoft-folder.json",
	"https://raw.githubusercontent.com/hagezi/dns-blocklists/main/controld/native-tracker-tiktok-aggressive-folder.json",
	"https://raw.githubusercontent.com/hagezi/dns-blocklists/main/controld/referral-allow-folder.json",
	"https://raw.githubusercontent.com/hagezi/dns-blocklists/main/controld/spam-idns-folder.json",
	"https://raw.githubusercontent.com/hagezi/dns-blocklists/main/controld/spam-tlds-allow-folder.json",
	"https://raw.githubusercontent.com/hagezi/dns-blocklists/main/controld/spam-tlds-folder.json",
	"https://raw.githubusercontent.com/hagezi/dns-blocklists/main/controld/ultimate-known_issues-allow-folder.json",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			APIURL:         DefaultAPIURL,
			RequestTimeout: DefaultRequestTimeout,
			RetryAttempts:  DefaultRetryAttempts,
			RetryDelay:     DefaultRetryDelay,
		},
		Sync: Sync{
			FolderURLs:      append([]string(nil), DefaultFolderURLs...),
			BatchSize:       DefaultBatchSize,
			SettleDelay:     DefaultSettleDelay,
			ResolveAttempts: DefaultResolveAttempts,
			BlockAction:     new(DefaultBlockAction),
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// GetStructuredConfig loads and merges every configuration source. args are
// the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withFlags(args).
		withEnv().
		withFile().
		build()
}
