// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// ListValue is a flag.Value holding a comma-separated list. Repeating the
// flag appends to the list.
type ListValue []string

func (l *ListValue) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *ListValue) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

// parseFlags parses args (without the program name) and returns the flag
// layer together with the -env-file path.
func parseFlags(args []string) (*StructuredConfig, string, error) {
	fs := flag.NewFlagSet("folder-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		token, apiURL, dbDSN, logLevel, logFormat string
		filePath, dotEnvPath                      string
		profiles, folderURLs, duplicateCodes      ListValue
		requestTimeout, retryDelay, settleDelay   time.Duration
		retryAttempts, batchSize, resolveAttempts int
		blockAction                               int
	)

	fs.StringVar(&token, "token", "", "Filtering service API token")
	fs.Var(&profiles, "profile", "Profile id; comma-separated or repeated")
	fs.StringVar(&apiURL, "api-url", "", "Filtering service base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Per-call timeout (e.g., 30s)")
	fs.IntVar(&retryAttempts, "retry-attempts", 0, "Attempts per service call")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Base retry delay (e.g., 1s)")
	fs.Var(&duplicateCodes, "duplicate-codes", "Service error codes meaning a rule already exists")
	fs.Var(&folderURLs, "folder-url", "Folder definition URL; comma-separated or repeated")
	fs.IntVar(&batchSize, "batch-size", 0, "Hostnames per rule batch (max 500)")
	fs.DurationVar(&settleDelay, "settle-delay", 0, "Wait after creating a folder (e.g., 1s)")
	fs.IntVar(&resolveAttempts, "resolve-attempts", 0, "Listings used to find a created folder")
	fs.IntVar(&blockAction, "block-action", 0, "Action code of block folders")
	fs.StringVar(&dbDSN, "d", "", "Journal database DSN")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFormat, "log-format", "", "Log format: json or console")
	fs.StringVar(&filePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&filePath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", "Path of the .env file")

	if err := fs.Parse(args); err != nil {
		return nil, "", fmt.Errorf("error parsing flags: %w", err)
	}

	var blockActionSet *int
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "block-action" {
			blockActionSet = &blockAction
		}
	})

	return &StructuredConfig{
		Token:    token,
		Profiles: profiles,
		Adapter: Adapter{
			APIURL:         apiURL,
			RequestTimeout: requestTimeout,
			RetryAttempts:  retryAttempts,
			RetryDelay:     retryDelay,
			DuplicateCodes: duplicateCodes,
		},
		Sync: Sync{
			FolderURLs:      folderURLs,
			BatchSize:       batchSize,
			SettleDelay:     settleDelay,
			ResolveAttempts: resolveAttempts,
			BlockAction:     blockActionSet,
		},
		Storage: Storage{
			DB: DB{DSN: dbDSN},
		},
		Log: Log{
			Level:  logLevel,
			Format: logFormat,
		},
		FilePath: filePath,
	}, dotEnvPath, nil
}
