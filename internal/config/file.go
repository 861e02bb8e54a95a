// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML config
// files. Durations accept either a Go duration string or nanoseconds.
type StructuredFileConfig struct {
	Token    string   `json:"token" yaml:"token"`
	Profiles []string `json:"profiles" yaml:"profiles"`

	Adapter struct {
		APIURL         string   `json:"api_url" yaml:"api_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RetryAttempts  int      `json:"retry_attempts" yaml:"retry_attempts"`
		RetryDelay     Duration `json:"retry_delay" yaml:"retry_delay"`
		DuplicateCodes []string `json:"duplicate_codes" yaml:"duplicate_codes"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Sync struct {
		FolderURLs      []string `json:"folder_urls" yaml:"folder_urls"`
		BatchSize       int      `json:"batch_size" yaml:"batch_size"`
		SettleDelay     Duration `json:"settle_delay" yaml:"settle_delay"`
		ResolveAttempts int      `json:"resolve_attempts" yaml:"resolve_attempts"`
		BlockAction     *int     `json:"block_action" yaml:"block_action"`
	} `json:"sync,omitempty" yaml:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Log struct {
		Level  string `json:"level" yaml:"level"`
		Format string `json:"format" yaml:"format"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		Token:    fileCfg.Token,
		Profiles: fileCfg.Profiles,
		Adapter: Adapter{
			APIURL:         fileCfg.Adapter.APIURL,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			RetryAttempts:  fileCfg.Adapter.RetryAttempts,
			RetryDelay:     time.Duration(fileCfg.Adapter.RetryDelay),
			DuplicateCodes: fileCfg.Adapter.DuplicateCodes,
		},
		Sync: Sync{
			FolderURLs:      fileCfg.Sync.FolderURLs,
			BatchSize:       fileCfg.Sync.BatchSize,
			SettleDelay:     time.Duration(fileCfg.Sync.SettleDelay),
			ResolveAttempts: fileCfg.Sync.ResolveAttempts,
			BlockAction:     fileCfg.Sync.BlockAction,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Log: Log{
			Level:  fileCfg.Log.Level,
			Format: fileCfg.Log.Format,
		},
	}, nil
}

// Duration is a time.Duration that decodes from "1m30s" style strings or
// from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d", node.Line)
	}

	var ns int64
	if err := node.Decode(&ns); err == nil {
		*d = Duration(ns)
		return nil
	}
	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
