// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// defaultDotEnvPath is the .env file read when -env-file is not given.
const defaultDotEnvPath = ".env"

// configBuilder collects configuration layers. The with* methods may be
// called in any order; build always merges defaults, file, env and flags in
// that order so later layers override earlier non-zero fields. Sync.BlockAction
// is resolved outside the merge: the last layer that sets it wins, zero
// included.
type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig

	dotEnvPath string
	err        error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{dotEnvPath: defaultDotEnvPath}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	var blockAction *int
	for _, cfg := range b.layers() {
		layer := *cfg
		if layer.Sync.BlockAction != nil {
			blockAction = new(*layer.Sync.BlockAction)
			layer.Sync.BlockAction = nil
		}
		if err := mergo.Merge(config, &layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.Sync.BlockAction = blockAction
	config.Profiles = normalizeList(config.Profiles)
	config.Sync.FolderURLs = normalizeList(config.Sync.FolderURLs)
	config.Adapter.DuplicateCodes = normalizeList(config.Adapter.DuplicateCodes)

	return config, nil
}

func (b *configBuilder) layers() []*StructuredConfig {
	layers := make([]*StructuredConfig, 0, 4)
	for _, cfg := range []*StructuredConfig{b.defaults, b.file, b.env, b.flags} {
		if cfg != nil {
			layers = append(layers, cfg)
		}
	}
	return layers
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}

// withFlags parses args. A -env-file flag changes the .env file read by
// withEnv, so call withFlags first when both are used.
func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, dotEnvPath, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if dotEnvPath != "" {
		b.dotEnvPath = dotEnvPath
	}
	b.flags = flags
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.dotEnvPath); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

// withFile reads the config file named by the flags, or else by the
// environment. It is a no-op when neither names one.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.file = fileCfg
	return b
}
