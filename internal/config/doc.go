// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the folder sync.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file (path from CONFIG, -c or -config)
//  3. Environment variables, optionally seeded from a .env file
//  4. Command-line flags
//
// The main entry point is [GetSyncConfig], which returns the validated view
// consumed by the rest of the program.
package config
