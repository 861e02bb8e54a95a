// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// BuildInfoUnknown stands in for build metadata the linker did not set.
const BuildInfoUnknown = "N/A"

// BuildInfo is the version metadata injected with -ldflags -X.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo trims each value and replaces empty ones with
// [BuildInfoUnknown].
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// String renders the startup banner, one field per line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
}

func orUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return BuildInfoUnknown
	}
	return v
}
