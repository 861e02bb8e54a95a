// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncResult is the outcome of one profile's sync pass.
type SyncResult struct {
	ProfileID string

	// Total is the number of definitions targeted by the pass.
	Total int

	// Succeeded counts folders that were both created and fully pushed.
	Succeeded int

	StartedAt  time.Time
	FinishedAt time.Time

	// Err is set when the pass failed before processing any folder
	// (for example when no definition could be fetched).
	Err error
}

// Success reports whether every targeted folder was fully processed.
func (r SyncResult) Success() bool {
	return r.Err == nil && r.Total > 0 && r.Succeeded == r.Total
}

// Duration returns how long the pass took.
func (r SyncResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunSummary aggregates the results of every profile processed in one run.
type RunSummary struct {
	RunID   string
	Results []SyncResult
}

// Succeeded returns the number of profiles whose pass succeeded.
func (s RunSummary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Success() {
			n++
		}
	}
	return n
}

// Success reports whether at least one profile ran and all of them succeeded.
func (s RunSummary) Success() bool {
	return len(s.Results) > 0 && s.Succeeded() == len(s.Results)
}

// ExitCode maps the summary to a process exit status.
func (s RunSummary) ExitCode() int {
	if s.Success() {
		return 0
	}
	return 1
}
