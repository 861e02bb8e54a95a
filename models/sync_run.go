// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncRun is a journal row describing one profile pass.
type SyncRun struct {
	RunID      string    `db:"run_id"`
	ProfileID  string    `db:"profile_id"`
	Total      int       `db:"folders_total"`
	Succeeded  int       `db:"folders_succeeded"`
	Success    bool      `db:"success"`
	Error      string    `db:"error"`
	StartedAt  time.Time `db:"started_at"`
	FinishedAt time.Time `db:"finished_at"`
}

// NewSyncRun converts a pass result into a journal row.
func NewSyncRun(runID string, r SyncResult) SyncRun {
	run := SyncRun{
		RunID:      runID,
		ProfileID:  r.ProfileID,
		Total:      r.Total,
		Succeeded:  r.Succeeded,
		Success:    r.Success(),
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
	if r.Err != nil {
		run.Error = r.Err.Error()
	}
	return run
}
