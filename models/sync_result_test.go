// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncResult_Success(t *testing.T) {
	tests := []struct {
		name   string
		result SyncResult
		want   bool
	}{
		{name: "all folders", result: SyncResult{Total: 3, Succeeded: 3}, want: true},
		{name: "partial", result: SyncResult{Total: 3, Succeeded: 2}},
		{name: "nothing targeted", result: SyncResult{}},
		{name: "failed early", result: SyncResult{Err: errors.New("no definitions")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Success())
		})
	}
}

func TestRunSummary_ExitCode(t *testing.T) {
	ok := SyncResult{Total: 1, Succeeded: 1}
	failed := SyncResult{Total: 1}

	assert.Equal(t, 0, RunSummary{Results: []SyncResult{ok, ok}}.ExitCode())
	assert.Equal(t, 1, RunSummary{Results: []SyncResult{ok, failed}}.ExitCode())
	assert.Equal(t, 1, RunSummary{}.ExitCode())
	assert.Equal(t, 1, RunSummary{Results: []SyncResult{ok, failed}}.Succeeded())
}

func TestNewSyncRun(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r := SyncResult{
		ProfileID:  "p1",
		Total:      2,
		Succeeded:  1,
		StartedAt:  start,
		FinishedAt: start.Add(time.Minute),
		Err:        errors.New("boom"),
	}

	run := NewSyncRun("run-1", r)

	assert.Equal(t, SyncRun{
		RunID:      "run-1",
		ProfileID:  "p1",
		Total:      2,
		Succeeded:  1,
		Success:    false,
		Error:      "boom",
		StartedAt:  start,
		FinishedAt: start.Add(time.Minute),
	}, run)
	assert.Equal(t, time.Minute, r.Duration())
}
