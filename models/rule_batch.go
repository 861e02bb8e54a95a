// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaxBatchSize is the largest number of hostnames the filtering service
// accepts in a single rule creation call.
const MaxBatchSize = 500

// RuleBatch is one rule creation call: a contiguous slice of a folder's
// hostnames sharing the folder's action and status.
type RuleBatch struct {
	// Index is the 1-based position of the batch within its folder.
	Index     int
	FolderID  string
	Action    int
	Status    int
	Hostnames []string
}

// SplitBatches partitions hostnames into contiguous chunks of at most size
// entries, preserving order. A size outside (0, MaxBatchSize] is clamped to
// MaxBatchSize. The chunks share the backing array of hostnames.
func SplitBatches(hostnames []string, size int) [][]string {
	if size <= 0 || size > MaxBatchSize {
		size = MaxBatchSize
	}
	if len(hostnames) == 0 {
		return nil
	}

	batches := make([][]string, 0, (len(hostnames)+size-1)/size)
	for start := 0; start < len(hostnames); start += size {
		end := min(start+size, len(hostnames))
		batches = append(batches, hostnames[start:end:end])
	}
	return batches
}
