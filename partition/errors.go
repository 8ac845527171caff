// SPDX-License-Identifier: MIT
// Package: partition
//
// errors.go - sentinel errors for the partition package.
// Callers MUST use errors.Is(err, ErrX); context is attached with %w.

package partition

import "errors"

var (
	// ErrInvalidTotal indicates totalRows < 1.
	ErrInvalidTotal = errors.New("partition: total rows must be >= 1")

	// ErrInvalidWorkerCount indicates workerCount < 1; callers clamp before splitting.
	ErrInvalidWorkerCount = errors.New("partition: worker count must be >= 1")

	// ErrCoverage indicates ranges that leave a gap, overlap, run out of order,
	// or escape [0, total).
	ErrCoverage = errors.New("partition: ranges do not exactly cover the rows")

	// ErrImbalance indicates two range sizes differing by more than one row.
	ErrImbalance = errors.New("partition: range sizes differ by more than one")
)
