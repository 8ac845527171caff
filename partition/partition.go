// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	methodSplit    = "Split"
	methodValidate = "Validate"
	minTotal       = 1
	minWorkers     = 1
)

// Range is a half-open row range [Start, End) assigned to one worker.
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range holds no rows.
func (r Range) Empty() bool { return r.Start == r.End }

// String renders the range as "[start,end)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Clamp returns n if n >= 1 and 1 otherwise.
func Clamp(n int) int { return max(n, minWorkers) }

// Split divides [0, totalRows) into exactly workerCount ranges.
//
// Errors:
//   - ErrInvalidTotal if totalRows < 1.
//   - ErrInvalidWorkerCount if workerCount < 1.
//
// Complexity: O(workerCount) time and space.
func Split(totalRows, workerCount int) ([]Range, error) {
	if totalRows < minTotal {
		return nil, fmt.Errorf("%s: totalRows=%d: %w", methodSplit, totalRows, ErrInvalidTotal)
	}
	if workerCount < minWorkers {
		return nil, fmt.Errorf("%s: workerCount=%d: %w", methodSplit, workerCount, ErrInvalidWorkerCount)
	}

	base, rem := totalRows/workerCount, totalRows%workerCount
	parts := make([]Range, workerCount)
	for p := range parts {
		start := p*base + min(p, rem)
		end := start + base
		if p < rem {
			end++
		}
		parts[p] = Range{Start: start, End: end}
	}

	return parts, nil
}

// Validate checks that parts, in order, tile [0, total) exactly and that
// their sizes differ by at most one.
//
// Errors: ErrCoverage, ErrImbalance.
// Complexity: O(len(parts)).
func Validate(parts []Range, total int) error {
	next := 0
	for p, r := range parts {
		if r.Start != next || r.End < r.Start {
			return fmt.Errorf("%s: range %d %s, expected start %d: %w", methodValidate, p, r, next, ErrCoverage)
		}
		next = r.End
	}
	if next != total {
		return fmt.Errorf("%s: ranges end at %d, total %d: %w", methodValidate, next, total, ErrCoverage)
	}
	if len(parts) == 0 {
		return nil
	}

	sizes := Sizes(parts)
	if lo.Max(sizes)-lo.Min(sizes) > 1 {
		return fmt.Errorf("%s: sizes %v: %w", methodValidate, sizes, ErrImbalance)
	}

	return nil
}

// Sizes returns the row count of each range, in order.
func Sizes(parts []Range) []int {
	return lo.Map(parts, func(r Range, _ int) int { return r.Len() })
}
