// SPDX-License-Identifier: MIT

// Package partition splits the output rows of a product into contiguous,
// near-equal, half-open ranges: one Range per worker.
//
// For totalRows rows and w workers, base = totalRows / w and rem = totalRows % w;
// the first rem ranges receive base+1 rows and the rest receive base rows, in
// worker-index order:
//
//	start(p) = p*base + min(p, rem)
//	end(p)   = start(p) + base + (1 if p < rem else 0)
//
// The union of all ranges is exactly [0, totalRows) with no gaps or overlaps,
// and sizes differ by at most one. When w > totalRows the trailing ranges are
// empty (Start == End); they are no-op work units, not errors.
//
// Example:
//
//	parts, _ := partition.Split(10, 4) // [0,3) [3,6) [6,8) [8,10)
package partition
