// SPDX-License-Identifier: MIT

// Package shm allocates the result regions that parallel workers write into.
//
// A Region is one contiguous []float32 owned by the coordinator: it is
// allocated before any worker starts and released only after every worker has
// terminated. Two kinds exist:
//
//   - HeapRegion: ordinary Go memory, shared by goroutine workers of one process.
//   - SharedRegion (Linux): an anonymous memfd mapped MAP_SHARED. Its file can
//     be inherited by child processes, which Attach to the same pages, so
//     process workers write directly into the coordinator's buffer.
//
// Regions carry no locks. Callers must guarantee that concurrent writers touch
// disjoint index ranges and that nobody reads while writers are live.
package shm
