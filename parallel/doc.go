// SPDX-License-Identifier: MIT

// Package parallel is the multi-worker matrix product engine.
//
// An Executor computes C = A × B by
//
//  1. allocating one zero-filled result region of A.Rows()*B.Cols() values,
//  2. splitting the output rows into contiguous ranges (package partition),
//  3. spawning one worker per range through a Spawner,
//  4. joining every worker handle exactly once, and only then
//  5. materializing the region into a fresh *matrix.Dense and releasing it.
//
// Workers write straight into the shared region without locks: the ranges
// are disjoint, so no two workers ever touch the same cell, and the
// coordinator reads nothing until all of them have joined. A and B are shared
// read-only.
//
// Two spawners ship with the package:
//
//   - GoroutineSpawner runs each range on its own goroutine over a heap region.
//   - ProcessSpawner (Linux) re-executes a worker binary per range. A, B and
//     the result live in one memfd mapping inherited by every child, so each
//     process writes its rows directly into the coordinator's pages.
//
// Failure policy:
//
//   - A spawn failure for worker p joins workers 0..p-1, releases the region
//     and returns ErrSpawnFailure. Partial results are discarded.
//   - A worker that panics or exits abnormally is reported at join time as
//     ErrWorkerFailure after every other worker has been joined. Rows of a
//     failed worker are never returned as zeros.
//   - WithTimeout bounds the join phase. On expiry process workers are killed
//     and reaped; goroutines cannot be preempted, so their heap region is left
//     to the garbage collector instead of being released under a live writer.
package parallel
