// SPDX-License-Identifier: MIT

// Package timing measures wall-clock durations on the monotonic clock and
// prints the run report (worker count, elapsed seconds, speedup).
//
// Measure wraps one blocking computation; Speedup derives seq/par only when
// both samples are positive; Reporter formats lines through an English
// golang.org/x/text/message printer so large counts are digit-grouped.
package timing
