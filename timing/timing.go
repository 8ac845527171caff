// SPDX-License-Identifier: MIT

package timing

import "time"

// Sample is one measured run.
type Sample struct {
	Label   string
	Elapsed time.Duration
}

// Seconds returns Elapsed as floating-point seconds.
func (s Sample) Seconds() float64 { return s.Elapsed.Seconds() }

// Measure runs fn once and records its wall-clock duration. time.Now carries a
// monotonic reading, so the result is immune to wall-clock steps. The sample
// is returned even when fn fails.
func Measure(label string, fn func() error) (Sample, error) {
	start := time.Now()
	err := fn()

	return Sample{Label: label, Elapsed: time.Since(start)}, err
}

// Speedup returns seq/par. ok is false when either duration is not positive;
// the ratio is then meaningless and is not reported.
func Speedup(seq, par time.Duration) (ratio float64, ok bool) {
	if seq <= 0 || par <= 0 {
		return 0, false
	}

	return seq.Seconds() / par.Seconds(), true
}
