// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/parmatmul/partition"
)

// RegionFD is the descriptor number under which a worker process inherits the
// shared region (first entry of exec.Cmd.ExtraFiles).
const RegionFD = 3

// WorkerSpec tells a worker process which rows to compute and how the shared
// region is laid out: A (M×K), then B (K×N), then C (M×N), all row-major.
type WorkerSpec struct {
	Worker int
	M, K   int
	N      int
	Rows   partition.Range
}

// regionLen is the number of float32 values in the shared region.
func (s WorkerSpec) regionLen() int { return s.M*s.K + s.K*s.N + s.M*s.N }

// Args renders the spec as command-line flags understood by ParseWorkerSpec.
func (s WorkerSpec) Args() []string {
	return []string{
		fmt.Sprintf("--worker=%d", s.Worker),
		fmt.Sprintf("--m=%d", s.M),
		fmt.Sprintf("--k=%d", s.K),
		fmt.Sprintf("--n=%d", s.N),
		fmt.Sprintf("--start=%d", s.Rows.Start),
		fmt.Sprintf("--end=%d", s.Rows.End),
	}
}

// ParseWorkerSpec parses the flags produced by WorkerSpec.Args.
// Errors: ErrWorkerSpec for unknown flags, negative shapes, or a range outside [0, M].
func ParseWorkerSpec(args []string) (WorkerSpec, error) {
	var s WorkerSpec
	fs := pflag.NewFlagSet("worker", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&s.Worker, "worker", 0, "worker index")
	fs.IntVar(&s.M, "m", -1, "rows of A")
	fs.IntVar(&s.K, "k", -1, "cols of A / rows of B")
	fs.IntVar(&s.N, "n", -1, "cols of B")
	fs.IntVar(&s.Rows.Start, "start", 0, "first row (inclusive)")
	fs.IntVar(&s.Rows.End, "end", 0, "last row (exclusive)")
	if err := fs.Parse(args); err != nil {
		return WorkerSpec{}, fmt.Errorf("%w: %w", err, ErrWorkerSpec)
	}
	if s.M < 0 || s.K < 0 || s.N < 0 {
		return WorkerSpec{}, fmt.Errorf("shape %dx%d·%dx%d: %w", s.M, s.K, s.K, s.N, ErrWorkerSpec)
	}
	if s.Rows.Start < 0 || s.Rows.End < s.Rows.Start || s.Rows.End > s.M {
		return WorkerSpec{}, fmt.Errorf("rows %s of %d: %w", s.Rows, s.M, ErrWorkerSpec)
	}

	return s, nil
}

// WorkerMain is the body of a worker process: it parses args, maps the region
// inherited on RegionFD, computes its rows and returns the exit code.
func WorkerMain(args []string, stderr io.Writer) int {
	spec, err := ParseWorkerSpec(args)
	if err != nil {
		fmt.Fprintf(stderr, "worker: %v\n", err)
		return 2
	}
	if err = RunWorker(spec, os.NewFile(RegionFD, "parmatmul-region")); err != nil {
		fmt.Fprintf(stderr, "worker %d: %v\n", spec.Worker, err)
		return 1
	}

	return 0
}
