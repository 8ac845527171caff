// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parmatmul/internal/hostinfo"
	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/matrixio"
	"github.com/katalvlaran/parmatmul/parallel"
	"github.com/katalvlaran/parmatmul/partition"
	"github.com/katalvlaran/parmatmul/timing"
)

const (
	modeGoroutine = "goroutine"
	modeProcess   = "process"
)

var errVerify = errors.New("parallel and sequential results differ")

// runConfig is the parsed command line of the root command.
type runConfig struct {
	workers int
	pathA   string
	pathB   string
	outPar  string
	outSeq  string
	mode    string
	timeout time.Duration
	verify  bool
	quiet   bool
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := runConfig{workers: parallel.DefaultWorkers}
	cmd := &cobra.Command{
		Use:   "parmatmul [workers]",
		Short: "Multiply two matrices in parallel and sequentially and report the speedup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.workers = partition.Clamp(atoi(args[0]))
			}
			if cfg.mode != modeGoroutine && cfg.mode != modeProcess {
				return fmt.Errorf("--mode %q: want %s or %s", cfg.mode, modeGoroutine, modeProcess)
			}

			return run(cmd.Context(), cfg, stdout, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&cfg.pathA, "a", "A_small.txt", "left operand file")
	f.StringVar(&cfg.pathB, "b", "B_small.txt", "right operand file")
	f.StringVar(&cfg.outPar, "out-parallel", "C_out_paralelo.txt", "output file for the parallel result")
	f.StringVar(&cfg.outSeq, "out-sequential", "C_out_secuencial.txt", "output file for the sequential result")
	f.StringVar(&cfg.mode, "mode", modeGoroutine, "worker kind: goroutine or process")
	f.DurationVar(&cfg.timeout, "timeout", parallel.DefaultTimeout, "kill workers that have not finished after this long (0 = wait forever)")
	f.BoolVar(&cfg.verify, "verify", false, "fail unless both results agree within float32 tolerance")
	f.BoolVarP(&cfg.quiet, "quiet", "q", false, "suppress the report")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "trace worker spawn and join on stderr")

	cmd.AddCommand(newWorkerCmd(stderr), newGenCmd(stdout))

	return cmd
}

// run reads A and B, computes the parallel product and then the sequential
// one, writing each result as soon as it exists.
func run(ctx context.Context, cfg runConfig, stdout, stderr io.Writer) error {
	if cfg.quiet {
		stdout = io.Discard
	}
	rep := timing.NewReporter(stdout)
	rep.Host(hostinfo.Detect().String())
	rep.Workers(cfg.workers, cfg.mode)

	a, b, err := readInputs(cfg.pathA, cfg.pathB)
	if err != nil {
		return err
	}
	defer a.Release()
	defer b.Release()
	if err = matrix.ValidateMulCompatible(a, b); err != nil {
		return fmt.Errorf("incompatible dimensions: %w", err)
	}
	rep.Shapes(a.Rows(), a.Cols(), b.Cols())

	exec, err := newExecutor(cfg, stderr)
	if err != nil {
		return err
	}

	var cPar *matrix.Dense
	parSample, err := timing.Measure("parallel", func() (err error) {
		cPar, err = exec.Multiply(ctx, a, b)
		return err
	})
	if err != nil {
		return err
	}
	defer cPar.Release()
	rep.Parallel(parSample, cfg.workers)
	if err = matrixio.WriteFile(cfg.outPar, cPar); err != nil {
		return err
	}

	var cSeq *matrix.Dense
	seqSample, err := timing.Measure("sequential", func() (err error) {
		cSeq, err = matrix.Mul(a, b)
		return err
	})
	if err != nil {
		return err
	}
	defer cSeq.Release()
	rep.Sequential(seqSample)
	if err = matrixio.WriteFile(cfg.outSeq, cSeq); err != nil {
		return err
	}
	rep.Speedup(seqSample, parSample)

	if cfg.verify {
		return verify(rep, cSeq, cPar)
	}

	return nil
}

// readInputs parses both operand files concurrently.
func readInputs(pathA, pathB string) (a, b *matrix.Dense, err error) {
	var g errgroup.Group
	g.Go(func() (err error) {
		a, err = matrixio.ReadFile(pathA)
		return err
	})
	g.Go(func() (err error) {
		b, err = matrixio.ReadFile(pathB)
		return err
	})
	if err = g.Wait(); err != nil {
		if a != nil {
			a.Release()
		}
		if b != nil {
			b.Release()
		}
		return nil, nil, fmt.Errorf("reading matrices: %w", err)
	}

	return a, b, nil
}

func newExecutor(cfg runConfig, stderr io.Writer) (*parallel.Executor, error) {
	// The trace logger and process workers write to stderr concurrently.
	stderr = parallel.NewSyncWriter(stderr)
	opts := []parallel.Option{
		parallel.WithWorkers(cfg.workers),
		parallel.WithTimeout(cfg.timeout),
	}
	if cfg.verbose {
		opts = append(opts, parallel.WithLogger(log.New(stderr, "parmatmul: ", log.Lmicroseconds)))
	}
	if cfg.mode == modeProcess {
		sp, err := parallel.NewProcessSpawner("", workerCmdName)
		if err != nil {
			return nil, fmt.Errorf("--mode process: %w", err)
		}
		sp.Stderr = stderr
		opts = append(opts, parallel.WithSpawner(sp))
	}

	return parallel.New(opts...), nil
}

func verify(rep *timing.Reporter, seq, par *matrix.Dense) error {
	ok, err := matrix.AllClose(seq, par, matrix.DefaultRelTol, matrix.DefaultAbsTol)
	if err != nil {
		return err
	}
	diff, err := matrix.MaxAbsDiff(seq, par)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w (max |Δ| = %g)", errVerify, diff)
	}
	rep.Verified(diff)

	return nil
}
