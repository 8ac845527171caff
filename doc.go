// Package parmatmul multiplies dense float32 matrices two ways, once split by
// output rows across parallel workers and once in a single loop, and reports
// how much faster the parallel run was.
//
// Workers share one result region and never lock it: each owns a disjoint
// half-open row range of C and the coordinator reads C only after joining
// every worker. Workers are goroutines by default or, on Linux, separate OS
// processes mapping the same memfd-backed region.
//
// Layout:
//
//	matrix/     - Dense store, validators, Mul and the MulRows row kernel
//	partition/  - balanced static row ranges
//	shm/        - heap and memfd MAP_SHARED result regions
//	parallel/   - Executor, goroutine and process spawners, worker entrypoint
//	timing/     - monotonic measurements, speedup and the printed report
//	matrixio/   - text read/write of matrices
//	builder/    - deterministic random, sequence and identity generators
//	cmd/parmatmul - the CLI (run, gen, hidden worker)
//
// Quick start:
//
//	a, _ := builder.Sequence(2, 3)
//	b, _ := builder.Sequence(3, 2, builder.WithStart(7))
//	c, err := parallel.New(parallel.WithWorkers(2)).Multiply(ctx, a, b)
//	// c == [[58, 64], [139, 154]]
package parmatmul
