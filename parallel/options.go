// SPDX-License-Identifier: MIT
// Package: parallel
//
// options.go - functional options for Executor.
//
// Contract:
//   • Options are functional (type Option func(*options)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error). Multiply itself never panics.
//   • No hidden globals; everything flows through options.

package parallel

import (
	"io"
	"log"
	"time"
)

// DefaultWorkers is the worker count used when WithWorkers is not given.
const DefaultWorkers = 4

// DefaultTimeout disables the join timeout: a hung worker blocks the coordinator.
const DefaultTimeout time.Duration = 0

const (
	panicWorkersInvalid = "parallel: WithWorkers: n must be >= 1"
	panicSpawnerNil     = "parallel: WithSpawner(nil)"
	panicTimeoutInvalid = "parallel: WithTimeout: d must be >= 0"
	panicLoggerNil      = "parallel: WithLogger(nil)"
)

// Option customizes an Executor.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	workers int
	spawner Spawner
	timeout time.Duration
	logger  *log.Logger
}

func defaultOptions() options {
	return options{
		workers: DefaultWorkers,
		spawner: GoroutineSpawner{},
		timeout: DefaultTimeout,
		logger:  log.New(io.Discard, "", 0),
	}
}

// WithWorkers sets the number of row partitions (and workers). Panics if n < 1;
// callers holding untrusted input clamp first (partition.Clamp).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithSpawner selects how workers are started (GoroutineSpawner by default).
func WithSpawner(s Spawner) Option {
	if s == nil {
		panic(panicSpawnerNil)
	}

	return func(o *options) { o.spawner = s }
}

// WithTimeout bounds the join phase; 0 disables it.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeoutInvalid)
	}

	return func(o *options) { o.timeout = d }
}

// WithLogger traces allocation, spawn and join events. Discarded by default.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}
