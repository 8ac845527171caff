// SPDX-License-Identifier: MIT

// Command parmatmul multiplies two matrices read from text files twice, once
// split by rows across parallel workers and once sequentially, writes both
// results and reports the elapsed times and the speedup.
//
// Usage:
//
//	parmatmul [workers]                         # A_small.txt × B_small.txt, 4 workers
//	parmatmul 8 --mode process --verify         # one OS process per row range
//	parmatmul gen --rows 500 --cols 300 --seed 1 --out A_small.txt
//
// The worker count is parsed leniently: leading digits are used, anything
// unparsable counts as 0, and the result is clamped to at least 1.
// Exit status is 0 on success and 1 on any failure.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
