// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmatmul/parallel"
)

// workerCmdName is the subcommand the process spawner re-executes.
const workerCmdName = "worker"

// newWorkerCmd is the child side of --mode process. Flags are handed to
// parallel.WorkerMain untouched.
func newWorkerCmd(stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                workerCmdName,
		Short:              "Compute one row range into an inherited shared region",
		Hidden:             true,
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if code := parallel.WorkerMain(args, stderr); code != 0 {
				return exitCode(code)
			}
			return nil
		},
	}
}
