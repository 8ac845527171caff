// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"testing"
)

// workerEnv makes the test binary behave like the parmatmul binary so that
// --mode process can re-execute it with the hidden worker subcommand.
const workerEnv = "PARMATMUL_TEST_CLI"

func TestMain(m *testing.M) {
	if os.Getenv(workerEnv) == "1" {
		os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
	}
	os.Exit(m.Run())
}
