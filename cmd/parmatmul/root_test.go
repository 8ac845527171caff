// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/matrixio"
)

type CLISuite struct {
	suite.Suite
	dir            string
	stdout, stderr bytes.Buffer
}

func TestCLI(t *testing.T) { suite.Run(t, new(CLISuite)) }

func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.stdout.Reset()
	s.stderr.Reset()
}

func (s *CLISuite) path(name string) string { return filepath.Join(s.dir, name) }

func (s *CLISuite) writeMatrix(name string, rows [][]float32) {
	m, err := matrix.NewDenseRows(rows)
	s.Require().NoError(err)
	s.Require().NoError(matrixio.WriteFile(s.path(name), m))
}

func (s *CLISuite) run(args ...string) int {
	base := []string{
		"--a", s.path("A.txt"), "--b", s.path("B.txt"),
		"--out-parallel", s.path("Cp.txt"), "--out-sequential", s.path("Cs.txt"),
	}
	return execute(context.Background(), append(base, args...), &s.stdout, &s.stderr)
}

func (s *CLISuite) readResult(name string) *matrix.Dense {
	m, err := matrixio.ReadFile(s.path(name))
	s.Require().NoError(err)
	return m
}

func (s *CLISuite) writeScenario() {
	s.writeMatrix("A.txt", [][]float32{{1, 2, 3}, {4, 5, 6}})
	s.writeMatrix("B.txt", [][]float32{{7, 8}, {9, 10}, {11, 12}})
}

func (s *CLISuite) TestScenarioWritesBothResults() {
	s.writeScenario()
	want, err := matrix.NewDenseRows([][]float32{{58, 64}, {139, 154}})
	s.Require().NoError(err)

	for _, w := range []string{"1", "2", "3"} {
		s.Require().Equal(0, s.run(w, "--verify"), s.stderr.String())
		s.Require().True(want.Equal(s.readResult("Cp.txt")), "w=%s", w)
		s.Require().True(want.Equal(s.readResult("Cs.txt")), "w=%s", w)
	}
	out := s.stdout.String()
	s.Contains(out, "Using 3 goroutine workers for the parallel product.")
	s.Contains(out, "Elapsed (parallel, 3 workers):")
	s.Contains(out, "Elapsed (sequential):")
	s.Contains(out, "Verified: parallel matches sequential")
	s.Contains(out, "Host: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func (s *CLISuite) TestWorkerCountIsClampedAndDefaulted() {
	s.writeScenario()

	s.Require().Equal(0, s.run("0"))
	s.Contains(s.stdout.String(), "Using 1 goroutine workers")

	s.stdout.Reset()
	s.Require().Equal(0, s.run("junk"))
	s.Contains(s.stdout.String(), "Using 1 goroutine workers")

	s.stdout.Reset()
	s.Require().Equal(0, s.run())
	s.Contains(s.stdout.String(), "Using 4 goroutine workers")

	s.stdout.Reset()
	s.Require().Equal(0, s.run("10"), "more workers than rows")
	s.Contains(s.stdout.String(), "Using 10 goroutine workers")
}

func (s *CLISuite) TestNegativeWorkerCountIsClamped() {
	s.writeScenario()

	s.Require().Equal(0, s.run("-3"), s.stderr.String())
	s.Contains(s.stdout.String(), "Using 1 goroutine workers")
	s.FileExists(s.path("Cp.txt"))
}

func TestPositionalNegative(t *testing.T) {
	root := newRootCmd(io.Discard, io.Discard)
	cases := []struct {
		name     string
		in, want []string
	}{
		{"leading", []string{"-3", "-q"}, []string{"-q", "--", "-3"}},
		{"after flags", []string{"--a", "A", "-2x"}, []string{"--a", "A", "--", "-2x"}},
		{"flag value", []string{"--timeout", "-1s"}, []string{"--timeout", "-1s"}},
		{"bool flag before", []string{"--verify", "-4"}, []string{"--verify", "--", "-4"}},
		{"already separated", []string{"--", "-5"}, []string{"--", "-5"}},
		{"subcommand", []string{"gen", "--low", "-1"}, []string{"gen", "--low", "-1"}},
		{"positive", []string{"8"}, []string{"8"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, positionalNegative(root, tc.in))
		})
	}
}

func (s *CLISuite) TestDimensionMismatchWritesNothing() {
	s.writeMatrix("A.txt", [][]float32{{1, 2, 3}, {4, 5, 6}})
	s.writeMatrix("B.txt", [][]float32{{1, 2}, {3, 4}})

	s.Require().Equal(1, s.run("2"))
	s.Contains(s.stderr.String(), "A is 2x3, B is 2x2")
	s.NoFileExists(s.path("Cp.txt"))
	s.NoFileExists(s.path("Cs.txt"))
}

func (s *CLISuite) TestMissingInputFails() {
	s.writeMatrix("A.txt", [][]float32{{1}})

	s.Require().Equal(1, s.run())
	s.Contains(s.stderr.String(), "reading matrices")
	s.NoFileExists(s.path("Cp.txt"))
}

func (s *CLISuite) TestMalformedInputFails() {
	s.writeMatrix("A.txt", [][]float32{{1}})
	s.Require().NoError(os.WriteFile(s.path("B.txt"), []byte("1 2\n3\n"), 0o644))

	s.Require().Equal(1, s.run())
	s.Contains(s.stderr.String(), "line 2")
}

func (s *CLISuite) TestQuietSilencesReport() {
	s.writeScenario()

	s.Require().Equal(0, s.run("--quiet"))
	s.Empty(s.stdout.String())
	s.FileExists(s.path("Cp.txt"))
}

func (s *CLISuite) TestBadModeFails() {
	s.writeScenario()

	s.Require().Equal(1, s.run("--mode", "threads"))
	s.Contains(s.stderr.String(), `--mode "threads"`)
}

func (s *CLISuite) TestVerboseTracesWorkers() {
	s.writeScenario()

	s.Require().Equal(0, s.run("2", "-v"))
	s.Contains(s.stderr.String(), "spawned worker 1 rows [1,2)")
}

func (s *CLISuite) TestProcessMode() {
	if runtime.GOOS != "linux" {
		s.T().Skip("process workers need memfd")
	}
	s.T().Setenv(workerEnv, "1")
	s.writeScenario()

	s.Require().Equal(0, s.run("2", "--mode", "process", "--verify"), s.stderr.String())
	want, err := matrix.NewDenseRows([][]float32{{58, 64}, {139, 154}})
	s.Require().NoError(err)
	s.Require().True(want.Equal(s.readResult("Cp.txt")))
	s.Contains(s.stdout.String(), "Using 2 process workers")
}

func (s *CLISuite) TestGen() {
	out := s.path("G.txt")
	code := execute(context.Background(),
		[]string{"gen", "--rows", "3", "--cols", "4", "--seed", "5", "--out", out}, &s.stdout, &s.stderr)
	s.Require().Equal(0, code, s.stderr.String())
	s.Contains(s.stdout.String(), "wrote 3x4 random matrix")

	m, err := matrixio.ReadFile(out)
	s.Require().NoError(err)
	s.Equal(3, m.Rows())
	s.Equal(4, m.Cols())

	code = execute(context.Background(), []string{"gen", "--rows", "2", "--kind", "identity", "--out", out}, &s.stdout, &s.stderr)
	s.Require().Equal(0, code)
	id, err := matrixio.ReadFile(out)
	s.Require().NoError(err)
	s.Equal([]float32{1, 0, 0, 1}, id.RawData())
}

func (s *CLISuite) TestGenRejects() {
	out := s.path("G.txt")
	s.Equal(1, execute(context.Background(), []string{"gen", "--rows", "2", "--kind", "nope", "--out", out}, &s.stdout, &s.stderr))
	s.Equal(1, execute(context.Background(), []string{"gen", "--rows", "2", "--low", "1", "--high", "0", "--out", out}, &s.stdout, &s.stderr))
	s.Equal(1, execute(context.Background(), []string{"gen", "--out", out}, &s.stdout, &s.stderr), "rows is required")
	for _, bound := range []string{"NaN", "inf", "-Inf"} {
		s.Equal(1, execute(context.Background(), []string{"gen", "--rows", "2", "--cols", "2", "--low", bound, "--out", out}, &s.stdout, &s.stderr), bound)
		s.Equal(1, execute(context.Background(), []string{"gen", "--rows", "2", "--cols", "2", "--high=" + bound, "--out", out}, &s.stdout, &s.stderr), bound)
	}
	s.Contains(s.stderr.String(), "must be finite")
	s.NoFileExists(out)
}

func (s *CLISuite) TestWorkerSubcommandRejectsBadArgs() {
	s.Equal(2, execute(context.Background(), []string{"worker", "--m=-1"}, &s.stdout, &s.stderr))
	s.Contains(s.stderr.String(), "worker:")
}
