// SPDX-License-Identifier: MIT

// Package hostinfo describes the machine a timing report was taken on.
package hostinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// Info is the subset of host facts that affects matrix-product timings.
type Info struct {
	OS         string
	Arch       string
	CPUs       int
	GOMAXPROCS int
	Features   []string // vector extensions detected by x/sys/cpu
}

// Detect reads the current host.
func Detect() Info {
	return Info{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		CPUs:       runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   features(runtime.GOARCH),
	}
}

// String renders Info as one report line, e.g.
// "linux/amd64, 8 CPUs (GOMAXPROCS 8), avx avx2 fma".
func (i Info) String() string {
	s := fmt.Sprintf("%s/%s, %d CPUs (GOMAXPROCS %d)", i.OS, i.Arch, i.CPUs, i.GOMAXPROCS)
	if len(i.Features) == 0 {
		return s
	}

	return s + ", " + strings.Join(i.Features, " ")
}

type flag struct {
	name string
	on   bool
}

func features(arch string) []string {
	var flags []flag
	switch arch {
	case "amd64", "386":
		flags = []flag{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		flags = []flag{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fphp", cpu.ARM64.HasFPHP},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}

	return lo.FilterMap(flags, func(f flag, _ int) (string, bool) { return f.name, f.on })
}
