// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// negativeCount matches a worker count such as "-3" that pflag would
// otherwise read as a shorthand flag.
var negativeCount = regexp.MustCompile(`^-[0-9]`)

// exitCode is returned by commands that already reported their failure and
// only need to set the process status.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

// execute runs the command tree on args and maps the outcome to an exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(positionalNegative(root, args))
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var code exitCode
	if errors.As(err, &code) {
		return int(code)
	}
	fmt.Fprintf(stderr, "parmatmul: %v\n", err)

	return 1
}

// positionalNegative moves a negative worker count given to the root command
// behind "--" so it reaches atoi and is clamped instead of failing flag
// parsing. Values of flags ("--timeout -1s") and subcommand arguments are
// left alone, as is any command line that already contains "--".
func positionalNegative(root *cobra.Command, args []string) []string {
	if len(args) > 0 && isSubcommand(root, args[0]) {
		return args
	}
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !negativeCount.MatchString(arg) || (i > 0 && takesValue(root, args[i-1])) {
			continue
		}
		out := slices.Delete(slices.Clone(args), i, i+1)

		return append(out, "--", arg)
	}

	return args
}

func isSubcommand(root *cobra.Command, name string) bool {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}

	return false
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(root *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	fs := root.Flags()
	switch {
	case strings.HasPrefix(arg, "--"):
		f := fs.Lookup(arg[2:])
		return f != nil && f.NoOptDefVal == ""
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		f := fs.ShorthandLookup(arg[1:])
		return f != nil && f.NoOptDefVal == ""
	}

	return false
}
