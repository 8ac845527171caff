// SPDX-License-Identifier: MIT

package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtoi(t *testing.T) {
	cases := map[string]int{
		"4":           4,
		"  12":        12,
		"+7":          7,
		"-3":          -3,
		"8x":          8,
		"abc":         0,
		"":            0,
		"0":           0,
		" \t9 ":       9,
		"99999999999": math.MaxInt32,
		"--1":         0,
	}
	for in, want := range cases {
		require.Equal(t, want, atoi(in), "atoi(%q)", in)
	}
}
