// SPDX-License-Identifier: MIT

package main

import "math"

// atoi converts the leading integer of s the way C's atoi does: optional
// leading spaces, an optional sign, then decimal digits up to the first
// other byte. No digits yields 0. The value saturates at ±MaxInt32.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || (s[i] >= '\t' && s[i] <= '\r')) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n < math.MaxInt32 {
			n = n*10 + int(s[i]-'0')
		}
	}
	n = min(n, math.MaxInt32)
	if neg {
		return -n
	}

	return n
}
