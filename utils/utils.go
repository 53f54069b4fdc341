// Package utils implements small generic helpers shared by the other packages.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Max returns the maximum value of the input values.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// TrimRight returns the longest prefix of s whose last element does not satisfy drop.
// The returned slice shares the backing array of s.
func TrimRight[V any](s []V, drop func(V) bool) []V {
	n := len(s)
	for n > 0 && drop(s[n-1]) {
		n--
	}
	return s[:n]
}
