// Package bsearch implements a binary search over sorted floating point
// values that also reports where a missing target would fall.
package bsearch

import "golang.org/x/exp/constraints"

// Search looks for target in sorted, which must be in ascending order. It
// returns the number of halving iterations it took along with the matching
// element. When target is missing it returns the smallest element greater
// than target instead (its upper bound), and ok is false only when no such
// element exists.
func Search[T constraints.Float](sorted []T, target T) (iterations int, value T, ok bool) {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		iterations++
		mid := int(uint(lo+hi) >> 1)
		switch {
		case sorted[mid] == target:
			return iterations, sorted[mid], true
		case sorted[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	if lo < len(sorted) {
		return iterations, sorted[lo], true
	}
	return iterations, 0, false
}
