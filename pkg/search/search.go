package search

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSearcher = errors.New("search: unknown searcher")

// Searcher is implemented by every single pattern, exact match algorithm in
// this package. All methods treat a nil text or pattern as empty, and none
// of them retain any state between calls.
type Searcher interface {
	fmt.Stringer
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
	FindAllIndex(text, pattern []byte) []int
	Contains(text, pattern []byte) bool
}

// Boyer-Moore:
// Pre-analyzes the pattern into a table holding the rightmost position of each
// unit, then compares each window right-to-left. On a mismatch the table tells
// how far the window can slide. Long patterns over a large alphabet let it skip
// most of the text; a one or two unit pattern degrades into a linear scan.

// Knuth-Morris-Pratt:
// Pre-analyzes the pattern into a failure table so whatever prefix was already
// matched is never compared again. It shines on small alphabets and texts with
// a lot of tight repetition, and it never moves backwards in the text.

// Rabin-Karp:
// Hashes each successive window of the text with a rolling polynomial hash and
// only compares units when the window hash equals the pattern hash. It is most
// useful when many windows must be fingerprinted, less so for a single pattern
// because of its slow worst case under collisions.

// Searchers returns one instance of every algorithm, in a stable order.
func Searchers() []Searcher {
	return []Searcher{
		NewBoyerMoore(),
		NewKnuthMorrisPratt(),
		NewRabinKarp(),
	}
}

// Lookup resolves a searcher by its full name or short alias.
func Lookup(name string) (Searcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boyer-moore", "boyermoore", "bm":
		return NewBoyerMoore(), nil
	case "knuth-morris-pratt", "knuthmorrispratt", "kmp":
		return NewKnuthMorrisPratt(), nil
	case "rabin-karp", "rabinkarp", "rk":
		return NewRabinKarp(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSearcher, name)
}

// finder reports each match start to found and stops as soon as found
// returns false.
type finder[T comparable] func(text, pattern []T, found func(int) bool)

// firstIndex returns the first match position, or -1.
func firstIndex[T comparable](find finder[T], text, pattern []T) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(text) {
		return -1
	}
	at := -1
	find(text, pattern, func(i int) bool {
		at = i
		return false
	})
	return at
}

// allIndex returns every match position in ascending order. Matches may
// overlap, and the empty pattern matches at every position of the text
// including its end.
func allIndex[T comparable](find finder[T], text, pattern []T) []int {
	if len(pattern) == 0 {
		all := make([]int, len(text)+1)
		for i := range all {
			all[i] = i
		}
		return all
	}
	if len(pattern) > len(text) {
		return nil
	}
	var all []int
	find(text, pattern, func(i int) bool {
		all = append(all, i)
		return true
	})
	return all
}

func equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
