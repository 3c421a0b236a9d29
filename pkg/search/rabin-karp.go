package search

import "golang.org/x/exp/constraints"

// RabinKarp algorithm is inferior for single pattern searching to Knuth–Morris–Pratt algorithm or the
// Boyer–Moore string search algorithm because of its slow worst case behavior. The small modulus used
// here makes window hash collisions common, so every hash hit is confirmed unit by unit.
type RabinKarp struct{}

func NewRabinKarp() *RabinKarp {
	return new(RabinKarp)
}

func (rk *RabinKarp) String() string {
	return "RABIN-KARP"
}

func (rk *RabinKarp) FindIndex(text, pattern []byte) int {
	return IndexRabinKarp(text, pattern)
}

func (rk *RabinKarp) FindIndexString(text, pattern string) int {
	return IndexRabinKarp([]byte(text), []byte(pattern))
}

func (rk *RabinKarp) FindAllIndex(text, pattern []byte) []int {
	return allIndex(rabinKarpFinder[byte], text, pattern)
}

func (rk *RabinKarp) Contains(text, pattern []byte) bool {
	return ContainsRabinKarp(text, pattern)
}

const (
	// BaseRK is the radix of the polynomial hash, one per byte value.
	BaseRK = 256
	// PrimeRK is the modulus of the polynomial hash.
	PrimeRK = 101
)

// Unit is any integer code unit. Its ordinal feeds the rolling hash.
type Unit interface {
	constraints.Integer
}

// ContainsRabinKarp reports whether pattern occurs as a contiguous run of text.
func ContainsRabinKarp[T Unit](text, pattern []T) bool {
	return IndexRabinKarp(text, pattern) >= 0
}

// IndexRabinKarp returns the index of the first occurrence of pattern in
// text, 0 for an empty pattern, or -1 if not present.
func IndexRabinKarp[T Unit](text, pattern []T) int {
	return firstIndex(rabinKarpFinder[T], text, pattern)
}

// ord reduces a unit to its non-negative residue modulo PrimeRK. Working on
// residues keeps every intermediate product small for any integer width.
func ord[T Unit](u T) int64 {
	r := int64(u % T(PrimeRK))
	if r < 0 {
		r += PrimeRK
	}
	return r
}

// hashWindow computes the hash of window from scratch using Horner's rule.
func hashWindow[T Unit](window []T) int64 {
	var h int64
	for _, u := range window {
		h = (BaseRK*h + ord(u)) % PrimeRK
	}
	return h
}

// leadingPow returns BaseRK^(m-1) mod PrimeRK, the weight of the unit that
// leaves the window.
func leadingPow(m int) int64 {
	h := int64(1)
	for i := 0; i < m-1; i++ {
		h = (h * BaseRK) % PrimeRK
	}
	return h
}

// roll slides the window hash h one unit forward, dropping out and taking in.
func roll[T Unit](h, pow int64, out, in T) int64 {
	h = (BaseRK*(h-ord(out)*pow) + ord(in)) % PrimeRK
	if h < 0 {
		h += PrimeRK
	}
	return h
}

func rabinKarpFinder[T Unit](text, pattern []T, found func(int) bool) {
	n, m := len(text), len(pattern)
	pow := leadingPow(m)
	want := hashWindow(pattern)
	h := hashWindow(text[:m])
	for i := 0; i <= n-m; i++ {
		// equal hashes only nominate a candidate
		if h == want && equal(text[i:i+m], pattern) {
			if !found(i) {
				return
			}
		}
		if i < n-m {
			h = roll(h, pow, text[i], text[i+m])
		}
	}
}
