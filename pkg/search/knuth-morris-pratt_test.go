package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixTable(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
		{"abcabc", []int{0, 0, 0, 1, 2, 3}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abcd", []int{0, 0, 0, 0}},
		{"abacabab", []int{0, 0, 1, 0, 1, 2, 3, 2}},
		{"a", []int{0}},
		{"", []int{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, prefixTable([]byte(tt.pattern)), tt.pattern)
	}
}

func TestKnuthMorrisPrattFallback(t *testing.T) {
	kmp := NewKnuthMorrisPratt()
	// every mismatch lands inside a partial match and must fall back
	assert.Equal(t, 7, kmp.FindIndexString("aabaaabaaaab", "aaaab"))
	assert.Equal(t, 4, kmp.FindIndexString("abababac", "abac"))
	assert.Equal(t, -1, kmp.FindIndexString("abababab", "abac"))
}
