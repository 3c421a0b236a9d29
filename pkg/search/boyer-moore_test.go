package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadCharTable(t *testing.T) {
	bc := newBadCharTable([]byte("abcab"))
	assert.Equal(t, 3, bc.last('a'))
	assert.Equal(t, 4, bc.last('b'))
	assert.Equal(t, 2, bc.last('c'))
	assert.Equal(t, -1, bc.last('z'))
}

func TestBoyerMooreShiftProgress(t *testing.T) {
	bm := NewBoyerMoore()
	// the mismatched unit occurs right of j in the pattern, so the raw shift
	// would be negative
	assert.Equal(t, 3, bm.FindIndexString("abaabb", "abb"))
	assert.Equal(t, -1, bm.FindIndexString("bbbbbbbb", "ab"))
	assert.Equal(t, 5, bm.FindIndexString("aaaaabaa", "baa"))
}
