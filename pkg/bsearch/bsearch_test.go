package bsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	arr := []float64{1.0, 2.5, 3.5, 4.3, 5.9}
	tests := []struct {
		target     float64
		iterations int
		value      float64
		ok         bool
	}{
		{3.5, 1, 3.5, true},
		{4.0, 2, 4.3, true},
		{6.0, 3, 0, false},
		{1.0, 2, 1.0, true},
		{5.9, 3, 5.9, true},
		{0.5, 2, 1.0, true},
		{2.6, 3, 3.5, true},
	}
	for _, tt := range tests {
		iterations, value, ok := Search(arr, tt.target)
		assert.Equal(t, tt.iterations, iterations, "target %v", tt.target)
		assert.Equal(t, tt.value, value, "target %v", tt.target)
		assert.Equal(t, tt.ok, ok, "target %v", tt.target)
	}
}

func TestSearchEmpty(t *testing.T) {
	iterations, _, ok := Search([]float32{}, 1)
	assert.Equal(t, 0, iterations)
	assert.False(t, ok)
}

func TestSearchFloat32(t *testing.T) {
	_, value, ok := Search([]float32{-2, -1, 0.5}, -1.5)
	assert.True(t, ok)
	assert.Equal(t, float32(-1), value)
}
