package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.Repeat)
	assert.Len(t, cfg.Algorithms, 3)
	assert.Empty(t, cfg.Fixtures)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
repeat: 50
workers: 4
algorithms: [kmp, rk]
log:
  level: debug
fixtures:
  - name: sentence
    text: "This is a sample text for substring search."
    pattern: substring
    expect: found
  - name: dna
    synthetic:
      size: 4096
      alphabet: acgt
    random_length: 12
    seed: 7
  - name: large
    text: abc
    text_repeat: 2100
    absent_length: 3
    expect: missing
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Repeat)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"kmp", "rk"}, cfg.Algorithms)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 16, cfg.CacheSize)
	require.Len(t, cfg.Fixtures, 3)
	assert.Equal(t, "substring", cfg.Fixtures[0].Pattern)
	require.NotNil(t, cfg.Fixtures[1].Synthetic)
	assert.Equal(t, 4096, cfg.Fixtures[1].Synthetic.Size)
	assert.Equal(t, int64(7), cfg.Fixtures[1].Seed)
	assert.Equal(t, 2100, cfg.Fixtures[2].TextRepeat)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"repeat":    "repeat: 0\n",
		"workers":   "workers: -1\n",
		"algorithm": "algorithms: [horspool]\n",
		"sources":   "fixtures:\n  - text: abc\n    file: a.txt\n",
		"patterns":  "fixtures:\n  - text: abc\n    pattern: a\n    random_length: 2\n",
		"expect":    "fixtures:\n  - text: abc\n    expect: maybe\n",
		"synthetic": "fixtures:\n  - synthetic:\n      size: 0\n",
	}
	for name, body := range tests {
		_, err := Load(writeConfig(t, body))
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "repeat: [1, 2"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
