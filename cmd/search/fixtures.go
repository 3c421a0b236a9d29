package main

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"

	"github.com/scottcagno/substr/pkg/bench"
	"github.com/scottcagno/substr/pkg/config"
	"github.com/scottcagno/substr/pkg/corpus"
)

// buildFixtures turns fixture settings into bench fixtures, loading every
// referenced file up front. No settings selects the default fixtures.
func buildFixtures(ctx context.Context, loader *corpus.Loader, fcs []config.FixtureConfig) ([]bench.Fixture, error) {
	if len(fcs) == 0 {
		return bench.DefaultFixtures(), nil
	}
	var paths []string
	for _, fc := range fcs {
		if fc.File != "" {
			paths = append(paths, fc.File)
		}
	}
	files, err := loader.LoadAll(ctx, paths)
	if err != nil {
		return nil, err
	}
	fixtures := make([]bench.Fixture, 0, len(fcs))
	for i, fc := range fcs {
		f, err := buildFixture(fc, files)
		if err != nil {
			return nil, fmt.Errorf("fixture %d (%s): %w", i, fc.Name, err)
		}
		if f.Name == "" {
			f.Name = fmt.Sprintf("fixture:%d", i)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

func buildFixture(fc config.FixtureConfig, files map[string][]byte) (bench.Fixture, error) {
	rng := rand.New(rand.NewSource(fc.Seed))
	f := bench.Fixture{Name: fc.Name, Expect: parseExpect(fc.Expect)}

	switch {
	case fc.File != "":
		f.Text = files[fc.File]
	case fc.Synthetic != nil:
		f.Text = corpus.Synthetic(rng, fc.Synthetic.Size, fc.Synthetic.Alphabet)
	default:
		f.Text = []byte(fc.Text)
	}
	if fc.TextRepeat > 0 {
		f.Text = bytes.Repeat(f.Text, fc.TextRepeat)
	}

	switch {
	case fc.RandomLength > 0:
		p, err := corpus.RandomPattern(rng, f.Text, fc.RandomLength)
		if err != nil {
			return f, err
		}
		f.Pattern = p
		if fc.Expect == "" {
			f.Expect = bench.ExpectFound
		}
	case fc.AbsentLength > 0:
		p, ok := corpus.AbsentPattern(f.Text, fc.AbsentLength)
		if !ok {
			return f, fmt.Errorf("text uses every byte value, no absent pattern exists")
		}
		f.Pattern = p
		if fc.Expect == "" {
			f.Expect = bench.ExpectMissing
		}
	default:
		f.Pattern = []byte(fc.Pattern)
	}
	return f, nil
}

func parseExpect(s string) bench.Expect {
	switch s {
	case "found":
		return bench.ExpectFound
	case "missing":
		return bench.ExpectMissing
	}
	return bench.ExpectAny
}
