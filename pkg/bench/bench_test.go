package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/scottcagno/substr/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMeasure(t *testing.T) {
	text, pattern := []byte("abcabc"), []byte("cab")
	var calls int
	d := Measure(func(tx, p []byte) bool {
		calls++
		assert.Equal(t, "abcabc", string(tx))
		assert.Equal(t, "cab", string(p))
		return true
	}, text, pattern, 25)
	assert.Equal(t, 25, calls)
	assert.GreaterOrEqual(t, d, time.Duration(0))
}

func TestRunDefaultFixtures(t *testing.T) {
	fixtures := DefaultFixtures()
	r := New(WithRepeat(3), WithLogger(zaptest.NewLogger(t)))
	results, err := r.Run(context.Background(), fixtures)
	require.NoError(t, err)
	require.Len(t, results, len(fixtures)*3)

	for i, res := range results {
		f := fixtures[i/3]
		assert.Equal(t, f.Name, res.Fixture)
		assert.Equal(t, search.Searchers()[i%3].String(), res.Searcher)
		assert.Equal(t, bytes.Index(f.Text, f.Pattern), res.Index)
		assert.Equal(t, 3, res.Repeat)
	}
	assert.Equal(t, 6300, results[len(results)-1].TextLen)
	assert.Equal(t, 26, results[0].Index)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	fixtures := DefaultFixtures()
	seq, err := New(WithRepeat(2)).Run(context.Background(), fixtures)
	require.NoError(t, err)
	par, err := New(WithRepeat(2), WithWorkers(4)).Run(context.Background(), fixtures)
	require.NoError(t, err)
	require.Len(t, par, len(seq))
	for i := range seq {
		assert.Equal(t, seq[i].Fixture, par[i].Fixture)
		assert.Equal(t, seq[i].Searcher, par[i].Searcher)
		assert.Equal(t, seq[i].Index, par[i].Index)
	}
}

func TestRunMismatch(t *testing.T) {
	fixtures := []Fixture{
		{Name: "wrong", Text: []byte("abc"), Pattern: []byte("zz"), Expect: ExpectFound},
		{Name: "right", Text: []byte("abc"), Pattern: []byte("bc"), Expect: ExpectFound},
	}
	results, err := New(WithRepeat(1)).Run(context.Background(), fixtures)
	require.ErrorIs(t, err, ErrMismatch)
	assert.Len(t, results, 6)
	assert.Contains(t, err.Error(), "wrong")
	assert.NotContains(t, err.Error(), "right")
}

func TestRunSelectedSearchers(t *testing.T) {
	kmp := search.NewKnuthMorrisPratt()
	results, err := New(WithSearchers(kmp), WithRepeat(1)).Run(context.Background(), DefaultFixtures()[:2])
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, kmp.String(), results[1].Searcher)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Run(ctx, DefaultFixtures())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = New(WithWorkers(2)).Run(ctx, DefaultFixtures())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResultPerOp(t *testing.T) {
	assert.Equal(t, 2*time.Millisecond, Result{Repeat: 5, Elapsed: 10 * time.Millisecond}.PerOp())
	assert.Equal(t, time.Duration(0), Result{}.PerOp())
}

func TestWriteReport(t *testing.T) {
	results, err := New(WithRepeat(1)).Run(context.Background(), DefaultFixtures()[4:5])
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results))
	out := buf.String()
	assert.Contains(t, out, `text length 6,300 and pattern "abcabc"`)
	for _, s := range search.Searchers() {
		assert.Contains(t, out, s.String())
	}
	assert.Equal(t, 1, strings.Count(out, "Testing algorithms"))
}
