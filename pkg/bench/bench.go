// Package bench times the searchers against fixed text and pattern pairs.
package bench

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/scottcagno/substr/pkg/search"
	"github.com/scottcagno/substr/pkg/util"
	"go.uber.org/zap"
)

const DefaultRepeat = 1000

var ErrMismatch = errors.New("bench: unexpected search result")

// Measure calls fn on text and pattern n times and returns the elapsed wall
// clock time. The inputs are passed through untouched on every call.
func Measure(fn func(text, pattern []byte) bool, text, pattern []byte, n int) time.Duration {
	return util.Repeat(n, func() {
		fn(text, pattern)
	})
}

// Result is the outcome of timing one searcher on one fixture.
type Result struct {
	Fixture  string
	Searcher string
	TextLen  int
	Pattern  string
	Found    bool
	Index    int
	Repeat   int
	Elapsed  time.Duration
}

// PerOp returns the mean time of a single search.
func (r Result) PerOp() time.Duration {
	if r.Repeat < 1 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Repeat)
}

type Option func(*Runner)

// WithRepeat sets how many times each search is repeated per trial.
func WithRepeat(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.repeat = n
		}
	}
}

// WithWorkers runs trials on a pool of n workers. One worker runs every
// trial on the calling goroutine.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithSearchers(ss ...search.Searcher) Option {
	return func(r *Runner) {
		if len(ss) > 0 {
			r.searchers = ss
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Runner runs every searcher over every fixture.
type Runner struct {
	searchers []search.Searcher
	repeat    int
	workers   int
	logger    *zap.Logger
}

func New(opts ...Option) *Runner {
	r := &Runner{
		searchers: search.Searchers(),
		repeat:    DefaultRepeat,
		workers:   1,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run times each searcher on each fixture. Results are ordered by fixture,
// then by searcher, regardless of how many workers ran them. Any result
// that contradicts its fixture's expectation, or differs from another
// searcher on the same fixture, is reported as an error wrapping
// ErrMismatch alongside the full results.
func (r *Runner) Run(ctx context.Context, fixtures []Fixture) ([]Result, error) {
	results := make([]Result, len(fixtures)*len(r.searchers))
	if err := r.schedule(ctx, fixtures, results); err != nil {
		return nil, err
	}
	return results, r.verify(fixtures, results)
}

func (r *Runner) schedule(ctx context.Context, fixtures []Fixture, results []Result) error {
	trial := func(i int) {
		f, s := fixtures[i/len(r.searchers)], r.searchers[i%len(r.searchers)]
		results[i] = r.trial(f, s)
	}
	if r.workers == 1 {
		for i := range results {
			if err := ctx.Err(); err != nil {
				return err
			}
			trial(i)
		}
		return nil
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return fmt.Errorf("create trial pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	defer wg.Wait()
	for i := range results {
		if err := ctx.Err(); err != nil {
			return err
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			trial(i)
		}); err != nil {
			wg.Done()
			return fmt.Errorf("submit trial: %w", err)
		}
	}
	return nil
}

func (r *Runner) trial(f Fixture, s search.Searcher) Result {
	index := s.FindIndex(f.Text, f.Pattern)
	elapsed := Measure(s.Contains, f.Text, f.Pattern, r.repeat)
	r.logger.Debug("trial finished",
		zap.String("fixture", f.Name),
		zap.String("searcher", s.String()),
		zap.Int("index", index),
		zap.Duration("elapsed", elapsed))
	return Result{
		Fixture:  f.Name,
		Searcher: s.String(),
		TextLen:  len(f.Text),
		Pattern:  string(f.Pattern),
		Found:    index >= 0,
		Index:    index,
		Repeat:   r.repeat,
		Elapsed:  elapsed,
	}
}

func (r *Runner) verify(fixtures []Fixture, results []Result) error {
	var errs []error
	n := len(r.searchers)
	for fi, f := range fixtures {
		row := results[fi*n : (fi+1)*n]
		for _, res := range row {
			if (f.Expect == ExpectFound && !res.Found) || (f.Expect == ExpectMissing && res.Found) {
				errs = append(errs, fmt.Errorf("%w: %s on %s: found=%t, want %s",
					ErrMismatch, res.Searcher, f.Name, res.Found, f.Expect))
			}
			if res.Index != row[0].Index {
				errs = append(errs, fmt.Errorf("%w: %s on %s: index %d, %s reported %d",
					ErrMismatch, res.Searcher, f.Name, res.Index, row[0].Searcher, row[0].Index))
			}
		}
	}
	for _, err := range errs {
		r.logger.Warn("search mismatch", zap.Error(err))
	}
	return errors.Join(errs...)
}
