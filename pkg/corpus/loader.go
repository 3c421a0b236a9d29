package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultCacheSize = 16

// Loader reads text files and caches their decoded contents by path.
// It is safe for concurrent use.
type Loader struct {
	cache  *lru.Cache[string, []byte]
	logger *zap.Logger
}

// NewLoader returns a Loader caching up to size decoded files. A nil logger
// disables logging.
func NewLoader(size int, logger *zap.Logger) (*Loader, error) {
	if size < 1 {
		size = DefaultCacheSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("create corpus cache: %w", err)
	}
	return &Loader{cache: cache, logger: logger}, nil
}

// Load returns the decoded contents of the file at path. Callers must not
// modify the returned slice since it is shared with the cache.
func (l *Loader) Load(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if text, ok := l.cache.Get(path); ok {
		l.logger.Debug("corpus cache hit", zap.String("path", path))
		return text, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	text, enc, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode corpus %s: %w", path, err)
	}
	l.cache.Add(path, text)
	l.logger.Debug("corpus loaded",
		zap.String("path", path),
		zap.String("encoding", string(enc)),
		zap.Int("size", len(text)))
	return text, nil
}

// LoadAll loads every path concurrently and returns the texts keyed by the
// paths as given. The first failure cancels the remaining loads.
func (l *Loader) LoadAll(ctx context.Context, paths []string) (map[string][]byte, error) {
	texts := make([][]byte, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := l.Load(path)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	m := make(map[string][]byte, len(paths))
	for i, path := range paths {
		m[path] = texts[i]
	}
	return m, nil
}
