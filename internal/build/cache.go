package build

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// DefaultCacheSize is the number of results a Cache keeps by default.
const DefaultCacheSize = 256

// Cache memoises successful export results by tree content and config.
// Export is deterministic, so a hit is indistinguishable from a fresh run.
type Cache struct {
	results *lru.Cache[string, *Result]
	opts    []Option
}

// NewCache creates a cache holding up to size results.
func NewCache(size int, opts ...Option) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	results, err := lru.New[string, *Result](size)
	if err != nil {
		return nil, fmt.Errorf("build: creating cache: %w", err)
	}
	return &Cache{results: results, opts: opts}, nil
}

// Export returns a cached result for an identical request or runs the
// pipeline. Failed results are not cached.
func (c *Cache) Export(ctx context.Context, tree *ir.Tree, cfg config.Export) *Result {
	key, err := Key(tree, cfg)
	if err != nil {
		return Export(ctx, tree, cfg, c.opts...)
	}
	if res, ok := c.results.Get(key); ok {
		return res
	}
	res := Export(ctx, tree, cfg, c.opts...)
	if res.Success {
		c.results.Add(key, res)
	}
	return res
}

// Len reports how many results are cached.
func (c *Cache) Len() int { return c.results.Len() }

// Key identifies a request: the SHA-256 of the tree's JSON form followed
// by the configuration.
func Key(tree *ir.Tree, cfg config.Export) (string, error) {
	if tree == nil || tree.Root() == nil {
		return "", fmt.Errorf("build: empty tree")
	}
	data, err := ir.ToJSON(tree.Root())
	if err != nil {
		return "", fmt.Errorf("build: hashing tree: %w", err)
	}
	h := sha256.New()
	h.Write(data)
	fmt.Fprintf(h, "\x00%s|%s|%t|%t|%t|%t", cfg.Target, cfg.Styling, cfg.Typed, cfg.Accessible, cfg.Responsive, cfg.Tested)
	return hex.EncodeToString(h.Sum(nil)), nil
}
