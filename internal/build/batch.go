package build

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// Request pairs a tree with the configuration to export it under.
type Request struct {
	Tree   *ir.Tree
	Config config.Export
}

// ExportAll runs every request concurrently. Results are returned in
// request order. A failed request does not stop the others.
func ExportAll(ctx context.Context, reqs []Request, opts ...Option) []*Result {
	results := make([]*Result, len(reqs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, req := range reqs {
		g.Go(func() error {
			results[i] = Export(ctx, req.Tree, req.Config, opts...)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Matrix builds one request per target and styling pair, keeping the
// flags of base.
func Matrix(tree *ir.Tree, base config.Export) []Request {
	var reqs []Request
	for _, t := range config.Targets() {
		for _, s := range config.Stylings() {
			cfg := base
			cfg.Target = t
			cfg.Styling = s
			reqs = append(reqs, Request{Tree: tree, Config: cfg})
		}
	}
	return reqs
}
