package layout

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-layout/internal/types"
	"golang.org/x/sync/errgroup"
)

// LayoutAll lays out docs concurrently with at most limit layouts in flight
// (no limit when limit <= 0). Results keep the order of docs. The first error
// cancels the remaining documents; a single layout is never interrupted.
func (e *Engine) LayoutAll(ctx context.Context, docs []types.Document, cfg types.LayoutConfiguration, limit int) ([]*types.LayoutResult, error) {
	results := make([]*types.LayoutResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range docs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := e.Layout(docs[i], cfg)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
