package node

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-frame/internal/layout"
)

// MeasureAll calculates every root for size on up to workers goroutines
// and returns the resulting sizes in order. Each worker measures with its
// own scratch pool. workers <= 0 uses GOMAXPROCS.
//
// Cancelling ctx stops handing out roots; a calculation already started
// runs to completion. roots must not contain the same RootNode twice.
func MeasureAll(ctx context.Context, roots []*RootNode, size layout.Size, workers int) ([]layout.Size, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(roots))
	sizes := make([]layout.Size, len(roots))
	if len(roots) == 0 {
		return sizes, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range roots {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range workers {
		g.Go(func() error {
			scratch := NewScratch()
			for i := range jobs {
				sizes[i] = roots[i].CalculateWith(size, scratch)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sizes, nil
}
